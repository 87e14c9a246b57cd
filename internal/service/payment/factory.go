package payment

import (
	"fmt"

	"github.com/marwanbukhori/commit-life/internal/config"
	"github.com/marwanbukhori/commit-life/internal/service"
)

// NewProvider selects the payment provider from config. PayPal purchases are
// captured client-side and arrive through the billing complete endpoint, so
// stripe is the only server-side provider.
func NewProvider(cfg *config.Config, billingService *service.BillingService) (Provider, error) {
	switch cfg.PaymentProvider {
	case "stripe":
		return NewStripeProvider(cfg, billingService), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", cfg.PaymentProvider)
	}
}
