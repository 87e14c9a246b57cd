// Package payment wraps checkout providers behind one interface. The core
// never talks to a provider SDK directly; verified purchases flow into
// BillingService.CompletePurchase.
package payment

import "net/http"

// Provider is implemented by each checkout backend.
type Provider interface {
	// CreateCheckoutURL starts a checkout session for the premium plan
	// ("monthly" or "annually") and returns the redirect URL.
	CreateCheckoutURL(userID, customerEmail, plan string) (string, error)

	// HandleWebhook verifies and processes a provider callback.
	HandleWebhook(payload []byte, headers http.Header) error

	// Name returns the provider name (e.g. "stripe").
	Name() string
}
