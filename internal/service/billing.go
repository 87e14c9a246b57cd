package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
)

// BillingService records purchases and flips premium access. Both the Stripe
// webhook and the PayPal order-capture path land here; the payment provider
// only supplies a verified reference and amount.
type BillingService struct {
	payments repository.PaymentRepository
	users    repository.UserRepository

	now func() time.Time
}

func NewBillingService(payments repository.PaymentRepository, users repository.UserRepository) *BillingService {
	return &BillingService{
		payments: payments,
		users:    users,
		now:      time.Now,
	}
}

// CompletePurchase records the payment and extends premium access. The new
// expiry stacks on top of any remaining time: renewing early never loses
// days.
func (s *BillingService) CompletePurchase(userID, reference string, amountCents int, currency, plan string) error {
	if plan != model.PlanAnnually {
		plan = model.PlanMonthly
	}
	if currency == "" {
		currency = "usd"
	}

	now := s.now()
	payment := &model.Payment{
		ID:          uuid.New().String(),
		UserID:      userID,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      model.PaymentStatusCompleted,
		Reference:   reference,
		Plan:        plan,
		CreatedAt:   now,
	}

	err := s.payments.Create(payment)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	user, err := s.users.ByID(userID)
	if err != nil {
		return err
	}

	base := now
	if user.PremiumExpiresAt != nil && user.PremiumExpiresAt.After(now) {
		base = *user.PremiumExpiresAt
	}

	var newEnd time.Time
	if plan == model.PlanAnnually {
		newEnd = base.AddDate(1, 0, 0)
	} else {
		newEnd = base.AddDate(0, 1, 0)
	}

	user.IsPremium = true
	user.PremiumExpiresAt = &newEnd

	err = s.users.Update(user)
	if err != nil {
		return fmt.Errorf("failed to upgrade user: %w", err)
	}

	return nil
}

// AdminOverview backs the admin revenue dashboard.
type AdminOverview struct {
	Payments     []*model.Payment `json:"payments"`
	TotalUsers   int              `json:"total_users"`
	PremiumUsers int              `json:"premium_users"`
	RevenueCents int              `json:"revenue_cents"`
}

func (s *BillingService) Overview(requester *model.User) (*AdminOverview, error) {
	if !requester.IsAdmin() {
		return nil, ErrForbidden
	}

	payments, err := s.payments.Recent(50)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.users.Count()
	if err != nil {
		return nil, err
	}

	premiumUsers, err := s.users.CountPremium()
	if err != nil {
		return nil, err
	}

	revenue, err := s.payments.TotalAmountCents()
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		Payments:     payments,
		TotalUsers:   totalUsers,
		PremiumUsers: premiumUsers,
		RevenueCents: revenue,
	}, nil
}
