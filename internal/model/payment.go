package model

import (
	"time"
)

const (
	PaymentStatusCompleted = "COMPLETED"

	PlanMonthly  = "monthly"
	PlanAnnually = "annually"
)

// Payment records a completed purchase (Stripe webhook or PayPal order
// capture). It is a ledger for the admin revenue view, not an access-control
// source; premium access lives on the user row.
type Payment struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	AmountCents int       `db:"amount_cents" json:"amount_cents"`
	Currency    string    `db:"currency" json:"currency"`
	Status      string    `db:"status" json:"status"`
	Reference   string    `db:"reference" json:"reference"`
	Plan        string    `db:"plan" json:"plan"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
