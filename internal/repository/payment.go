package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/marwanbukhori/commit-life/internal/model"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	ByUser(userID string) ([]*model.Payment, error)
	Recent(limit int) ([]*model.Payment, error)
	TotalAmountCents() (int, error)
}

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	query := `INSERT INTO payments (id, user_id, amount_cents, currency, status, reference, plan, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		payment.ID,
		payment.UserID,
		payment.AmountCents,
		payment.Currency,
		payment.Status,
		payment.Reference,
		payment.Plan,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) ByUser(userID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	query := `SELECT * FROM payments WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&payments, query, userID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) Recent(limit int) ([]*model.Payment, error) {
	var payments []*model.Payment
	query := `SELECT * FROM payments ORDER BY created_at DESC LIMIT $1`

	err := r.db.Select(&payments, query, limit)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) TotalAmountCents() (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE status = $1`
	err := r.db.QueryRow(query, model.PaymentStatusCompleted).Scan(&total)
	return total, err
}
