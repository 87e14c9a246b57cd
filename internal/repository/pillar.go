package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/marwanbukhori/commit-life/internal/model"
)

var (
	ErrPillarNotFound = errors.New("pillar not found")
)

type PillarRepository interface {
	Create(pillar *model.Pillar) error
	ByID(userID, pillarID string) (*model.Pillar, error)
	Pillars(userID string) ([]*model.Pillar, error)
	CountByUser(userID string) (int, error)
	Update(pillar *model.Pillar) error
	Delete(userID, pillarID string) error
}

type pillarRepository struct {
	db *sqlx.DB
}

func NewPillarRepository(db *sqlx.DB) PillarRepository {
	return &pillarRepository{db: db}
}

func (r *pillarRepository) Create(pillar *model.Pillar) error {
	query := `INSERT INTO pillars (id, user_id, name, description, color, total_commits, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		pillar.ID,
		pillar.UserID,
		pillar.Name,
		pillar.Description,
		pillar.Color,
		pillar.TotalCommits,
		pillar.CreatedAt,
	)

	return err
}

func (r *pillarRepository) ByID(userID, pillarID string) (*model.Pillar, error) {
	pillar := &model.Pillar{}
	query := `SELECT * FROM pillars WHERE id = $1 AND user_id = $2`

	err := r.db.Get(pillar, query, pillarID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPillarNotFound
	}

	return pillar, err
}

func (r *pillarRepository) Pillars(userID string) ([]*model.Pillar, error) {
	var pillars []*model.Pillar
	query := `SELECT * FROM pillars WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&pillars, query, userID)
	if err != nil {
		return nil, err
	}

	return pillars, nil
}

func (r *pillarRepository) CountByUser(userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM pillars WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

func (r *pillarRepository) Update(pillar *model.Pillar) error {
	query := `UPDATE pillars
	          SET name = $1, description = $2, color = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		pillar.Name,
		pillar.Description,
		pillar.Color,
		pillar.ID,
		pillar.UserID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPillarNotFound
	}

	return nil
}

// Delete removes the pillar; habits, commit logs and the companion cascade
// via foreign keys.
func (r *pillarRepository) Delete(userID, pillarID string) error {
	result, err := r.db.Exec(`DELETE FROM pillars WHERE id = $1 AND user_id = $2`, pillarID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPillarNotFound
	}

	return nil
}
