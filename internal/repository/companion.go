package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/marwanbukhori/commit-life/internal/model"
)

var (
	ErrCompanionNotFound = errors.New("companion not found")
)

type CompanionRepository interface {
	Create(companion *model.Companion) error
	ByPillar(pillarID string) (*model.Companion, error)
	Update(companion *model.Companion) error
}

type companionRepository struct {
	db *sqlx.DB
}

func NewCompanionRepository(db *sqlx.DB) CompanionRepository {
	return &companionRepository{db: db}
}

func (r *companionRepository) Create(companion *model.Companion) error {
	query := `INSERT INTO companions (id, pillar_id, name, kind, stage, level, xp, xp_to_next_level, rarity, color, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		companion.ID,
		companion.PillarID,
		companion.Name,
		companion.Kind,
		companion.Stage,
		companion.Level,
		companion.XP,
		companion.XPToNextLevel,
		companion.Rarity,
		companion.Color,
		companion.CreatedAt,
	)

	return err
}

func (r *companionRepository) ByPillar(pillarID string) (*model.Companion, error) {
	companion := &model.Companion{}
	query := `SELECT * FROM companions WHERE pillar_id = $1`

	err := r.db.Get(companion, query, pillarID)
	if err == sql.ErrNoRows {
		return nil, ErrCompanionNotFound
	}

	return companion, err
}

func (r *companionRepository) Update(companion *model.Companion) error {
	query := `UPDATE companions
	          SET name = $1, stage = $2, level = $3, xp = $4, xp_to_next_level = $5
	          WHERE id = $6`

	result, err := r.db.Exec(query,
		companion.Name,
		companion.Stage,
		companion.Level,
		companion.XP,
		companion.XPToNextLevel,
		companion.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCompanionNotFound
	}

	return nil
}
