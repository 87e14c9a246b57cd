package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/marwanbukhori/commit-life/internal/model"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
)

type HabitRepository interface {
	Create(habit *model.Habit) error
	CreateMany(pillarID string, habits []*model.Habit) error
	ByID(habitID string) (*model.Habit, error)
	ByPillar(pillarID string) ([]*model.Habit, error)
	ByUser(userID string) ([]*model.Habit, error)
	Update(habit *model.Habit) error
	Delete(habitID string) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(habit *model.Habit) error {
	query := `INSERT INTO habits (id, pillar_id, name, frequency, streak, last_completed_at, last_remark, completed_today, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		habit.ID,
		habit.PillarID,
		habit.Name,
		habit.Frequency,
		habit.Streak,
		habit.LastCompletedAt,
		habit.LastRemark,
		habit.CompletedToday,
		habit.CreatedAt,
	)

	return err
}

// CreateMany inserts a batch of habits under one pillar in a single
// transaction. Used by bulk import.
func (r *habitRepository) CreateMany(pillarID string, habits []*model.Habit) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO habits (id, pillar_id, name, frequency, streak, last_completed_at, last_remark, completed_today, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	for _, habit := range habits {
		if habit.ID == "" {
			habit.ID = uuid.New().String()
		}
		habit.PillarID = pillarID
		habit.CreatedAt = now

		_, err := tx.Exec(query,
			habit.ID,
			habit.PillarID,
			habit.Name,
			habit.Frequency,
			habit.Streak,
			habit.LastCompletedAt,
			habit.LastRemark,
			habit.CompletedToday,
			habit.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *habitRepository) ByID(habitID string) (*model.Habit, error) {
	habit := &model.Habit{}
	query := `SELECT * FROM habits WHERE id = $1`

	err := r.db.Get(habit, query, habitID)
	if err == sql.ErrNoRows {
		return nil, ErrHabitNotFound
	}

	return habit, err
}

func (r *habitRepository) ByPillar(pillarID string) ([]*model.Habit, error) {
	var habits []*model.Habit
	query := `SELECT * FROM habits WHERE pillar_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&habits, query, pillarID)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

// ByUser returns every habit across the user's pillars, for the dashboard's
// daily/weekly lists.
func (r *habitRepository) ByUser(userID string) ([]*model.Habit, error) {
	var habits []*model.Habit
	query := `SELECT h.* FROM habits h
	          JOIN pillars p ON h.pillar_id = p.id
	          WHERE p.user_id = $1
	          ORDER BY h.created_at ASC`

	err := r.db.Select(&habits, query, userID)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *habitRepository) Update(habit *model.Habit) error {
	query := `UPDATE habits
	          SET name = $1, frequency = $2, streak = $3, last_completed_at = $4, last_remark = $5, completed_today = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		habit.Name,
		habit.Frequency,
		habit.Streak,
		habit.LastCompletedAt,
		habit.LastRemark,
		habit.CompletedToday,
		habit.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(habitID string) error {
	result, err := r.db.Exec(`DELETE FROM habits WHERE id = $1`, habitID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}
