package repository

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/marwanbukhori/commit-life/internal/model"
)

// CommitTx is the row set a single habit commit touches. All writes issued
// through it belong to one database transaction: either every mutation
// (habit, companion, pillar counter, ledger row) lands, or none do.
type CommitTx interface {
	HabitByID(habitID string) (*model.Habit, error)
	PillarByID(pillarID string) (*model.Pillar, error)
	CompanionByPillar(pillarID string) (*model.Companion, error)
	UpdateHabit(habit *model.Habit) error
	UpdateCompanion(companion *model.Companion) error
	IncrementPillarCommits(pillarID string) error
	AppendLog(log *model.CommitLog) error
}

// CommitRepository runs a function against a CommitTx with transactional
// isolation. The underlying driver serializes concurrent commits on the same
// rows (SQLite write lock, PostgreSQL row locks).
type CommitRepository interface {
	InTx(fn func(tx CommitTx) error) error
}

type commitRepository struct {
	db *sqlx.DB
}

func NewCommitRepository(db *sqlx.DB) CommitRepository {
	return &commitRepository{db: db}
}

func (r *commitRepository) InTx(fn func(tx CommitTx) error) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = fn(&commitTx{tx: tx})
	if err != nil {
		return err
	}

	return tx.Commit()
}

type commitTx struct {
	tx *sqlx.Tx
}

func (t *commitTx) HabitByID(habitID string) (*model.Habit, error) {
	habit := &model.Habit{}
	err := t.tx.Get(habit, `SELECT * FROM habits WHERE id = $1`, habitID)
	if err == sql.ErrNoRows {
		return nil, ErrHabitNotFound
	}
	return habit, err
}

func (t *commitTx) PillarByID(pillarID string) (*model.Pillar, error) {
	pillar := &model.Pillar{}
	err := t.tx.Get(pillar, `SELECT * FROM pillars WHERE id = $1`, pillarID)
	if err == sql.ErrNoRows {
		return nil, ErrPillarNotFound
	}
	return pillar, err
}

// CompanionByPillar returns (nil, nil) when the pillar has no companion;
// commits still count without one.
func (t *commitTx) CompanionByPillar(pillarID string) (*model.Companion, error) {
	companion := &model.Companion{}
	err := t.tx.Get(companion, `SELECT * FROM companions WHERE pillar_id = $1`, pillarID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return companion, nil
}

func (t *commitTx) UpdateHabit(habit *model.Habit) error {
	query := `UPDATE habits
	          SET streak = $1, last_completed_at = $2, last_remark = $3, completed_today = $4
	          WHERE id = $5`

	result, err := t.tx.Exec(query,
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

func (t *commitTx) UpdateCompanion(companion *model.Companion) error {
	query := `UPDATE companions
	          SET stage = $1, level = $2, xp = $3, xp_to_next_level = $4
	          WHERE id = $5`

	result, err := t.tx.Exec(query,
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

func (t *commitTx) IncrementPillarCommits(pillarID string) error {
	result, err := t.tx.Exec(`UPDATE pillars SET total_commits = total_commits + 1 WHERE id = $1`, pillarID)
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

func (t *commitTx) AppendLog(log *model.CommitLog) error {
	query := `INSERT INTO commit_logs (id, habit_id, remark, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := t.tx.Exec(query, log.ID, log.HabitID, log.Remark, log.CreatedAt)
	return err
}

// IsConflict reports whether err is a transient write conflict worth
// retrying: SQLite busy/locked states or a PostgreSQL serialization failure.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "deadlock detected")
}
