package repository

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// CommitLogRepository is the read side of the commit ledger. Appends happen
// inside the commit transaction (see CommitRepository); analytics only ever
// read timestamps.
type CommitLogRepository interface {
	TimesByHabit(habitID string) ([]time.Time, error)
	TimesByPillar(pillarID string) ([]time.Time, error)
	TimesByPillarBetween(pillarID string, start, end time.Time) ([]time.Time, error)
	TimesByUser(userID string) ([]time.Time, error)
}

type commitLogRepository struct {
	db *sqlx.DB
}

func NewCommitLogRepository(db *sqlx.DB) CommitLogRepository {
	return &commitLogRepository{db: db}
}

func (r *commitLogRepository) TimesByHabit(habitID string) ([]time.Time, error) {
	var times []time.Time
	query := `SELECT created_at FROM commit_logs WHERE habit_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&times, query, habitID)
	if err != nil {
		return nil, err
	}

	return times, nil
}

func (r *commitLogRepository) TimesByPillar(pillarID string) ([]time.Time, error) {
	var times []time.Time
	query := `SELECT cl.created_at FROM commit_logs cl
	          JOIN habits h ON cl.habit_id = h.id
	          WHERE h.pillar_id = $1
	          ORDER BY cl.created_at DESC`

	err := r.db.Select(&times, query, pillarID)
	if err != nil {
		return nil, err
	}

	return times, nil
}

// TimesByPillarBetween fetches a widened window so that timezone conversion
// at the caller never drops edge-of-day entries; the aggregator applies the
// exact local-day bounds.
func (r *commitLogRepository) TimesByPillarBetween(pillarID string, start, end time.Time) ([]time.Time, error) {
	var times []time.Time
	query := `SELECT cl.created_at FROM commit_logs cl
	          JOIN habits h ON cl.habit_id = h.id
	          WHERE h.pillar_id = $1 AND cl.created_at >= $2 AND cl.created_at <= $3
	          ORDER BY cl.created_at ASC`

	err := r.db.Select(&times, query, pillarID, start, end)
	if err != nil {
		return nil, err
	}

	return times, nil
}

func (r *commitLogRepository) TimesByUser(userID string) ([]time.Time, error) {
	var times []time.Time
	query := `SELECT cl.created_at FROM commit_logs cl
	          JOIN habits h ON cl.habit_id = h.id
	          JOIN pillars p ON h.pillar_id = p.id
	          WHERE p.user_id = $1
	          ORDER BY cl.created_at DESC`

	err := r.db.Select(&times, query, userID)
	if err != nil {
		return nil, err
	}

	return times, nil
}
