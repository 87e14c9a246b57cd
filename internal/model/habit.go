package model

import (
	"time"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyOnetime = "onetime"
	FrequencyCustom  = "custom"
)

type Habit struct {
	ID              string     `db:"id" json:"id"`
	PillarID        string     `db:"pillar_id" json:"pillar_id"`
	Name            string     `db:"name" json:"name"`
	Frequency       string     `db:"frequency" json:"frequency"`
	Streak          int        `db:"streak" json:"streak"`
	LastCompletedAt *time.Time `db:"last_completed_at" json:"last_completed_at"`
	LastRemark      *string    `db:"last_remark" json:"last_remark"`
	// CompletedToday is the legacy stored flag. Read paths ignore it in favor
	// of the computed completion window; it is kept for schema compatibility.
	CompletedToday bool      `db:"completed_today" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// ValidFrequency normalizes a client-supplied frequency, falling back to daily.
func ValidFrequency(freq string) string {
	switch freq {
	case FrequencyDaily, FrequencyWeekly, FrequencyOnetime, FrequencyCustom:
		return freq
	default:
		return FrequencyDaily
	}
}
