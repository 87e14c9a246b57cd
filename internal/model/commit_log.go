package model

import (
	"time"
)

// CommitLog is the append-only ledger of habit completions. Rows are never
// updated or deleted by normal flow; analytics derive streaks and heatmaps
// from it.
type CommitLog struct {
	ID        string    `db:"id" json:"id"`
	HabitID   string    `db:"habit_id" json:"habit_id"`
	Remark    *string   `db:"remark" json:"remark"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
