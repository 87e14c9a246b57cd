package model

import (
	"time"
)

// Pillar is a user-defined life area. It owns its habits and exactly one
// companion; total_commits only ever increments.
type Pillar struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Color        string    `db:"color" json:"color"`
	TotalCommits int       `db:"total_commits" json:"total_commits"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
