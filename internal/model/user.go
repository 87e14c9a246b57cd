package model

import (
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Email            string     `db:"email" json:"email"`
	PasswordHash     *string    `db:"password_hash" json:"-"`
	Role             string     `db:"role" json:"role"`
	IsPremium        bool       `db:"is_premium" json:"is_premium"`
	PremiumExpiresAt *time.Time `db:"premium_expires_at" json:"premium_expires_at"`
	GardenTitle      string     `db:"garden_title" json:"garden_title"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Premium reports whether the user has premium access at the given instant.
// A set expiry in the past revokes access even if the flag is still true.
func (u *User) Premium(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumExpiresAt != nil && u.PremiumExpiresAt.Before(now) {
		return false
	}
	return true
}
