package model

import (
	"time"
)

const (
	RarityCommon    = "COMMON"
	RarityLegendary = "LEGENDARY"
)

// Companion kinds. The set is open-ended; these are the kinds the clients ship
// sprites for. Dragon and CrystalTree are premium-only.
const (
	KindChicken     = "Chicken"
	KindSunflower   = "Sunflower"
	KindDragon      = "Dragon"
	KindCrystalTree = "CrystalTree"
)

// Companion is the pet/plant paired 1:1 with a pillar. Stage is a pure
// function of (level, kind family); every write that changes level recomputes
// it so the two can never drift apart.
type Companion struct {
	ID            string    `db:"id" json:"id"`
	PillarID      string    `db:"pillar_id" json:"pillar_id"`
	Name          string    `db:"name" json:"name"`
	Kind          string    `db:"kind" json:"kind"`
	Stage         string    `db:"stage" json:"stage"`
	Level         int       `db:"level" json:"level"`
	XP            int       `db:"xp" json:"xp"`
	XPToNextLevel int       `db:"xp_to_next_level" json:"xp_to_next_level"`
	Rarity        string    `db:"rarity" json:"rarity"`
	Color         string    `db:"color" json:"color"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// PremiumKind reports whether the kind is gated behind a subscription.
func PremiumKind(kind string) bool {
	return kind == KindDragon || kind == KindCrystalTree
}

// RarityForKind is fixed at creation: legendary companions are the premium ones.
func RarityForKind(kind string) string {
	if PremiumKind(kind) {
		return RarityLegendary
	}
	return RarityCommon
}
