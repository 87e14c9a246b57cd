package garden

import (
	"testing"
)

func TestApplyXP_SimpleGain(t *testing.T) {
	p := ApplyXP(Progress{Level: 1, XP: 0, XPToNextLevel: 100}, 1)

	if p.Level != 1 {
		t.Errorf("expected level 1, got %d", p.Level)
	}
	if p.XP != 10 {
		t.Errorf("expected 10 xp, got %d", p.XP)
	}
	if p.XPToNextLevel != 100 {
		t.Errorf("expected threshold 100, got %d", p.XPToNextLevel)
	}
}

func TestApplyXP_LevelUpCarriesRemainder(t *testing.T) {
	// 95 + 10 = 105 >= 100: level up, 5 xp carried, threshold floor(100*1.2).
	p := ApplyXP(Progress{Level: 1, XP: 95, XPToNextLevel: 100}, 1)

	if p.Level != 2 {
		t.Errorf("expected level 2, got %d", p.Level)
	}
	if p.XP != 5 {
		t.Errorf("expected 5 xp, got %d", p.XP)
	}
	if p.XPToNextLevel != 120 {
		t.Errorf("expected threshold 120, got %d", p.XPToNextLevel)
	}
}

func TestApplyXP_MultiLevelJump(t *testing.T) {
	// A large commit batch can clear several thresholds in one call.
	p := ApplyXP(Progress{Level: 1, XP: 0, XPToNextLevel: 100}, 25)

	// 250 xp: -100 (level 2, next 120), -120 (level 3, next 144), 30 left.
	if p.Level != 3 {
		t.Errorf("expected level 3, got %d", p.Level)
	}
	if p.XP != 30 {
		t.Errorf("expected 30 xp, got %d", p.XP)
	}
	if p.XPToNextLevel != 144 {
		t.Errorf("expected threshold 144, got %d", p.XPToNextLevel)
	}
}

func TestApplyXP_InvariantHolds(t *testing.T) {
	p := Progress{Level: 1, XP: 0, XPToNextLevel: 100}

	for commits := 0; commits <= 200; commits++ {
		got := ApplyXP(p, commits)

		if got.XP < 0 || got.XP >= got.XPToNextLevel {
			t.Fatalf("commits=%d: invariant 0 <= xp < next violated: %+v", commits, got)
		}
		if got.Level < p.Level {
			t.Fatalf("commits=%d: level regressed: %+v", commits, got)
		}
	}
}

func TestApplyXP_Additive(t *testing.T) {
	// Crediting n commits at once must equal crediting them one at a time.
	batch := ApplyXP(Progress{Level: 1, XP: 40, XPToNextLevel: 100}, 37)

	stepwise := Progress{Level: 1, XP: 40, XPToNextLevel: 100}
	for i := 0; i < 37; i++ {
		stepwise = ApplyXP(stepwise, 1)
	}

	if batch != stepwise {
		t.Errorf("batch %+v != stepwise %+v", batch, stepwise)
	}
}
