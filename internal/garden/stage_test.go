package garden

import (
	"testing"
)

func TestResolveStage_Thresholds(t *testing.T) {
	tests := []struct {
		level  int
		family Family
		want   string
	}{
		{1, FamilyAnimal, StageEgg},
		{9, FamilyAnimal, StageEgg},
		{10, FamilyAnimal, StageBaby},
		{19, FamilyAnimal, StageBaby},
		{20, FamilyAnimal, StageAdult},
		{29, FamilyAnimal, StageAdult},
		{30, FamilyAnimal, StageAncient},
		{99, FamilyAnimal, StageAncient},
		{1, FamilyPlant, StageSeed},
		{9, FamilyPlant, StageSeed},
		{10, FamilyPlant, StageSprout},
		{19, FamilyPlant, StageSprout},
		{20, FamilyPlant, StageBloom},
		{29, FamilyPlant, StageBloom},
		{30, FamilyPlant, StageAncient},
		{200, FamilyPlant, StageAncient},
	}

	for _, tt := range tests {
		got := ResolveStage(tt.level, tt.family)
		if got != tt.want {
			t.Errorf("ResolveStage(%d, %s) = %q, want %q", tt.level, tt.family, got, tt.want)
		}
	}
}

func TestResolveStage_Monotonic(t *testing.T) {
	rank := map[string]int{
		StageEgg: 0, StageSeed: 0,
		StageBaby: 1, StageSprout: 1,
		StageAdult: 2, StageBloom: 2,
		StageAncient: 3,
	}

	for _, family := range []Family{FamilyAnimal, FamilyPlant} {
		prev := -1
		for level := 1; level <= 100; level++ {
			r := rank[ResolveStage(level, family)]
			if r < prev {
				t.Fatalf("%s: stage regressed at level %d", family, level)
			}
			prev = r
		}
	}
}

func TestFamilyForKind(t *testing.T) {
	tests := []struct {
		kind string
		want Family
	}{
		{"Chicken", FamilyAnimal},
		{"Dragon", FamilyAnimal},
		{"Sunflower", FamilyPlant},
		{"CrystalTree", FamilyPlant},
		{"Axolotl", FamilyAnimal}, // unknown kinds default to the animal track
	}

	for _, tt := range tests {
		if got := FamilyForKind(tt.kind); got != tt.want {
			t.Errorf("FamilyForKind(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInitialStage(t *testing.T) {
	if got := InitialStage(FamilyAnimal); got != StageEgg {
		t.Errorf("animal initial stage = %q, want egg", got)
	}
	if got := InitialStage(FamilyPlant); got != StageSeed {
		t.Errorf("plant initial stage = %q, want seed", got)
	}
}
