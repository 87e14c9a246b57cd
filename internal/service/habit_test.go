package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/marwanbukhori/commit-life/internal/model"
)

func newHabitService(habits *fakeHabitRepo, pillars *fakePillarRepo, now time.Time) *HabitService {
	svc := NewHabitService(habits, pillars)
	svc.now = func() time.Time { return now }
	return svc
}

func TestHabitCreateSanitizesFrequency(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	habits := &fakeHabitRepo{}
	svc := newHabitService(habits, pillars, now)

	habit, err := svc.Create("user-1", "p1", "Read", "biweekly")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if habit.Frequency != model.FrequencyDaily {
		t.Errorf("expected unknown frequency to fall back to daily, got %q", habit.Frequency)
	}
}

func TestHabitCreateForeignPillar(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	svc := newHabitService(&fakeHabitRepo{}, pillars, now)

	_, err := svc.Create("user-2", "p1", "Read", "daily")
	if err == nil {
		t.Fatal("expected error for foreign pillar, got nil")
	}
}

func TestHabitUpdateOwnership(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	habits := &fakeHabitRepo{habits: []*model.Habit{{ID: "h1", PillarID: "p1", Name: "Read"}}}
	svc := newHabitService(habits, pillars, now)

	_, err := svc.Update("user-2", "h1", "Read more", "weekly")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	habit, err := svc.Update("user-1", "h1", "Read more", "weekly")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if habit.Name != "Read more" || habit.Frequency != model.FrequencyWeekly {
		t.Errorf("unexpected habit after update: %+v", habit)
	}
}

func TestHabitBulkImportPremiumGate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	svc := newHabitService(&fakeHabitRepo{}, pillars, now)

	_, err := svc.BulkImport(freeUser(), "p1", []HabitImport{{Name: "Read", Frequency: "daily"}})
	if !errors.Is(err, ErrPremiumRequired) {
		t.Fatalf("expected ErrPremiumRequired, got %v", err)
	}
}

func TestHabitBulkImport(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	habits := &fakeHabitRepo{}
	svc := newHabitService(habits, pillars, now)

	items := []HabitImport{
		{Name: "Read", Frequency: "daily"},
		{Name: "", Frequency: "daily"},
		{Name: strings.Repeat("x", 150), Frequency: "weekly"},
		{Name: "Stretch", Frequency: "hourly"},
	}

	imported, err := svc.BulkImport(premiumUser(now), "p1", items)
	if err != nil {
		t.Fatalf("BulkImport returned error: %v", err)
	}

	if imported != 3 {
		t.Errorf("expected 3 imported (empty name skipped), got %d", imported)
	}

	stored, _ := habits.ByPillar("p1")
	if len(stored) != 3 {
		t.Fatalf("expected 3 habits stored, got %d", len(stored))
	}
	if len(stored[1].Name) != 100 {
		t.Errorf("expected long name capped at 100 chars, got %d", len(stored[1].Name))
	}
	if stored[2].Frequency != model.FrequencyDaily {
		t.Errorf("expected unknown frequency sanitized to daily, got %q", stored[2].Frequency)
	}
}

func TestHabitBulkImportCapsBatch(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	habits := &fakeHabitRepo{}
	svc := newHabitService(habits, pillars, now)

	items := make([]HabitImport, bulkImportMax+50)
	for i := range items {
		items[i] = HabitImport{Name: "Habit", Frequency: "daily"}
	}

	imported, err := svc.BulkImport(premiumUser(now), "p1", items)
	if err != nil {
		t.Fatalf("BulkImport returned error: %v", err)
	}
	if imported != bulkImportMax {
		t.Errorf("expected batch capped at %d, got %d", bulkImportMax, imported)
	}
}

func TestHabitForUserComputesState(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	doneToday := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

	pillars := &fakePillarRepo{pillars: []*model.Pillar{{ID: "p1", UserID: "user-1"}}}
	habits := &fakeHabitRepo{habits: []*model.Habit{
		{ID: "h1", PillarID: "p1", Frequency: model.FrequencyDaily, LastCompletedAt: &doneToday},
	}}
	svc := newHabitService(habits, pillars, now)

	// In UTC+8 the 23:30 UTC "now" is already the next local day, so the
	// morning completion no longer counts.
	kl := time.FixedZone("UTC+8", 8*3600)

	utcView, err := svc.ForUser("user-1", time.UTC)
	if err != nil {
		t.Fatalf("ForUser returned error: %v", err)
	}
	if !utcView[0].Completed {
		t.Error("expected habit completed in UTC view")
	}

	klView, err := svc.ForUser("user-1", kl)
	if err != nil {
		t.Fatalf("ForUser returned error: %v", err)
	}
	if klView[0].Completed {
		t.Error("expected habit not completed in UTC+8 view")
	}
}
