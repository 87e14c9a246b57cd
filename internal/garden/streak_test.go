package garden

import (
	"testing"
	"time"
)

func TestStreaks_Empty(t *testing.T) {
	s := Streaks(nil, ts("2024-03-14T10:00:00Z"), time.UTC)
	if s.Current != 0 || s.Best != 0 {
		t.Errorf("expected {0 0}, got %+v", s)
	}
}

func TestStreaks_ContinuityWithGap(t *testing.T) {
	now := ts("2024-03-14T10:00:00Z")
	commits := []time.Time{
		ts("2024-03-14T08:00:00Z"), // today
		ts("2024-03-13T22:00:00Z"), // yesterday
		ts("2024-03-12T07:00:00Z"),
		// gap on the 10th/11th
		ts("2024-03-09T12:00:00Z"),
		ts("2024-03-08T12:00:00Z"),
	}

	s := Streaks(commits, now, time.UTC)
	if s.Current != 3 {
		t.Errorf("current = %d, want 3", s.Current)
	}
	if s.Best != 3 {
		t.Errorf("best = %d, want 3", s.Best)
	}
}

func TestStreaks_BestExceedsCurrent(t *testing.T) {
	now := ts("2024-03-14T10:00:00Z")
	commits := []time.Time{
		ts("2024-03-14T08:00:00Z"), // today only
		// long historical run
		ts("2024-03-05T09:00:00Z"),
		ts("2024-03-04T09:00:00Z"),
		ts("2024-03-03T09:00:00Z"),
		ts("2024-03-02T09:00:00Z"),
		ts("2024-03-01T09:00:00Z"),
	}

	s := Streaks(commits, now, time.UTC)
	if s.Current != 1 {
		t.Errorf("current = %d, want 1", s.Current)
	}
	if s.Best != 5 {
		t.Errorf("best = %d, want 5", s.Best)
	}
}

func TestStreaks_NoCommitToday(t *testing.T) {
	now := ts("2024-03-14T10:00:00Z")
	commits := []time.Time{
		ts("2024-03-13T08:00:00Z"),
		ts("2024-03-12T08:00:00Z"),
	}

	// The current streak is anchored at today; yesterday's run doesn't count.
	s := Streaks(commits, now, time.UTC)
	if s.Current != 0 {
		t.Errorf("current = %d, want 0", s.Current)
	}
	if s.Best != 2 {
		t.Errorf("best = %d, want 2", s.Best)
	}
}

func TestStreaks_DedupesSameDay(t *testing.T) {
	now := ts("2024-03-14T10:00:00Z")
	commits := []time.Time{
		ts("2024-03-14T06:00:00Z"),
		ts("2024-03-14T07:00:00Z"),
		ts("2024-03-14T08:00:00Z"),
		ts("2024-03-13T08:00:00Z"),
	}

	s := Streaks(commits, now, time.UTC)
	if s.Current != 2 {
		t.Errorf("current = %d, want 2 (same-day commits count once)", s.Current)
	}
	if s.Best != 2 {
		t.Errorf("best = %d, want 2", s.Best)
	}
}

func TestStreaks_TimezoneSplitsDays(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	now := ts("2024-01-02T02:00:00Z") // Jan 2, 10:00 in UTC+8

	commits := []time.Time{
		ts("2024-01-01T23:30:00Z"), // Jan 2 local
		ts("2024-01-01T01:00:00Z"), // Jan 1 local
	}

	s := Streaks(commits, now, loc)
	if s.Current != 2 {
		t.Errorf("current = %d, want 2 (local days Jan 1 and Jan 2)", s.Current)
	}

	// In UTC both commits land on Jan 1 and today is Jan 2: streak broken.
	s = Streaks(commits, now, time.UTC)
	if s.Current != 0 {
		t.Errorf("utc current = %d, want 0", s.Current)
	}
	if s.Best != 1 {
		t.Errorf("utc best = %d, want 1", s.Best)
	}
}
