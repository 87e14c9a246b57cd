package garden

import (
	"reflect"
	"testing"
	"time"
)

func TestHeatmap_BucketsAndSorts(t *testing.T) {
	start := ts("2024-01-01T00:00:00Z")
	end := ts("2024-01-31T00:00:00Z")

	commits := []time.Time{
		ts("2024-01-05T09:00:00Z"),
		ts("2024-01-05T21:00:00Z"),
		ts("2024-01-03T12:00:00Z"),
		ts("2024-02-01T00:00:00Z"), // outside range
		ts("2023-12-31T23:59:59Z"), // outside range
	}

	got := Heatmap(commits, start, end, time.UTC)
	want := []DayCount{
		{Date: "2024-01-03", Count: 1},
		{Date: "2024-01-05", Count: 2},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Heatmap = %v, want %v", got, want)
	}
}

func TestHeatmap_LateNightCommitMovesLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	start := ts("2024-01-01T00:00:00Z")
	end := ts("2024-01-31T00:00:00Z")

	// 23:30 UTC on Jan 1 is 07:30 on Jan 2 in UTC+8.
	commits := []time.Time{ts("2024-01-01T23:30:00Z")}

	got := Heatmap(commits, start, end, loc)
	if len(got) != 1 || got[0].Date != "2024-01-02" {
		t.Fatalf("expected single bucket on 2024-01-02, got %v", got)
	}

	got = Heatmap(commits, start, end, time.UTC)
	if len(got) != 1 || got[0].Date != "2024-01-01" {
		t.Fatalf("expected single UTC bucket on 2024-01-01, got %v", got)
	}
}

func TestHeatmap_InclusiveBounds(t *testing.T) {
	start := ts("2024-01-01T00:00:00Z")
	end := ts("2024-01-07T00:00:00Z")

	commits := []time.Time{
		ts("2024-01-01T00:00:00Z"),
		ts("2024-01-07T23:59:59Z"), // same local day as end: still included
	}

	got := Heatmap(commits, start, end, time.UTC)
	if len(got) != 2 {
		t.Fatalf("expected both boundary days included, got %v", got)
	}
}

func TestHeatmap_Empty(t *testing.T) {
	got := Heatmap(nil, ts("2024-01-01T00:00:00Z"), ts("2024-01-31T00:00:00Z"), time.UTC)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
