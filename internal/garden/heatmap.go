package garden

import (
	"sort"
	"time"
)

// DayCount is one heatmap cell: a local calendar date (2006-01-02) and the
// number of commits logged on it.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Heatmap buckets commit timestamps into calendar-day counts computed in loc,
// keeping only days inside [start, end] (inclusive, also interpreted in loc).
// Days without activity are omitted; dense calendars fill zeros client-side.
// Counts are raw ledger rows, not deduplicated by habit.
func Heatmap(commits []time.Time, start, end time.Time, loc *time.Location) []DayCount {
	if loc == nil {
		loc = time.UTC
	}

	first := dayOf(start.In(loc))
	last := dayOf(end.In(loc))

	counts := make(map[string]int)
	for _, c := range commits {
		day := dayOf(c.In(loc))
		if day.Before(first) || day.After(last) {
			continue
		}
		counts[day.Format("2006-01-02")]++
	}

	out := make([]DayCount, 0, len(counts))
	for date, n := range counts {
		out = append(out, DayCount{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
