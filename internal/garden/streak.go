package garden

import (
	"sort"
	"time"
)

// Streak summarizes consecutive-day activity derived from the commit ledger.
type Streak struct {
	Current int
	Best    int
}

// Streaks computes the current and best run of consecutive calendar days with
// at least one commit. Timestamps are bucketed into calendar days in loc and
// deduplicated first, so multiple commits on one day count once. The current
// streak is anchored at the day containing now and stops at the first gap;
// the best streak is the longest run anywhere in the history.
func Streaks(commits []time.Time, now time.Time, loc *time.Location) Streak {
	if loc == nil {
		loc = time.UTC
	}

	days := distinctDaysDesc(commits, loc)
	if len(days) == 0 {
		return Streak{}
	}

	today := dayOf(now.In(loc))

	var s Streak
	for i, d := range days {
		if d.Equal(today.AddDate(0, 0, -i)) {
			s.Current++
		} else {
			break
		}
	}

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			run++
		} else {
			if run > s.Best {
				s.Best = run
			}
			run = 1
		}
	}
	if run > s.Best {
		s.Best = run
	}
	return s
}

// distinctDaysDesc maps timestamps to UTC-midnight markers of their local
// calendar day, deduplicated and sorted newest first. Marking days in UTC
// keeps the 24h adjacency check exact even across DST transitions in loc.
func distinctDaysDesc(commits []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(commits))
	days := make([]time.Time, 0, len(commits))
	for _, c := range commits {
		d := dayOf(c.In(loc))
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// dayOf collapses a local time to a timezone-free day marker.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
