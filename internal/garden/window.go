package garden

import (
	"time"

	"github.com/marwanbukhori/commit-life/internal/model"
)

// CompletedInPeriod reports whether a habit with the given frequency and last
// completion is already done for the period containing now. Calendar
// boundaries are computed in loc, supplied by the caller from the request
// locale; a nil loc means UTC.
//
//	daily:   same calendar day as now
//	weekly:  same ISO week as now
//	onetime: done once, done forever
//	custom and anything unrecognized fall back to the daily rule
func CompletedInPeriod(frequency string, lastCompletedAt *time.Time, now time.Time, loc *time.Location) bool {
	if lastCompletedAt == nil {
		return false
	}
	if loc == nil {
		loc = time.UTC
	}

	last := lastCompletedAt.In(loc)
	cur := now.In(loc)

	switch frequency {
	case model.FrequencyWeekly:
		ly, lw := last.ISOWeek()
		cy, cw := cur.ISOWeek()
		return ly == cy && lw == cw
	case model.FrequencyOnetime:
		return true
	default:
		// daily, custom, unknown
		return sameDay(last, cur)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
