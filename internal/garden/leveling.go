// Package garden holds the progression rules for companions and habits:
// the leveling curve, evolution stages, completion windows, and the
// streak/heatmap math used by analytics. Everything here is pure; callers
// supply timestamps and persist the results.
package garden

// XPPerCommit is the experience credited for each habit commit.
const XPPerCommit = 10

// Progress is the leveling state of a companion.
type Progress struct {
	Level         int
	XP            int
	XPToNextLevel int
}

// ApplyXP credits commits against the progress and resolves any level-ups.
// The threshold grows 20% per level (exact integer math: next*6/5), so the
// loop always terminates. After the call 0 <= XP < XPToNextLevel holds and
// Level never decreases.
func ApplyXP(p Progress, commits int) Progress {
	p.XP += XPPerCommit * commits
	for p.XP >= p.XPToNextLevel {
		p.XP -= p.XPToNextLevel
		p.Level++
		p.XPToNextLevel = p.XPToNextLevel * 6 / 5
	}
	return p
}
