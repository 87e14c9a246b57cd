package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/marwanbukhori/commit-life/internal/garden"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
)

// commitRetries bounds retry attempts when the storage layer reports a write
// conflict. Contention is low (a user racing themselves), so no backoff.
const commitRetries = 3

// CommitService records habit completions. Commit is the single mutating
// entry point for progression state: habit streak, companion XP/level/stage,
// pillar counter and the commit ledger all change together or not at all.
type CommitService struct {
	commits repository.CommitRepository

	now func() time.Time
}

func NewCommitService(commits repository.CommitRepository) *CommitService {
	return &CommitService{
		commits: commits,
		now:     time.Now,
	}
}

// Commit marks the habit done for the current period. A commit inside the
// habit's current completion window is an idempotent no-op for every
// frequency: the unchanged habit is returned and nothing is written. This
// guards both onetime habits (which never re-open) and double-taps on
// daily/weekly habits that would otherwise inflate the streak.
func (s *CommitService) Commit(userID, habitID, remark string, loc *time.Location) (*model.Habit, error) {
	var result *model.Habit

	var err error
	for attempt := 0; attempt < commitRetries; attempt++ {
		result, err = s.commitOnce(userID, habitID, remark, loc)
		if err == nil || !repository.IsConflict(err) {
			return result, err
		}
		slog.Warn("commit conflict, retrying", "habit_id", habitID, "attempt", attempt+1)
	}

	return nil, fmt.Errorf("commit failed after %d attempts: %w", commitRetries, err)
}

func (s *CommitService) commitOnce(userID, habitID, remark string, loc *time.Location) (*model.Habit, error) {
	var result *model.Habit

	err := s.commits.InTx(func(tx repository.CommitTx) error {
		habit, err := tx.HabitByID(habitID)
		if err != nil {
			return err
		}

		pillar, err := tx.PillarByID(habit.PillarID)
		if err != nil {
			return err
		}
		if pillar.UserID != userID {
			return ErrUnauthorized
		}

		now := s.now()

		// Already done for this period: return unchanged, write nothing.
		if garden.CompletedInPeriod(habit.Frequency, habit.LastCompletedAt, now, loc) {
			result = habit
			return nil
		}

		habit.Streak++
		habit.LastCompletedAt = &now
		habit.LastRemark = optional(remark)
		habit.CompletedToday = true // legacy flag, read paths use the computed window

		err = tx.UpdateHabit(habit)
		if err != nil {
			return err
		}

		companion, err := tx.CompanionByPillar(pillar.ID)
		if err != nil {
			return err
		}
		if companion != nil {
			progress := garden.ApplyXP(garden.Progress{
				Level:         companion.Level,
				XP:            companion.XP,
				XPToNextLevel: companion.XPToNextLevel,
			}, 1)

			companion.Level = progress.Level
			companion.XP = progress.XP
			companion.XPToNextLevel = progress.XPToNextLevel
			companion.Stage = garden.ResolveStage(progress.Level, garden.FamilyForKind(companion.Kind))

			err = tx.UpdateCompanion(companion)
			if err != nil {
				return err
			}
		}

		err = tx.IncrementPillarCommits(pillar.ID)
		if err != nil {
			return err
		}

		err = tx.AppendLog(&model.CommitLog{
			ID:        uuid.New().String(),
			HabitID:   habit.ID,
			Remark:    optional(remark),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		result = habit
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
