package service

import (
	"fmt"
	"time"

	"github.com/marwanbukhori/commit-life/internal/garden"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
)

// AnalyticsService serves the heatmap and streak read paths. Reads run
// outside any transaction and reflect the latest committed ledger state.
type AnalyticsService struct {
	logs    repository.CommitLogRepository
	pillars repository.PillarRepository
	habits  repository.HabitRepository

	now func() time.Time
}

func NewAnalyticsService(
	logs repository.CommitLogRepository,
	pillars repository.PillarRepository,
	habits repository.HabitRepository,
) *AnalyticsService {
	return &AnalyticsService{
		logs:    logs,
		pillars: pillars,
		habits:  habits,
		now:     time.Now,
	}
}

// Heatmap buckets the pillar's commits into local calendar days between start
// and end inclusive. Premium feature. The location is supplied by the client
// so late-night commits land on the user's day, not the server's.
func (s *AnalyticsService) Heatmap(user *model.User, pillarID string, start, end time.Time, loc *time.Location) ([]garden.DayCount, error) {
	if !user.Premium(s.now()) {
		return nil, ErrPremiumRequired
	}

	_, err := s.pillars.ByID(user.ID, pillarID)
	if err != nil {
		return nil, err
	}

	// Widen the fetch by a day on each side; local-day bounds are exact in
	// the aggregator.
	times, err := s.logs.TimesByPillarBetween(pillarID, start.AddDate(0, 0, -1), end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load commit log: %w", err)
	}

	return garden.Heatmap(times, start, end, loc), nil
}

// PillarStreaks derives current/best consecutive-day streaks from the
// pillar's full commit history.
func (s *AnalyticsService) PillarStreaks(userID, pillarID string, loc *time.Location) (garden.Streak, error) {
	_, err := s.pillars.ByID(userID, pillarID)
	if err != nil {
		return garden.Streak{}, err
	}

	times, err := s.logs.TimesByPillar(pillarID)
	if err != nil {
		return garden.Streak{}, err
	}

	return garden.Streaks(times, s.now(), loc), nil
}

// HabitStreaks derives streaks from a single habit's ledger.
func (s *AnalyticsService) HabitStreaks(userID, habitID string, loc *time.Location) (garden.Streak, error) {
	habit, err := s.habits.ByID(habitID)
	if err != nil {
		return garden.Streak{}, err
	}

	_, err = s.pillars.ByID(userID, habit.PillarID)
	if err == repository.ErrPillarNotFound {
		return garden.Streak{}, ErrUnauthorized
	}
	if err != nil {
		return garden.Streak{}, err
	}

	times, err := s.logs.TimesByHabit(habitID)
	if err != nil {
		return garden.Streak{}, err
	}

	return garden.Streaks(times, s.now(), loc), nil
}

// UserStreaks spans every habit the user owns, for the dashboard streak card.
func (s *AnalyticsService) UserStreaks(userID string, loc *time.Location) (garden.Streak, error) {
	times, err := s.logs.TimesByUser(userID)
	if err != nil {
		return garden.Streak{}, err
	}

	return garden.Streaks(times, s.now(), loc), nil
}
