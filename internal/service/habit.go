package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marwanbukhori/commit-life/internal/garden"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
	"github.com/marwanbukhori/commit-life/internal/validation"
)

// bulkImportMax caps a single import batch.
const bulkImportMax = 200

type HabitService struct {
	repo    repository.HabitRepository
	pillars repository.PillarRepository

	now func() time.Time
}

func NewHabitService(repo repository.HabitRepository, pillars repository.PillarRepository) *HabitService {
	return &HabitService{
		repo:    repo,
		pillars: pillars,
		now:     time.Now,
	}
}

// HabitWithState decorates a habit with its computed completion for the
// current period. The stored completed_today flag is ignored; the window
// evaluator is the source of truth for display.
type HabitWithState struct {
	*model.Habit
	Completed bool `json:"completed"`
}

// HabitImport is one row of a bulk import (parsed client-side from a
// spreadsheet; the server only sees name/frequency pairs).
type HabitImport struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

func (s *HabitService) Create(userID, pillarID, name, frequency string) (*model.Habit, error) {
	// Ownership: the pillar must belong to the caller
	_, err := s.pillars.ByID(userID, pillarID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	habit := &model.Habit{
		ID:        uuid.New().String(),
		PillarID:  pillarID,
		Name:      name,
		Frequency: model.ValidFrequency(frequency),
		CreatedAt: s.now(),
	}

	err = s.repo.Create(habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) Update(userID, habitID, name, frequency string) (*model.Habit, error) {
	habit, err := s.owned(userID, habitID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	habit.Name = name
	habit.Frequency = model.ValidFrequency(frequency)

	err = s.repo.Update(habit)
	if err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(userID, habitID string) error {
	_, err := s.owned(userID, habitID)
	if err != nil {
		return err
	}

	return s.repo.Delete(habitID)
}

// ForUser returns all habits across the user's pillars with computed
// completion, for the dashboard's daily/weekly lists.
func (s *HabitService) ForUser(userID string, loc *time.Location) ([]*HabitWithState, error) {
	habits, err := s.repo.ByUser(userID)
	if err != nil {
		return nil, err
	}

	return withState(habits, s.now(), loc), nil
}

// BulkImport creates many habits under one pillar. Premium feature; names
// are length-capped and frequencies sanitized rather than rejected, matching
// the forgiving import behavior clients expect from spreadsheet data.
func (s *HabitService) BulkImport(user *model.User, pillarID string, items []HabitImport) (int, error) {
	if !user.Premium(s.now()) {
		return 0, ErrPremiumRequired
	}

	_, err := s.pillars.ByID(user.ID, pillarID)
	if err != nil {
		return 0, err
	}

	if len(items) == 0 {
		return 0, nil
	}
	if len(items) > bulkImportMax {
		items = items[:bulkImportMax]
	}

	habits := make([]*model.Habit, 0, len(items))
	for _, item := range items {
		name := item.Name
		if len(name) > 100 {
			name = name[:100]
		}
		if name == "" {
			continue
		}
		habits = append(habits, &model.Habit{
			Name:      name,
			Frequency: model.ValidFrequency(item.Frequency),
		})
	}

	err = s.repo.CreateMany(pillarID, habits)
	if err != nil {
		return 0, fmt.Errorf("failed to import habits: %w", err)
	}

	return len(habits), nil
}

// owned loads a habit and verifies the caller owns its pillar.
func (s *HabitService) owned(userID, habitID string) (*model.Habit, error) {
	habit, err := s.repo.ByID(habitID)
	if err != nil {
		return nil, err
	}

	_, err = s.pillars.ByID(userID, habit.PillarID)
	if err == repository.ErrPillarNotFound {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	return habit, nil
}

func withState(habits []*model.Habit, now time.Time, loc *time.Location) []*HabitWithState {
	out := make([]*HabitWithState, len(habits))
	for i, h := range habits {
		out[i] = &HabitWithState{
			Habit:     h,
			Completed: garden.CompletedInPeriod(h.Frequency, h.LastCompletedAt, now, loc),
		}
	}
	return out
}
