package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marwanbukhori/commit-life/internal/garden"
	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
	"github.com/marwanbukhori/commit-life/internal/validation"
)

// FreePillarLimit is the pillar count available without a subscription.
const FreePillarLimit = 2

type PillarService struct {
	repo       repository.PillarRepository
	companions repository.CompanionRepository
	habits     repository.HabitRepository

	now func() time.Time
}

func NewPillarService(
	repo repository.PillarRepository,
	companions repository.CompanionRepository,
	habits repository.HabitRepository,
) *PillarService {
	return &PillarService{
		repo:       repo,
		companions: companions,
		habits:     habits,
		now:        time.Now,
	}
}

// PillarDetails is a pillar with its companion and habits, the habits carrying
// their computed completion status for the caller's timezone.
type PillarDetails struct {
	Pillar    *model.Pillar     `json:"pillar"`
	Companion *model.Companion  `json:"companion"`
	Habits    []*HabitWithState `json:"habits"`
}

// Create provisions a pillar and its companion. Non-premium users are capped
// at FreePillarLimit pillars and common companion kinds. The count check is
// read-then-decide; a race between two creates can exceed the limit by one,
// which is accepted rather than locked against.
func (s *PillarService) Create(user *model.User, name, description, color, kind, companionName string) (*model.Pillar, *model.Companion, error) {
	err := validation.ValidateName(name)
	if err != nil {
		return nil, nil, err
	}

	premium := user.Premium(s.now())

	if !premium {
		count, err := s.repo.CountByUser(user.ID)
		if err != nil {
			return nil, nil, err
		}
		if count >= FreePillarLimit {
			return nil, nil, ErrPillarLimitReached
		}
	}

	if model.PremiumKind(kind) && !premium {
		return nil, nil, ErrPremiumRequired
	}

	if kind == "" {
		kind = model.KindChicken
	}

	now := s.now()
	pillar := &model.Pillar{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   now,
	}

	err = s.repo.Create(pillar)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pillar: %w", err)
	}

	family := garden.FamilyForKind(kind)
	companion := &model.Companion{
		ID:            uuid.New().String(),
		PillarID:      pillar.ID,
		Name:          defaultCompanionName(kind, companionName),
		Kind:          kind,
		Stage:         garden.InitialStage(family),
		Level:         1,
		XP:            0,
		XPToNextLevel: 100,
		Rarity:        model.RarityForKind(kind),
		Color:         color,
		CreatedAt:     now,
	}

	err = s.companions.Create(companion)
	if err != nil {
		// Rollback: drop the pillar so no pillar exists without a companion
		delErr := s.repo.Delete(user.ID, pillar.ID)
		if delErr != nil {
			slog.Error("failed to delete pillar during rollback", "error", delErr, "pillar_id", pillar.ID)
		}
		return nil, nil, fmt.Errorf("failed to create companion: %w", err)
	}

	return pillar, companion, nil
}

func (s *PillarService) Pillars(userID string) ([]*model.Pillar, error) {
	return s.repo.Pillars(userID)
}

func (s *PillarService) ByID(userID, pillarID string) (*model.Pillar, error) {
	return s.repo.ByID(userID, pillarID)
}

// Details loads the pillar, its companion, and its habits with completion
// computed against now in loc.
func (s *PillarService) Details(userID, pillarID string, loc *time.Location) (*PillarDetails, error) {
	pillar, err := s.repo.ByID(userID, pillarID)
	if err != nil {
		return nil, err
	}

	companion, err := s.companions.ByPillar(pillarID)
	if err != nil && err != repository.ErrCompanionNotFound {
		return nil, err
	}

	habits, err := s.habits.ByPillar(pillarID)
	if err != nil {
		return nil, err
	}

	return &PillarDetails{
		Pillar:    pillar,
		Companion: companion,
		Habits:    withState(habits, s.now(), loc),
	}, nil
}

func (s *PillarService) Update(userID, pillarID, name, description, color string) (*model.Pillar, error) {
	pillar, err := s.repo.ByID(userID, pillarID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	pillar.Name = name
	pillar.Description = description
	pillar.Color = color

	err = s.repo.Update(pillar)
	if err != nil {
		return nil, err
	}

	return pillar, nil
}

// Delete removes the pillar on explicit owner action; habits, logs and the
// companion cascade in the database.
func (s *PillarService) Delete(userID, pillarID string) error {
	return s.repo.Delete(userID, pillarID)
}

// CompanionByPillar exposes the pillar's companion for ownership-checked reads.
func (s *PillarService) CompanionByPillar(userID, pillarID string) (*model.Companion, error) {
	_, err := s.repo.ByID(userID, pillarID)
	if err != nil {
		return nil, err
	}

	return s.companions.ByPillar(pillarID)
}

func defaultCompanionName(kind, name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	if kind == model.KindChicken {
		return "Chick"
	}
	return kind
}
