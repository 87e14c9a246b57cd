package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/marwanbukhori/commit-life/internal/model"
	"github.com/marwanbukhori/commit-life/internal/repository"
	"github.com/marwanbukhori/commit-life/internal/validation"
)

var (
	ErrForbidden  = errors.New("admin access required")
	ErrSelfTarget = errors.New("cannot modify your own account this way")
)

type UserService struct {
	repo repository.UserRepository

	now func() time.Time
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.repo.ByID(id)
}

func (s *UserService) UpdateGardenTitle(userID, title string) error {
	err := validation.ValidateName(title)
	if err != nil {
		return err
	}

	user, err := s.repo.ByID(userID)
	if err != nil {
		return err
	}

	user.GardenTitle = title
	return s.repo.Update(user)
}

// ToggleRole flips a user between USER and ADMIN. Admin-only; admins cannot
// demote themselves.
func (s *UserService) ToggleRole(requester *model.User, targetID string) error {
	if !requester.IsAdmin() {
		return ErrForbidden
	}
	if requester.ID == targetID {
		return ErrSelfTarget
	}

	user, err := s.repo.ByID(targetID)
	if err != nil {
		return err
	}

	if user.Role == model.RoleAdmin {
		user.Role = model.RoleUser
	} else {
		user.Role = model.RoleAdmin
	}

	return s.repo.Update(user)
}

// TogglePremium flips the premium flag without touching the expiry. Used by
// admins to grant or revoke access manually.
func (s *UserService) TogglePremium(requester *model.User, targetID string) error {
	if !requester.IsAdmin() {
		return ErrForbidden
	}

	user, err := s.repo.ByID(targetID)
	if err != nil {
		return err
	}

	user.IsPremium = !user.IsPremium
	return s.repo.Update(user)
}

// DeleteUser removes a user and cascades to their pillars, habits, companions
// and commit logs. Admin-only; self-deletion goes through account flows.
func (s *UserService) DeleteUser(requester *model.User, targetID string) error {
	if !requester.IsAdmin() {
		return ErrForbidden
	}
	if requester.ID == targetID {
		return ErrSelfTarget
	}

	err := s.repo.Delete(targetID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *UserService) All(requester *model.User) ([]*model.User, error) {
	if !requester.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.repo.All()
}
