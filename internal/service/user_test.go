package service

import (
	"errors"
	"testing"
	"time"

	"github.com/marwanbukhori/commit-life/internal/model"
)

func adminUser(id string) *model.User {
	return &model.User{ID: id, Role: model.RoleAdmin}
}

func TestToggleRole(t *testing.T) {
	users := &fakeUserRepo{users: []*model.User{
		{ID: "admin", Role: model.RoleAdmin},
		{ID: "u1", Role: model.RoleUser},
	}}
	svc := NewUserService(users)

	err := svc.ToggleRole(adminUser("admin"), "u1")
	if err != nil {
		t.Fatalf("ToggleRole returned error: %v", err)
	}

	u, _ := users.ByID("u1")
	if u.Role != model.RoleAdmin {
		t.Errorf("expected u1 promoted to admin, got %q", u.Role)
	}

	err = svc.ToggleRole(adminUser("admin"), "u1")
	if err != nil {
		t.Fatalf("ToggleRole returned error: %v", err)
	}
	u, _ = users.ByID("u1")
	if u.Role != model.RoleUser {
		t.Errorf("expected u1 demoted back to user, got %q", u.Role)
	}
}

func TestToggleRoleGuards(t *testing.T) {
	users := &fakeUserRepo{users: []*model.User{
		{ID: "admin", Role: model.RoleAdmin},
		{ID: "u1", Role: model.RoleUser},
	}}
	svc := NewUserService(users)

	err := svc.ToggleRole(&model.User{ID: "u1", Role: model.RoleUser}, "admin")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	err = svc.ToggleRole(adminUser("admin"), "admin")
	if !errors.Is(err, ErrSelfTarget) {
		t.Fatalf("expected ErrSelfTarget for self-demotion, got %v", err)
	}
}

func TestTogglePremium(t *testing.T) {
	users := &fakeUserRepo{users: []*model.User{
		{ID: "admin", Role: model.RoleAdmin},
		{ID: "u1"},
	}}
	svc := NewUserService(users)

	err := svc.TogglePremium(adminUser("admin"), "u1")
	if err != nil {
		t.Fatalf("TogglePremium returned error: %v", err)
	}

	u, _ := users.ByID("u1")
	if !u.IsPremium {
		t.Error("expected u1 premium after toggle")
	}
}

func TestDeleteUserGuards(t *testing.T) {
	users := &fakeUserRepo{users: []*model.User{
		{ID: "admin", Role: model.RoleAdmin},
		{ID: "u1"},
	}}
	svc := NewUserService(users)

	err := svc.DeleteUser(adminUser("admin"), "admin")
	if !errors.Is(err, ErrSelfTarget) {
		t.Fatalf("expected ErrSelfTarget for self-deletion, got %v", err)
	}

	err = svc.DeleteUser(adminUser("admin"), "u1")
	if err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if count, _ := users.Count(); count != 1 {
		t.Errorf("expected 1 user remaining, got %d", count)
	}
}

func TestUpdateGardenTitle(t *testing.T) {
	users := &fakeUserRepo{users: []*model.User{{ID: "u1", GardenTitle: "Your Gardens"}}}
	svc := NewUserService(users)

	err := svc.UpdateGardenTitle("u1", "My Sanctuary")
	if err != nil {
		t.Fatalf("UpdateGardenTitle returned error: %v", err)
	}

	u, _ := users.ByID("u1")
	if u.GardenTitle != "My Sanctuary" {
		t.Errorf("expected title updated, got %q", u.GardenTitle)
	}

	err = svc.UpdateGardenTitle("u1", "   ")
	if err == nil {
		t.Fatal("expected error for blank title, got nil")
	}
}

func TestPremiumExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	tests := []struct {
		name string
		user model.User
		want bool
	}{
		{"flag off", model.User{}, false},
		{"flag on no expiry", model.User{IsPremium: true}, true},
		{"flag on future expiry", model.User{IsPremium: true, PremiumExpiresAt: &future}, true},
		{"flag on past expiry", model.User{IsPremium: true, PremiumExpiresAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.Premium(now); got != tt.want {
				t.Errorf("Premium() = %v, want %v", got, tt.want)
			}
		})
	}
}
