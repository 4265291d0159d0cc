package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

func TestUserService_SelectRole(t *testing.T) {
	users := newStubUserRepo()
	users.byID["u1"] = &domain.User{ID: "u1", Username: "alice", Credits: 500}
	svc := NewUserService(users, discardLogger)

	user, err := svc.SelectRole(context.Background(), "u1", domain.RoleDesigner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleDesigner {
		t.Errorf("expected role designer, got %q", user.Role)
	}
}

func TestUserService_SelectRole_Invalid(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, discardLogger)

	for _, role := range []string{"", "admin", "Developer"} {
		_, err := svc.SelectRole(context.Background(), "u1", role)
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("role %q: expected ErrInvalidRole, got %v", role, err)
		}
	}
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	users := newStubUserRepo()
	users.byID["u1"] = &domain.User{
		ID:      "u1",
		Profile: domain.Profile{Bio: "old bio", Portfolio: "https://old.example.com"},
	}
	svc := NewUserService(users, discardLogger)

	bio := "new bio"
	user, err := svc.UpdateProfile(context.Background(), "u1", ports.UpdateProfileInput{
		Bio:    &bio,
		Skills: []string{"figma", "react"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Profile.Bio != "new bio" {
		t.Errorf("bio not updated: %q", user.Profile.Bio)
	}
	if user.Profile.Portfolio != "https://old.example.com" {
		t.Errorf("untouched fields must survive: %q", user.Profile.Portfolio)
	}
	if len(user.Profile.Skills) != 2 {
		t.Errorf("skills not updated: %v", user.Profile.Skills)
	}
}

func TestUserService_UpdateAccount_InvalidRole(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, discardLogger)

	role := "moderator"
	_, err := svc.UpdateAccount(context.Background(), "u1", ports.UpdateAccountInput{Role: &role})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Current_NotFound(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, discardLogger)

	_, err := svc.Current(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
