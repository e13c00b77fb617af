package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

func TestUserService_Create_AppliesDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	u, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if u.ID == 0 {
		t.Fatal("expected generated id")
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, u.Role)
	}
	if !u.IsActive {
		t.Fatal("expected is_active default true")
	}
	if u.UpdatedAt.Before(u.CreatedAt) {
		t.Fatal("updated_at must not precede created_at")
	}
}

func TestUserService_Create_HonoursExplicitFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	role := domain.RoleAdmin
	inactive := false
	u, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Role:     &role,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", u.Role)
	}
	if u.IsActive {
		t.Fatal("expected is_active false")
	}
}

func TestUserService_GetByID_AbsenceIsNotAnError(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	u, err := svc.GetByID(context.Background(), 99999)
	if err != nil {
		t.Fatalf("absence must not raise: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil, got %+v", u)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Carol",
		Email: "carol@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Caroline"
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:   created.ID,
		Name: &newName,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "Caroline" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Email != "carol@example.com" {
		t.Fatalf("unspecified email changed: %q", updated.Email)
	}
	if updated.Role != created.Role || updated.IsActive != created.IsActive {
		t.Fatal("unspecified fields changed")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("updated_at must strictly advance")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at must never change")
	}
}

func TestUserService_Update_MissingTarget(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	name := "Nobody"
	_, err := svc.Update(context.Background(), ports.UpdateUserInput{ID: 42, Name: &name})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Dave",
		Email: "dave@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got (%v, %v)", deleted, err)
	}

	u, err := svc.GetByID(context.Background(), created.ID)
	if err != nil || u != nil {
		t.Fatalf("expected absence after delete, got (%+v, %v)", u, err)
	}

	// Deleting again is success=false, not an error.
	deleted, err = svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("repeat delete must not raise: %v", err)
	}
	if deleted {
		t.Fatal("expected success=false for missing target")
	}
}
