package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

func seedUser(t *testing.T, users *stubUserRepo) *domain.User {
	t.Helper()
	svc := NewUserService(users, zerolog.Nop())
	u, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Buyer",
		Email: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestOrderService_Create_DefaultsToPending(t *testing.T) {
	users := newStubUserRepo()
	u := seedUser(t, users)
	svc := NewOrderService(newStubOrderRepo(), users, zerolog.Nop())

	o, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:      u.ID,
		TotalAmount: decimal.NewFromFloat(100.50),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if o.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %q", o.Status)
	}
	if !o.TotalAmount.Equal(decimal.NewFromFloat(100.50)) {
		t.Fatalf("total changed: %s", o.TotalAmount)
	}
}

func TestOrderService_Create_DanglingUserPerformsNoWrite(t *testing.T) {
	orders := newStubOrderRepo()
	svc := NewOrderService(orders, newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:      99999,
		TotalAmount: decimal.Zero,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if !strings.Contains(err.Error(), "99999") {
		t.Fatalf("error must name the offending id: %v", err)
	}

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no rows after failed create, got %d", len(all))
	}
}

func TestOrderService_Update_StatusOnly(t *testing.T) {
	users := newStubUserRepo()
	u := seedUser(t, users)
	svc := NewOrderService(newStubOrderRepo(), users, zerolog.Nop())

	notes := "rush delivery"
	created, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:      u.ID,
		TotalAmount: decimal.NewFromFloat(42),
		Notes:       &notes,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	shipped := domain.StatusShipped
	updated, err := svc.Update(context.Background(), ports.UpdateOrderInput{
		ID:     created.ID,
		Status: &shipped,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.StatusShipped {
		t.Fatalf("expected shipped, got %q", updated.Status)
	}
	if updated.UserID != u.ID || !updated.TotalAmount.Equal(created.TotalAmount) {
		t.Fatal("unspecified fields changed")
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Fatal("unspecified notes changed")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("updated_at must strictly advance")
	}
}

func TestOrderService_Update_ReassignToDanglingUser(t *testing.T) {
	users := newStubUserRepo()
	u := seedUser(t, users)
	svc := NewOrderService(newStubOrderRepo(), users, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:      u.ID,
		TotalAmount: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	missing := int64(777)
	_, err = svc.Update(context.Background(), ports.UpdateOrderInput{
		ID:     created.ID,
		UserID: &missing,
	})
	if !errors.Is(err, domain.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}

	current, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("getById: %v", err)
	}
	if current.UserID != u.ID {
		t.Fatal("failed update must not change user_id")
	}
}

func TestOrderService_Delete_LeavesNoTrace(t *testing.T) {
	users := newStubUserRepo()
	u := seedUser(t, users)
	svc := NewOrderService(newStubOrderRepo(), users, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:      u.ID,
		TotalAmount: decimal.NewFromFloat(10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got (%v, %v)", deleted, err)
	}

	o, err := svc.GetByID(context.Background(), created.ID)
	if err != nil || o != nil {
		t.Fatalf("expected absence after delete, got (%+v, %v)", o, err)
	}
}
