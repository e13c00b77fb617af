package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

type stubProductService struct {
	createFn  func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	getAllFn  func(ctx context.Context) ([]domain.Product, error)
	updateFn  func(ctx context.Context, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) GetAll(ctx context.Context) ([]domain.Product, error) {
	return s.getAllFn(ctx)
}

func (s *stubProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, input)
}

func (s *stubProductService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleteFn(ctx, id)
}

func newRPCContext(t *testing.T, e *echo.Echo, procedure, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+procedure, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/rpc/" + procedure)
	return c, rec
}

func TestProductHandler_Create_PriceIsNumericJSON(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	now := time.Now().UTC()
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if !input.Price.Equal(decimal.NewFromFloat(19.99)) {
				t.Fatalf("unexpected price: %s", input.Price)
			}
			return &domain.Product{
				ID:        1,
				Name:      input.Name,
				Price:     input.Price,
				IsActive:  true,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newRPCContext(t, e, "products.create", `{"name":"Widget","price":19.99}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Price must come back as a JSON number, never the stored text form.
	price, ok := resp["price"].(float64)
	if !ok {
		t.Fatalf("price is not numeric: %T", resp["price"])
	}
	if price != 19.99 {
		t.Fatalf("expected 19.99, got %v", price)
	}
	if resp["id"].(float64) != 1 {
		t.Fatalf("expected id 1, got %v", resp["id"])
	}
}

func TestProductHandler_Create_RejectsNonPositivePrice(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubProductService{
		createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newRPCContext(t, e, "products.create", `{"name":"Widget","price":-5}`)
	err := h.Create(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_GetByID_AbsenceYieldsNull(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubProductService{
		getByIDFn: func(_ context.Context, id int64) (*domain.Product, error) {
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newRPCContext(t, e, "products.getById", `{"id":99999}`)
	if err := h.GetByID(c); err != nil {
		t.Fatalf("absence must not raise: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Fatalf("expected null body, got %q", body)
	}
}

func TestProductHandler_Delete_MissingTarget(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubProductService{
		deleteFn: func(_ context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newRPCContext(t, e, "products.delete", `{"id":123}`)
	if err := h.Delete(c); err != nil {
		t.Fatalf("missing target must not raise: %v", err)
	}

	var resp deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success {
		t.Fatal("expected success=false")
	}
}
