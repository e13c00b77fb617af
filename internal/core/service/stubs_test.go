package service

// In-memory stub repositories shared by the service tests. They mirror the
// contract of the sql repositories: ids are assigned on create, FindAll
// preserves insertion order, FindByID returns the entity's not-found
// sentinel, Delete reports whether a row was removed.

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type stubUserRepo struct {
	rows   map[int64]*domain.User
	order  []int64
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[int64]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.rows[u.ID] = &clone
	r.order = append(r.order, u.ID)
	return nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.rows[id])
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	clone := *u
	r.rows[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

type stubCategoryRepo struct {
	rows   map[int64]*domain.Category
	order  []int64
	nextID int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{rows: make(map[int64]*domain.Category), nextID: 1}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.rows[c.ID] = &clone
	r.order = append(r.order, c.ID)
	return nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.rows[id])
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubProductRepo struct {
	rows   map[int64]*domain.Product
	order  []int64
	nextID int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{rows: make(map[int64]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.rows[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.rows[id])
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	clone := *p
	r.rows[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubOrderRepo struct {
	rows   map[int64]*domain.Order
	order  []int64
	nextID int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{rows: make(map[int64]*domain.Order), nextID: 1}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	o.ID = r.nextID
	r.nextID++
	clone := *o
	r.rows[o.ID] = &clone
	r.order = append(r.order, o.ID)
	return nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.rows[id])
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	clone := *o
	r.rows[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

type stubOrderItemRepo struct {
	rows   map[int64]*domain.OrderItem
	order  []int64
	nextID int64
}

func newStubOrderItemRepo() *stubOrderItemRepo {
	return &stubOrderItemRepo{rows: make(map[int64]*domain.OrderItem), nextID: 1}
}

func (r *stubOrderItemRepo) Create(_ context.Context, it *domain.OrderItem) error {
	it.ID = r.nextID
	r.nextID++
	clone := *it
	r.rows[it.ID] = &clone
	r.order = append(r.order, it.ID)
	return nil
}

func (r *stubOrderItemRepo) FindAll(_ context.Context) ([]domain.OrderItem, error) {
	out := make([]domain.OrderItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.rows[id])
	}
	return out, nil
}

func (r *stubOrderItemRepo) FindByOrderID(_ context.Context, orderID int64) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	for _, id := range r.order {
		if r.rows[id].OrderID == orderID {
			out = append(out, *r.rows[id])
		}
	}
	return out, nil
}

func (r *stubOrderItemRepo) FindByID(_ context.Context, id int64) (*domain.OrderItem, error) {
	it, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrOrderItemNotFound
	}
	clone := *it
	return &clone, nil
}

func (r *stubOrderItemRepo) Update(_ context.Context, it *domain.OrderItem) error {
	clone := *it
	r.rows[it.ID] = &clone
	return nil
}

func (r *stubOrderItemRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}
