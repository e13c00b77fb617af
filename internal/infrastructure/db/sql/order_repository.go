package sql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// orderRecord persists TotalAmount as text; see money.go.
type orderRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	Status      string    `gorm:"not null"`
	TotalAmount string    `gorm:"type:text;not null"`
	Notes       *string
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (orderRecord) TableName() string { return "orders" }

func orderFromDomain(o *domain.Order) orderRecord {
	return orderRecord{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: encodeAmount(o.TotalAmount),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (rec orderRecord) toDomain() (domain.Order, error) {
	total, err := decodeAmount("orders.total_amount", rec.TotalAmount)
	if err != nil {
		return domain.Order{}, err
	}
	return domain.Order{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Status:      domain.OrderStatus(rec.Status),
		TotalAmount: total,
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	rec := orderFromDomain(o)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	o.ID = rec.ID
	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var recs []orderRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var rec orderRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	o, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	rec := orderFromDomain(o)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
