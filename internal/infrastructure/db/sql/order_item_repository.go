package sql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// orderItemRecord persists UnitPrice and Subtotal as text; see money.go.
type orderItemRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	ProductID int64     `gorm:"not null;index"`
	Quantity  int       `gorm:"not null"`
	UnitPrice string    `gorm:"type:text;not null"`
	Subtotal  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (orderItemRecord) TableName() string { return "order_items" }

func orderItemFromDomain(it *domain.OrderItem) orderItemRecord {
	return orderItemRecord{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: encodeAmount(it.UnitPrice),
		Subtotal:  encodeAmount(it.Subtotal),
		CreatedAt: it.CreatedAt,
	}
}

func (rec orderItemRecord) toDomain() (domain.OrderItem, error) {
	unitPrice, err := decodeAmount("order_items.unit_price", rec.UnitPrice)
	if err != nil {
		return domain.OrderItem{}, err
	}
	subtotal, err := decodeAmount("order_items.subtotal", rec.Subtotal)
	if err != nil {
		return domain.OrderItem{}, err
	}
	return domain.OrderItem{
		ID:        rec.ID,
		OrderID:   rec.OrderID,
		ProductID: rec.ProductID,
		Quantity:  rec.Quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
		CreatedAt: rec.CreatedAt,
	}, nil
}

type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) Create(ctx context.Context, it *domain.OrderItem) error {
	rec := orderItemFromDomain(it)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	it.ID = rec.ID
	return nil
}

func (r *OrderItemRepository) FindAll(ctx context.Context) ([]domain.OrderItem, error) {
	return r.findWhere(ctx, nil)
}

func (r *OrderItemRepository) FindByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	return r.findWhere(ctx, map[string]any{"order_id": orderID})
}

func (r *OrderItemRepository) findWhere(ctx context.Context, cond map[string]any) ([]domain.OrderItem, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if cond != nil {
		q = q.Where(cond)
	}
	var recs []orderItemRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(recs))
	for _, rec := range recs {
		it, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *OrderItemRepository) FindByID(ctx context.Context, id int64) (*domain.OrderItem, error) {
	var rec orderItemRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderItemNotFound
		}
		return nil, err
	}
	it, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderItemRepository) Update(ctx context.Context, it *domain.OrderItem) error {
	rec := orderItemFromDomain(it)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *OrderItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&orderItemRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
