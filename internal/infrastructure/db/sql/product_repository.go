package sql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// productRecord persists Price as text; see money.go.
type productRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"not null"`
	Description   *string
	Price         string    `gorm:"type:text;not null"`
	StockQuantity int       `gorm:"not null"`
	CategoryID    *int64    `gorm:"index"`
	IsActive      bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (productRecord) TableName() string { return "products" }

func productFromDomain(p *domain.Product) productRecord {
	return productRecord{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         encodeAmount(p.Price),
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (rec productRecord) toDomain() (domain.Product, error) {
	price, err := decodeAmount("products.price", rec.Price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{
		ID:            rec.ID,
		Name:          rec.Name,
		Description:   rec.Description,
		Price:         price,
		StockQuantity: rec.StockQuantity,
		CategoryID:    rec.CategoryID,
		IsActive:      rec.IsActive,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}, nil
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	rec := productFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	p.ID = rec.ID
	return nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var recs []productRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var rec productRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	p, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	rec := productFromDomain(p)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
