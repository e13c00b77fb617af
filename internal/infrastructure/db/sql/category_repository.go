package sql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type categoryRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"not null"`
	Description *string
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (categoryRecord) TableName() string { return "categories" }

func categoryFromDomain(c *domain.Category) categoryRecord {
	return categoryRecord{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (rec categoryRecord) toDomain() domain.Category {
	return domain.Category{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	rec := categoryFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	c.ID = rec.ID
	return nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	var recs []categoryRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, rec.toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	var rec categoryRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	c := rec.toDomain()
	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	rec := categoryFromDomain(c)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&categoryRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
