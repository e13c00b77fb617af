package sql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// userRecord is the persistence model for users. Timestamps are owned by the
// service layer, so gorm's automatic tracking is disabled.
type userRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Role      string    `gorm:"not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (userRecord) TableName() string { return "users" }

func userFromDomain(u *domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (rec userRecord) toDomain() domain.User {
	return domain.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      domain.UserRole(rec.Role),
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new row and copies the generated identity key back.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	rec := userFromDomain(u)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	u.ID = rec.ID
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, rec.toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u := rec.toDomain()
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	rec := userFromDomain(u)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&userRecord{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
