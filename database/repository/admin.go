package repository

import (
	"context"

	"lacquer/models"

	"gorm.io/gorm"
)

// AdminRepository persists back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

type GormAdminRepository struct {
	db *gorm.DB
}

func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *GormAdminRepository) GetByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.WithContext(ctx).First(&a, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
