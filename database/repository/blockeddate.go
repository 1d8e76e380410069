package repository

import (
	"context"

	"lacquer/models"

	"gorm.io/gorm"
)

// BlockedDateRepository persists the blocked-dates table.
type BlockedDateRepository interface {
	Create(ctx context.Context, bd *models.BlockedDate) error
	GetByID(ctx context.Context, id uint) (*models.BlockedDate, error)
	GetByDate(ctx context.Context, date string) (*models.BlockedDate, error)
	List(ctx context.Context) ([]models.BlockedDate, error)
	Update(ctx context.Context, bd *models.BlockedDate) error
	Delete(ctx context.Context, bd *models.BlockedDate) error
}

type GormBlockedDateRepository struct {
	db *gorm.DB
}

func NewGormBlockedDateRepository(db *gorm.DB) *GormBlockedDateRepository {
	return &GormBlockedDateRepository{db: db}
}

func (r *GormBlockedDateRepository) Create(ctx context.Context, bd *models.BlockedDate) error {
	return r.db.WithContext(ctx).Create(bd).Error
}

func (r *GormBlockedDateRepository) GetByID(ctx context.Context, id uint) (*models.BlockedDate, error) {
	var bd models.BlockedDate
	if err := r.db.WithContext(ctx).First(&bd, id).Error; err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *GormBlockedDateRepository) GetByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	var bd models.BlockedDate
	if err := r.db.WithContext(ctx).First(&bd, "date = ?", date).Error; err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *GormBlockedDateRepository) List(ctx context.Context) ([]models.BlockedDate, error) {
	var dates []models.BlockedDate
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *GormBlockedDateRepository) Update(ctx context.Context, bd *models.BlockedDate) error {
	return r.db.WithContext(ctx).Save(bd).Error
}

func (r *GormBlockedDateRepository) Delete(ctx context.Context, bd *models.BlockedDate) error {
	return r.db.WithContext(ctx).Delete(bd).Error
}
