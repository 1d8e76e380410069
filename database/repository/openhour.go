package repository

import (
	"context"

	"lacquer/models"

	"gorm.io/gorm"
)

// OpenHourRepository persists the per-weekday open-hours table.
type OpenHourRepository interface {
	Create(ctx context.Context, oh *models.OpenHour) error
	GetByID(ctx context.Context, id uint) (*models.OpenHour, error)
	GetByDay(ctx context.Context, dayOfWeek int) (*models.OpenHour, error)
	List(ctx context.Context) ([]models.OpenHour, error)
	Update(ctx context.Context, oh *models.OpenHour) error
	Delete(ctx context.Context, oh *models.OpenHour) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type GormOpenHourRepository struct {
	db *gorm.DB
}

func NewGormOpenHourRepository(db *gorm.DB) *GormOpenHourRepository {
	return &GormOpenHourRepository{db: db}
}

func (r *GormOpenHourRepository) Create(ctx context.Context, oh *models.OpenHour) error {
	return r.db.WithContext(ctx).Create(oh).Error
}

func (r *GormOpenHourRepository) GetByID(ctx context.Context, id uint) (*models.OpenHour, error) {
	var oh models.OpenHour
	if err := r.db.WithContext(ctx).First(&oh, id).Error; err != nil {
		return nil, err
	}
	return &oh, nil
}

func (r *GormOpenHourRepository) GetByDay(ctx context.Context, dayOfWeek int) (*models.OpenHour, error) {
	var oh models.OpenHour
	if err := r.db.WithContext(ctx).First(&oh, "day_of_week = ?", dayOfWeek).Error; err != nil {
		return nil, err
	}
	return &oh, nil
}

func (r *GormOpenHourRepository) List(ctx context.Context) ([]models.OpenHour, error) {
	var hours []models.OpenHour
	if err := r.db.WithContext(ctx).Order("day_of_week ASC").Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *GormOpenHourRepository) Update(ctx context.Context, oh *models.OpenHour) error {
	return r.db.WithContext(ctx).Save(oh).Error
}

func (r *GormOpenHourRepository) Delete(ctx context.Context, oh *models.OpenHour) error {
	return r.db.WithContext(ctx).Delete(oh).Error
}

func (r *GormOpenHourRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.OpenHour{}).Error
}

func (r *GormOpenHourRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.OpenHour{}).Count(&n).Error
	return n, err
}
