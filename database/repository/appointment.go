package repository

import (
	"context"

	"lacquer/models"

	"gorm.io/gorm"
)

// AppointmentRepository persists committed bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	Update(ctx context.Context, apt *models.Appointment) error
	Delete(ctx context.Context, apt *models.Appointment) error
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, apt *models.Appointment) error {
	return r.db.WithContext(ctx).Create(apt).Error
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var apt models.Appointment
	if err := r.db.WithContext(ctx).First(&apt, id).Error; err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *GormAppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var apts []models.Appointment
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Order("time ASC").
		Find(&apts).Error
	if err != nil {
		return nil, err
	}
	return apts, nil
}

func (r *GormAppointmentRepository) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var apts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&apts).Error
	if err != nil {
		return nil, err
	}
	return apts, nil
}

func (r *GormAppointmentRepository) Update(ctx context.Context, apt *models.Appointment) error {
	return r.db.WithContext(ctx).Save(apt).Error
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, apt *models.Appointment) error {
	return r.db.WithContext(ctx).Delete(apt).Error
}
