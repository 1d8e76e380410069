package blocked

import (
	"context"
	"errors"

	"lacquer/database/repository"
	"lacquer/models"

	"gorm.io/gorm"
)

// ErrDuplicateDate is returned when the date is already blocked.
var ErrDuplicateDate = errors.New("this date is already blocked")

// CreateBlockedDateInput carries the writable blocked-date fields.
type CreateBlockedDateInput struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// UpdateBlockedDateInput is a partial update; nil fields are left untouched.
type UpdateBlockedDateInput struct {
	Date   *string `json:"date"`
	Reason *string `json:"reason"`
}

// BlockedService manages calendar dates excluded from booking.
type BlockedService interface {
	Create(ctx context.Context, in CreateBlockedDateInput) (*models.BlockedDate, error)
	List(ctx context.Context) ([]models.BlockedDate, error)
	GetByID(ctx context.Context, id uint) (*models.BlockedDate, error)
	Update(ctx context.Context, id uint, in UpdateBlockedDateInput) (*models.BlockedDate, error)
	Delete(ctx context.Context, id uint) error
}

type DefaultBlockedService struct {
	Repo repository.BlockedDateRepository
}

func (s *DefaultBlockedService) Create(ctx context.Context, in CreateBlockedDateInput) (*models.BlockedDate, error) {
	if _, err := s.Repo.GetByDate(ctx, in.Date); err == nil {
		return nil, ErrDuplicateDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bd := &models.BlockedDate{Date: in.Date, Reason: in.Reason}
	if err := s.Repo.Create(ctx, bd); err != nil {
		return nil, err
	}
	return bd, nil
}

func (s *DefaultBlockedService) List(ctx context.Context) ([]models.BlockedDate, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultBlockedService) GetByID(ctx context.Context, id uint) (*models.BlockedDate, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBlockedService) Update(ctx context.Context, id uint, in UpdateBlockedDateInput) (*models.BlockedDate, error) {
	bd, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Date != nil && *in.Date != bd.Date {
		if _, err := s.Repo.GetByDate(ctx, *in.Date); err == nil {
			return nil, ErrDuplicateDate
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		bd.Date = *in.Date
	}
	if in.Reason != nil {
		bd.Reason = *in.Reason
	}
	if err := s.Repo.Update(ctx, bd); err != nil {
		return nil, err
	}
	return bd, nil
}

func (s *DefaultBlockedService) Delete(ctx context.Context, id uint) error {
	bd, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, bd)
}
