package hours

import (
	"context"
	"errors"
	"fmt"

	"lacquer/database/repository"
	"lacquer/models"
	"lacquer/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDuplicateDay is returned when an open-hours row for the weekday
// already exists.
var ErrDuplicateDay = errors.New("open hours for this day already exists")

// CreateOpenHourInput carries the writable open-hour fields. DayOfWeek uses
// 0 = Sunday ... 6 = Saturday. openTime < closeTime is deliberately not
// enforced; an inverted window just yields no in-hours slots.
type CreateOpenHourInput struct {
	DayOfWeek int     `json:"dayOfWeek" binding:"min=0,max=6"`
	IsOpen    *bool   `json:"isOpen"`
	OpenTime  *string `json:"openTime"`
	CloseTime *string `json:"closeTime"`
}

// UpdateOpenHourInput is a partial update; nil fields are left untouched.
type UpdateOpenHourInput struct {
	IsOpen    *bool   `json:"isOpen"`
	OpenTime  *string `json:"openTime"`
	CloseTime *string `json:"closeTime"`
}

// HoursService manages the per-weekday open-hours table.
type HoursService interface {
	Create(ctx context.Context, in CreateOpenHourInput) (*models.OpenHour, error)
	List(ctx context.Context) ([]models.OpenHour, error)
	GetByID(ctx context.Context, id uint) (*models.OpenHour, error)
	Update(ctx context.Context, id uint, in UpdateOpenHourInput) (*models.OpenHour, error)
	UpdateByDay(ctx context.Context, dayOfWeek int, in UpdateOpenHourInput) (*models.OpenHour, error)
	Delete(ctx context.Context, id uint) error
	InitializeDefaults(ctx context.Context) error
	ResetToDefaults(ctx context.Context) error
}

type DefaultHoursService struct {
	Repo repository.OpenHourRepository
}

func (s *DefaultHoursService) Create(ctx context.Context, in CreateOpenHourInput) (*models.OpenHour, error) {
	if _, err := s.Repo.GetByDay(ctx, in.DayOfWeek); err == nil {
		return nil, ErrDuplicateDay
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	oh := &models.OpenHour{
		DayOfWeek: in.DayOfWeek,
		IsOpen:    true,
		OpenTime:  in.OpenTime,
		CloseTime: in.CloseTime,
	}
	if in.IsOpen != nil {
		oh.IsOpen = *in.IsOpen
	}
	if err := s.Repo.Create(ctx, oh); err != nil {
		return nil, err
	}
	return oh, nil
}

func (s *DefaultHoursService) List(ctx context.Context) ([]models.OpenHour, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultHoursService) GetByID(ctx context.Context, id uint) (*models.OpenHour, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultHoursService) Update(ctx context.Context, id uint, in UpdateOpenHourInput) (*models.OpenHour, error) {
	oh, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, oh, in)
}

func (s *DefaultHoursService) UpdateByDay(ctx context.Context, dayOfWeek int, in UpdateOpenHourInput) (*models.OpenHour, error) {
	oh, err := s.Repo.GetByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, oh, in)
}

func (s *DefaultHoursService) apply(ctx context.Context, oh *models.OpenHour, in UpdateOpenHourInput) (*models.OpenHour, error) {
	if in.IsOpen != nil {
		oh.IsOpen = *in.IsOpen
	}
	if in.OpenTime != nil {
		oh.OpenTime = in.OpenTime
	}
	if in.CloseTime != nil {
		oh.CloseTime = in.CloseTime
	}
	if err := s.Repo.Update(ctx, oh); err != nil {
		return nil, err
	}
	return oh, nil
}

func (s *DefaultHoursService) Delete(ctx context.Context, id uint) error {
	oh, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, oh)
}

func defaultWeek() []models.OpenHour {
	open := "09:00"
	close := "17:00"
	week := make([]models.OpenHour, 0, 7)
	for day := 0; day <= 6; day++ {
		week = append(week, models.OpenHour{
			DayOfWeek: day,
			IsOpen:    day != 0 && day != 6, // closed Sunday and Saturday
			OpenTime:  &open,
			CloseTime: &close,
		})
	}
	return week
}

// InitializeDefaults seeds the standard week on first boot. Idempotent: any
// existing rows short-circuit.
func (s *DefaultHoursService) InitializeDefaults(ctx context.Context) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting open hours: %w", err)
	}
	if n > 0 {
		return nil
	}

	week := defaultWeek()
	for i := range week {
		if err := s.Repo.Create(ctx, &week[i]); err != nil {
			return fmt.Errorf("seeding day %d: %w", week[i].DayOfWeek, err)
		}
	}
	utils.GetLogger().Info("Default open hours initialized", zap.Int("days", len(week)))
	return nil
}

// ResetToDefaults drops every configured row and re-seeds the standard week.
func (s *DefaultHoursService) ResetToDefaults(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing open hours: %w", err)
	}
	week := defaultWeek()
	for i := range week {
		if err := s.Repo.Create(ctx, &week[i]); err != nil {
			return fmt.Errorf("seeding day %d: %w", week[i].DayOfWeek, err)
		}
	}
	return nil
}
