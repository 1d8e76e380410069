package catalog

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

// ErrDuplicateName is returned when a service with the requested name
// already exists.
var ErrDuplicateName = errors.New("service with this name already exists")

// CreateServiceInput carries the writable service fields.
type CreateServiceInput struct {
	Name            string `json:"name" binding:"required,max=100"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	IsActive        *bool  `json:"isActive"`
}

// UpdateServiceInput is a partial update; nil fields are left untouched.
type UpdateServiceInput struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,min=1"`
	IsActive        *bool   `json:"isActive"`
}

// CatalogService manages the salon's service offerings.
type CatalogService interface {
	Create(ctx context.Context, in CreateServiceInput) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Update(ctx context.Context, id uint, in UpdateServiceInput) (*models.Service, error)
	Delete(ctx context.Context, id uint) error
	SeedDefaults(ctx context.Context) error
}

type DefaultCatalogService struct {
	Repo repository.ServiceRepository
}

func (s *DefaultCatalogService) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if _, err := s.Repo.GetByName(ctx, in.Name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc := &models.Service{
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		IsActive:        true,
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultCatalogService) ListActive(ctx context.Context) ([]models.Service, error) {
	return s.Repo.ListActive(ctx)
}

func (s *DefaultCatalogService) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update renames or retunes a service. Renaming never cascades to
// appointments: they keep the old name string.
func (s *DefaultCatalogService) Update(ctx context.Context, id uint, in UpdateServiceInput) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != svc.Name {
		if _, err := s.Repo.GetByName(ctx, *in.Name); err == nil {
			return nil, ErrDuplicateName
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		svc.Name = *in.Name
	}
	if in.DurationMinutes != nil {
		svc.DurationMinutes = *in.DurationMinutes
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id uint) error {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, svc)
}

// SeedDefaults inserts the starter catalog on first boot. Idempotent: a
// non-empty table is left alone.
func (s *DefaultCatalogService) SeedDefaults(ctx context.Context) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting services: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := []models.Service{
		{Name: "Classic Manicure", DurationMinutes: 60, IsActive: true},
		{Name: "Gel Manicure", DurationMinutes: 120, IsActive: true},
		{Name: "Gel Pedicure", DurationMinutes: 120, IsActive: true},
		{Name: "Acrylic Nails", DurationMinutes: 120, IsActive: true},
		{Name: "Nail Art Design", DurationMinutes: 120, IsActive: true},
	}
	for i := range defaults {
		if err := s.Repo.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("seeding service %q: %w", defaults[i].Name, err)
		}
	}
	utils.GetLogger().Info("Default services initialized", zap.Int("count", len(defaults)))
	return nil
}
