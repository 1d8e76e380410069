package catalog

import (
	"context"
	"errors"
	"testing"

	"lacquer/models"

	"gorm.io/gorm"
)

type memServiceRepo struct {
	nextID uint
	rows   map[uint]models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{nextID: 1, rows: map[uint]models.Service{}}
}

func (m *memServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	svc.ID = m.nextID
	m.nextID++
	m.rows[svc.ID] = *svc
	return nil
}

func (m *memServiceRepo) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	svc, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := svc
	return &cp, nil
}

func (m *memServiceRepo) GetByName(ctx context.Context, name string) (*models.Service, error) {
	for _, svc := range m.rows {
		if svc.Name == name {
			cp := svc
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range m.rows {
		out = append(out, svc)
	}
	return out, nil
}

func (m *memServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range m.rows {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	if _, ok := m.rows[svc.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[svc.ID] = *svc
	return nil
}

func (m *memServiceRepo) Delete(ctx context.Context, svc *models.Service) error {
	delete(m.rows, svc.ID)
	return nil
}

func (m *memServiceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	if _, err := svc.Create(context.Background(), CreateServiceInput{Name: "Classic Manicure", DurationMinutes: 60}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateServiceInput{Name: "Classic Manicure", DurationMinutes: 45}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	created, err := svc.Create(context.Background(), CreateServiceInput{Name: "Polish Change", DurationMinutes: 30})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsActive {
		t.Error("new service should default to active")
	}

	inactive := false
	created, err = svc.Create(context.Background(), CreateServiceInput{Name: "Retired", DurationMinutes: 30, IsActive: &inactive})
	if err != nil {
		t.Fatalf("Create inactive: %v", err)
	}
	if created.IsActive {
		t.Error("explicit isActive=false ignored")
	}
}

func TestUpdateRenameChecksDuplicates(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}

	a, _ := svc.Create(context.Background(), CreateServiceInput{Name: "Gel Manicure", DurationMinutes: 120})
	if _, err := svc.Create(context.Background(), CreateServiceInput{Name: "Acrylic Nails", DurationMinutes: 120}); err != nil {
		t.Fatalf("create: %v", err)
	}

	taken := "Acrylic Nails"
	if _, err := svc.Update(context.Background(), a.ID, UpdateServiceInput{Name: &taken}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName on rename collision, got %v", err)
	}

	// Updating with the current name is a no-op rename, not a collision.
	same := "Gel Manicure"
	shorter := 90
	got, err := svc.Update(context.Background(), a.ID, UpdateServiceInput{Name: &same, DurationMinutes: &shorter})
	if err != nil {
		t.Fatalf("self-rename: %v", err)
	}
	if got.DurationMinutes != 90 {
		t.Errorf("duration = %d, want 90", got.DurationMinutes)
	}
}

func TestListActiveExcludesDeactivated(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	created, _ := svc.Create(context.Background(), CreateServiceInput{Name: "Nail Art Design", DurationMinutes: 120})
	off := false
	if _, err := svc.Update(context.Background(), created.ID, UpdateServiceInput{IsActive: &off}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated service still listed: %+v", active)
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}

	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	if len(repo.rows) != 5 {
		t.Fatalf("seeded %d services, want 5", len(repo.rows))
	}
	if err := svc.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("second SeedDefaults: %v", err)
	}
	if len(repo.rows) != 5 {
		t.Fatalf("re-seed duplicated rows: %d", len(repo.rows))
	}

	classic, err := repo.GetByName(context.Background(), "Classic Manicure")
	if err != nil {
		t.Fatalf("seed missing Classic Manicure: %v", err)
	}
	if classic.DurationMinutes != 60 {
		t.Errorf("Classic Manicure duration = %d, want 60", classic.DurationMinutes)
	}
}
