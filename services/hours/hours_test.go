package hours

import (
	"context"
	"errors"
	"testing"

	"lacquer/models"

	"gorm.io/gorm"
)

type memOpenHourRepo struct {
	nextID uint
	rows   map[uint]models.OpenHour
}

func newMemOpenHourRepo() *memOpenHourRepo {
	return &memOpenHourRepo{nextID: 1, rows: map[uint]models.OpenHour{}}
}

func (m *memOpenHourRepo) Create(ctx context.Context, oh *models.OpenHour) error {
	oh.ID = m.nextID
	m.nextID++
	m.rows[oh.ID] = *oh
	return nil
}

func (m *memOpenHourRepo) GetByID(ctx context.Context, id uint) (*models.OpenHour, error) {
	oh, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := oh
	return &cp, nil
}

func (m *memOpenHourRepo) GetByDay(ctx context.Context, day int) (*models.OpenHour, error) {
	for _, oh := range m.rows {
		if oh.DayOfWeek == day {
			cp := oh
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memOpenHourRepo) List(ctx context.Context) ([]models.OpenHour, error) {
	var out []models.OpenHour
	for _, oh := range m.rows {
		out = append(out, oh)
	}
	return out, nil
}

func (m *memOpenHourRepo) Update(ctx context.Context, oh *models.OpenHour) error {
	if _, ok := m.rows[oh.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[oh.ID] = *oh
	return nil
}

func (m *memOpenHourRepo) Delete(ctx context.Context, oh *models.OpenHour) error {
	delete(m.rows, oh.ID)
	return nil
}

func (m *memOpenHourRepo) DeleteAll(ctx context.Context) error {
	m.rows = map[uint]models.OpenHour{}
	return nil
}

func (m *memOpenHourRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

func TestCreateRejectsDuplicateDay(t *testing.T) {
	svc := &DefaultHoursService{Repo: newMemOpenHourRepo()}

	open := "10:00"
	if _, err := svc.Create(context.Background(), CreateOpenHourInput{DayOfWeek: 1, OpenTime: &open}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateOpenHourInput{DayOfWeek: 1}); !errors.Is(err, ErrDuplicateDay) {
		t.Fatalf("expected ErrDuplicateDay, got %v", err)
	}
}

func TestInitializeDefaultsSeedsFullWeek(t *testing.T) {
	repo := newMemOpenHourRepo()
	svc := &DefaultHoursService{Repo: repo}

	if err := svc.InitializeDefaults(context.Background()); err != nil {
		t.Fatalf("InitializeDefaults: %v", err)
	}
	if len(repo.rows) != 7 {
		t.Fatalf("seeded %d rows, want 7", len(repo.rows))
	}

	for day := 0; day <= 6; day++ {
		oh, err := repo.GetByDay(context.Background(), day)
		if err != nil {
			t.Fatalf("day %d missing: %v", day, err)
		}
		wantOpen := day != 0 && day != 6
		if oh.IsOpen != wantOpen {
			t.Errorf("day %d IsOpen = %v, want %v", day, oh.IsOpen, wantOpen)
		}
		if oh.OpenTime == nil || *oh.OpenTime != "09:00" {
			t.Errorf("day %d OpenTime = %v, want 09:00", day, oh.OpenTime)
		}
		if oh.CloseTime == nil || *oh.CloseTime != "17:00" {
			t.Errorf("day %d CloseTime = %v, want 17:00", day, oh.CloseTime)
		}
	}
}

func TestInitializeDefaultsIsIdempotent(t *testing.T) {
	repo := newMemOpenHourRepo()
	svc := &DefaultHoursService{Repo: repo}

	closed := false
	if _, err := svc.Create(context.Background(), CreateOpenHourInput{DayOfWeek: 3, IsOpen: &closed}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.InitializeDefaults(context.Background()); err != nil {
		t.Fatalf("InitializeDefaults: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("initialize overwrote existing configuration: %d rows", len(repo.rows))
	}
}

func TestResetToDefaultsReplacesCustomRows(t *testing.T) {
	repo := newMemOpenHourRepo()
	svc := &DefaultHoursService{Repo: repo}

	if err := svc.InitializeDefaults(context.Background()); err != nil {
		t.Fatalf("InitializeDefaults: %v", err)
	}

	late := "21:00"
	if _, err := svc.UpdateByDay(context.Background(), 5, UpdateOpenHourInput{CloseTime: &late}); err != nil {
		t.Fatalf("UpdateByDay: %v", err)
	}

	if err := svc.ResetToDefaults(context.Background()); err != nil {
		t.Fatalf("ResetToDefaults: %v", err)
	}
	if len(repo.rows) != 7 {
		t.Fatalf("reset left %d rows, want 7", len(repo.rows))
	}
	friday, err := repo.GetByDay(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByDay: %v", err)
	}
	if friday.CloseTime == nil || *friday.CloseTime != "17:00" {
		t.Errorf("Friday CloseTime after reset = %v, want 17:00", friday.CloseTime)
	}
}

func TestUpdateByDayPatchesSingleField(t *testing.T) {
	repo := newMemOpenHourRepo()
	svc := &DefaultHoursService{Repo: repo}

	if err := svc.InitializeDefaults(context.Background()); err != nil {
		t.Fatalf("InitializeDefaults: %v", err)
	}

	closed := false
	oh, err := svc.UpdateByDay(context.Background(), 2, UpdateOpenHourInput{IsOpen: &closed})
	if err != nil {
		t.Fatalf("UpdateByDay: %v", err)
	}
	if oh.IsOpen {
		t.Error("day 2 still open after patch")
	}
	// Untouched fields keep their stored values.
	if oh.OpenTime == nil || *oh.OpenTime != "09:00" {
		t.Errorf("OpenTime changed by unrelated patch: %v", oh.OpenTime)
	}

	if _, err := svc.UpdateByDay(context.Background(), 9, UpdateOpenHourInput{IsOpen: &closed}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for unknown day, got %v", err)
	}
}
