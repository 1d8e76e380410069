package appointment

import (
	"context"
	"errors"
	"testing"

	"lacquer/models"
	"lacquer/services/availability"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// mondayDate is 2025-06-02, a Monday.
const mondayDate = "2025-06-02"

type memAppointmentRepo struct {
	nextID uint
	rows   map[uint]models.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{nextID: 1, rows: map[uint]models.Appointment{}}
}

func (m *memAppointmentRepo) Create(ctx context.Context, apt *models.Appointment) error {
	apt.ID = m.nextID
	m.nextID++
	m.rows[apt.ID] = *apt
	return nil
}

func (m *memAppointmentRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	apt, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := apt
	return &cp, nil
}

func (m *memAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range m.rows {
		out = append(out, apt)
	}
	return out, nil
}

func (m *memAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, apt := range m.rows {
		if apt.Date == date {
			out = append(out, apt)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) Update(ctx context.Context, apt *models.Appointment) error {
	if _, ok := m.rows[apt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.rows[apt.ID] = *apt
	return nil
}

func (m *memAppointmentRepo) Delete(ctx context.Context, apt *models.Appointment) error {
	delete(m.rows, apt.ID)
	return nil
}

type stubBlockedRepo struct{}

func (stubBlockedRepo) Create(ctx context.Context, bd *models.BlockedDate) error { return nil }
func (stubBlockedRepo) GetByID(ctx context.Context, id uint) (*models.BlockedDate, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubBlockedRepo) GetByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubBlockedRepo) List(ctx context.Context) ([]models.BlockedDate, error)   { return nil, nil }
func (stubBlockedRepo) Update(ctx context.Context, bd *models.BlockedDate) error { return nil }
func (stubBlockedRepo) Delete(ctx context.Context, bd *models.BlockedDate) error { return nil }

type stubOpenHourRepo struct{}

func (stubOpenHourRepo) Create(ctx context.Context, oh *models.OpenHour) error { return nil }
func (stubOpenHourRepo) GetByID(ctx context.Context, id uint) (*models.OpenHour, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubOpenHourRepo) GetByDay(ctx context.Context, day int) (*models.OpenHour, error) {
	return &models.OpenHour{
		DayOfWeek: day,
		IsOpen:    true,
		OpenTime:  strPtr("09:00"),
		CloseTime: strPtr("17:00"),
	}, nil
}
func (stubOpenHourRepo) List(ctx context.Context) ([]models.OpenHour, error)   { return nil, nil }
func (stubOpenHourRepo) Update(ctx context.Context, oh *models.OpenHour) error { return nil }
func (stubOpenHourRepo) Delete(ctx context.Context, oh *models.OpenHour) error { return nil }
func (stubOpenHourRepo) DeleteAll(ctx context.Context) error                   { return nil }
func (stubOpenHourRepo) Count(ctx context.Context) (int64, error)              { return 7, nil }

type stubServiceRepo struct{}

func (stubServiceRepo) Create(ctx context.Context, svc *models.Service) error { return nil }
func (stubServiceRepo) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubServiceRepo) GetByName(ctx context.Context, name string) (*models.Service, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubServiceRepo) List(ctx context.Context) ([]models.Service, error) { return nil, nil }
func (stubServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	return []models.Service{{Name: "Classic Manicure", DurationMinutes: 60, IsActive: true}}, nil
}
func (stubServiceRepo) Update(ctx context.Context, svc *models.Service) error { return nil }
func (stubServiceRepo) Delete(ctx context.Context, svc *models.Service) error { return nil }
func (stubServiceRepo) Count(ctx context.Context) (int64, error)              { return 1, nil }

type stubVerifier struct {
	ok  bool
	err error
}

func (v stubVerifier) Verify(ctx context.Context, token string) (bool, error) { return v.ok, v.err }

type recordingScheduler struct {
	scheduled []uint
}

func (r *recordingScheduler) ScheduleReminder(ctx context.Context, apt *models.Appointment) error {
	r.scheduled = append(r.scheduled, apt.ID)
	return nil
}

func newTestService(repo *memAppointmentRepo, verifier HumanVerifier, sched ReminderScheduler) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo: repo,
		Checker: &availability.Checker{
			Appointments: repo,
			BlockedDates: stubBlockedRepo{},
			OpenHours:    stubOpenHourRepo{},
			Services:     stubServiceRepo{},
		},
		Verifier:  verifier,
		Reminders: sched,
	}
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		Name:           "Ada",
		Email:          "ada@example.com",
		Phone:          "555-0101",
		Date:           mondayDate,
		Time:           "10:00 AM",
		Service:        "Classic Manicure",
		RecaptchaToken: "tok",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := newTestService(repo, stubVerifier{ok: true}, nil)

	apt, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if apt.Status != models.StatusPending {
		t.Errorf("new appointment status = %q, want pending", apt.Status)
	}
	if apt.ID == 0 {
		t.Error("expected persisted appointment to receive an ID")
	}
}

func TestCreateRejectsFailedRecaptcha(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := newTestService(repo, stubVerifier{ok: false}, nil)

	if _, err := svc.Create(context.Background(), validInput()); !errors.Is(err, ErrRecaptchaFailed) {
		t.Fatalf("expected ErrRecaptchaFailed, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Error("appointment persisted despite recaptcha failure")
	}
}

func TestCreateRejectsUnavailableSlot(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := newTestService(repo, stubVerifier{ok: true}, nil)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.Create(context.Background(), validInput())
	var unavailable *SlotUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected SlotUnavailableError, got %v", err)
	}
	if unavailable.Status.Reason != models.ReasonAlreadyBooked {
		t.Errorf("reason = %q, want already-booked", unavailable.Status.Reason)
	}
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := newTestService(repo, stubVerifier{ok: true}, nil)

	in := validInput()
	in.Date = "06/02/2025"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected validation error for malformed date")
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := newTestService(repo, stubVerifier{ok: true}, nil)

	apt, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bogus := "archived"
	if _, err := svc.Update(context.Background(), apt.ID, UpdateAppointmentInput{Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestConfirmSchedulesReminderOnce(t *testing.T) {
	repo := newMemAppointmentRepo()
	sched := &recordingScheduler{}
	svc := newTestService(repo, stubVerifier{ok: true}, sched)

	apt, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	confirmed := models.StatusConfirmed
	if _, err := svc.Update(context.Background(), apt.ID, UpdateAppointmentInput{Status: &confirmed}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(sched.scheduled) != 1 || sched.scheduled[0] != apt.ID {
		t.Fatalf("expected one reminder for %d, got %v", apt.ID, sched.scheduled)
	}

	// Re-confirming an already-confirmed appointment must not re-enqueue.
	notes := "bring inspiration photos"
	if _, err := svc.Update(context.Background(), apt.ID, UpdateAppointmentInput{Status: &confirmed, Notes: &notes}); err != nil {
		t.Fatalf("re-confirm: %v", err)
	}
	if len(sched.scheduled) != 1 {
		t.Fatalf("reminder re-enqueued: %v", sched.scheduled)
	}
}

func TestStatusTransitionsAreUnconstrained(t *testing.T) {
	repo := newMemAppointmentRepo()
	svc := newTestService(repo, stubVerifier{ok: true}, nil)

	apt, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The data layer allows any ordering, including "backwards".
	for _, status := range []string{
		models.StatusCompleted,
		models.StatusPending,
		models.StatusCancelled,
		models.StatusConfirmed,
	} {
		s := status
		got, err := svc.Update(context.Background(), apt.ID, UpdateAppointmentInput{Status: &s})
		if err != nil {
			t.Fatalf("set status %q: %v", s, err)
		}
		if got.Status != s {
			t.Errorf("status = %q, want %q", got.Status, s)
		}
	}
}
