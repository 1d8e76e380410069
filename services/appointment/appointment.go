package appointment

import (
	"context"
	"errors"
	"fmt"

	"lacquer/database/repository"
	"lacquer/models"
	"lacquer/services/availability"
	"lacquer/utils"

	"go.uber.org/zap"
)

// ErrRecaptchaFailed is returned when the human-verification token is
// rejected by the verification service.
var ErrRecaptchaFailed = errors.New("reCAPTCHA verification failed")

// ErrInvalidStatus is returned on an update carrying an unknown status.
var ErrInvalidStatus = errors.New("invalid appointment status")

// SlotUnavailableError reports why a requested booking slot was refused.
// It carries the evaluator's verdict so API callers can render the specific
// reason (blocked date, closed day, outside hours, already booked).
type SlotUnavailableError struct {
	Status models.SlotStatus
}

func (e *SlotUnavailableError) Error() string {
	if e.Status.Detail != "" {
		return fmt.Sprintf("slot unavailable (%s): %s", e.Status.Reason, e.Status.Detail)
	}
	return fmt.Sprintf("slot unavailable (%s)", e.Status.Reason)
}

// ReminderScheduler schedules a reminder for a confirmed appointment.
// Implementations are best-effort; scheduling failures never fail the
// booking mutation itself.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, apt *models.Appointment) error
}

// CreateAppointmentInput is the public booking submission.
type CreateAppointmentInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Service        string `json:"service" binding:"required"`
	Notes          string `json:"notes"`
	RecaptchaToken string `json:"recaptchaToken" binding:"required"`
}

// UpdateAppointmentInput is an admin partial update; nil fields keep their
// stored value.
type UpdateAppointmentInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Service *string `json:"service"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status"`
}

// AppointmentService manages bookings.
type AppointmentService interface {
	Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Update(ctx context.Context, id uint, in UpdateAppointmentInput) (*models.Appointment, error)
	Delete(ctx context.Context, id uint) error
}

type DefaultAppointmentService struct {
	Repo     repository.AppointmentRepository
	Checker  *availability.Checker
	Verifier HumanVerifier
	// Reminders is optional; nil disables reminder scheduling.
	Reminders ReminderScheduler
}

// Create validates the human-verification token, re-runs the availability
// evaluation server-side and persists the booking as pending.
//
// Two concurrent submissions can both pass the evaluation before either
// write commits; there is intentionally no (date,time) uniqueness
// constraint closing that race, matching the documented policy.
func (s *DefaultAppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	ok, err := s.Verifier.Verify(ctx, in.RecaptchaToken)
	if err != nil || !ok {
		return nil, ErrRecaptchaFailed
	}

	status, err := s.Checker.CheckSlot(ctx, in.Date, in.Time, in.Service)
	if err != nil {
		return nil, err
	}
	if !status.Available {
		return nil, &SlotUnavailableError{Status: status}
	}

	apt := &models.Appointment{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Date:    in.Date,
		Time:    in.Time,
		Service: in.Service,
		Notes:   in.Notes,
		Status:  models.StatusPending,
	}
	if err := s.Repo.Create(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *DefaultAppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies an admin edit. Status may move freely between the known
// values; the pending -> confirmed -> completed/cancelled ordering is a
// dashboard convention, not a stored constraint. Field edits skip the
// availability evaluation: admins are allowed to double-book on purpose.
func (s *DefaultAppointmentService) Update(ctx context.Context, id uint, in UpdateAppointmentInput) (*models.Appointment, error) {
	apt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	confirmedNow := false
	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		confirmedNow = *in.Status == models.StatusConfirmed && apt.Status != models.StatusConfirmed
		apt.Status = *in.Status
	}
	if in.Name != nil {
		apt.Name = *in.Name
	}
	if in.Email != nil {
		apt.Email = *in.Email
	}
	if in.Phone != nil {
		apt.Phone = *in.Phone
	}
	if in.Date != nil {
		apt.Date = *in.Date
	}
	if in.Time != nil {
		apt.Time = *in.Time
	}
	if in.Service != nil {
		apt.Service = *in.Service
	}
	if in.Notes != nil {
		apt.Notes = *in.Notes
	}

	if err := s.Repo.Update(ctx, apt); err != nil {
		return nil, err
	}

	if confirmedNow && s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, apt); err != nil {
			utils.GetLogger().Error("failed to schedule reminder",
				zap.Uint("appointmentID", apt.ID), zap.Error(err))
		}
	}
	return apt, nil
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, id uint) error {
	apt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, apt)
}
