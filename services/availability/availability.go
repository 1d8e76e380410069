package availability

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

// Snapshot is everything the evaluator needs for one date, fetched up front.
// Evaluation over a snapshot is pure: identical inputs and identical snapshot
// data always produce identical verdicts.
type Snapshot struct {
	Blocked      *models.BlockedDate // nil when the date is not blocked
	Hours        *models.OpenHour    // nil when no row exists for the weekday
	Appointments []models.Appointment
	Durations    map[string]int // active service name -> minutes
}

// DurationFor resolves a service name to its duration. Names the catalog
// cannot resolve fall back to the default rather than failing; stale or
// free-typed service strings on old appointments must not break evaluation.
func (s *Snapshot) DurationFor(serviceName string) int {
	if d, ok := s.Durations[serviceName]; ok {
		return d
	}
	return models.DefaultServiceDuration
}

// EvaluateSlot decides whether one candidate slot on an already-validated
// date is bookable. Checks run in order: closed day, within hours, overlap
// with existing appointments. The blocked-date check is date-level and
// handled by EvaluateDay.
func EvaluateSlot(snap *Snapshot, slotLabel, serviceName string) (models.SlotStatus, error) {
	slotStart, err := ParseSlot(slotLabel)
	if err != nil {
		return models.SlotStatus{}, err
	}

	hours := snap.Hours
	if hours == nil || !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return models.SlotStatus{Time: slotLabel, Reason: models.ReasonClosedDay}, nil
	}

	openMin, err := ParseClock(*hours.OpenTime)
	if err != nil {
		return models.SlotStatus{}, err
	}
	closeMin, err := ParseClock(*hours.CloseTime)
	if err != nil {
		return models.SlotStatus{}, err
	}

	// The closing boundary is inclusive of the slot start: a slot beginning
	// exactly at closing time is accepted. Stated policy, not an accident.
	if slotStart < openMin || slotStart > closeMin {
		return models.SlotStatus{Time: slotLabel, Reason: models.ReasonOutsideHours}, nil
	}

	slotEnd := slotStart + snap.DurationFor(serviceName)
	for _, apt := range snap.Appointments {
		aptStart, err := ParseSlot(apt.Time)
		if err != nil {
			// Stored times come from the fixed slot list; a row that fails
			// to parse cannot be overlapped against, so skip it.
			utils.GetLogger().Warn("skipping appointment with unparseable time",
				zap.Uint("id", apt.ID), zap.String("time", apt.Time))
			continue
		}
		aptEnd := aptStart + snap.DurationFor(apt.Service)
		if Overlaps(slotStart, slotEnd, aptStart, aptEnd) {
			return models.SlotStatus{Time: slotLabel, Reason: models.ReasonAlreadyBooked}, nil
		}
	}

	return models.SlotStatus{Time: slotLabel, Available: true}, nil
}

// EvaluateDay produces the full decision for a date and service across the
// fixed slot list.
func EvaluateDay(snap *Snapshot, date, serviceName string) (models.DayAvailability, error) {
	if _, err := ParseDate(date); err != nil {
		return models.DayAvailability{}, err
	}

	day := models.DayAvailability{
		Date:    date,
		Service: serviceName,
		Slots:   []models.SlotStatus{},
	}

	if snap.Blocked != nil {
		day.Blocked = true
		day.Reason = models.ReasonBlockedDate
		day.Detail = snap.Blocked.Reason
		for _, slot := range models.TimeSlots {
			day.Slots = append(day.Slots, models.SlotStatus{
				Time:   slot,
				Reason: models.ReasonBlockedDate,
				Detail: snap.Blocked.Reason,
			})
		}
		return day, nil
	}

	hours := snap.Hours
	day.Open = hours != nil && hours.IsOpen && hours.OpenTime != nil && hours.CloseTime != nil

	for _, slot := range models.TimeSlots {
		status, err := EvaluateSlot(snap, slot, serviceName)
		if err != nil {
			return models.DayAvailability{}, err
		}
		day.Slots = append(day.Slots, status)
	}
	return day, nil
}

// Checker wires the evaluator to the store. It fetches a snapshot per
// request and delegates; it performs no retries and holds no state between
// calls.
type Checker struct {
	Appointments repository.AppointmentRepository
	BlockedDates repository.BlockedDateRepository
	OpenHours    repository.OpenHourRepository
	Services     repository.ServiceRepository
}

// BuildSnapshot fetches the blocked row, the weekday's hours, the date's
// appointments and the active catalog for one date. Lookup failures are
// surfaced unmodified.
func (c *Checker) BuildSnapshot(ctx context.Context, date string) (*Snapshot, error) {
	weekday, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Durations: map[string]int{}}

	blocked, err := c.BlockedDates.GetByDate(ctx, date)
	switch {
	case err == nil:
		snap.Blocked = blocked
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("blocked-date lookup: %w", err)
	}

	hours, err := c.OpenHours.GetByDay(ctx, weekday)
	switch {
	case err == nil:
		snap.Hours = hours
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("open-hours lookup: %w", err)
	}

	apts, err := c.Appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("appointment lookup: %w", err)
	}
	snap.Appointments = apts

	active, err := c.Services.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service lookup: %w", err)
	}
	for _, svc := range active {
		snap.Durations[svc.Name] = svc.DurationMinutes
	}

	return snap, nil
}

// ForDate evaluates every slot for the given date and service.
func (c *Checker) ForDate(ctx context.Context, date, serviceName string) (models.DayAvailability, error) {
	snap, err := c.BuildSnapshot(ctx, date)
	if err != nil {
		return models.DayAvailability{}, err
	}
	return EvaluateDay(snap, date, serviceName)
}

// CheckSlot evaluates a single candidate booking. Used server-side on
// appointment creation so the public form's gating cannot be bypassed.
func (c *Checker) CheckSlot(ctx context.Context, date, slotLabel, serviceName string) (models.SlotStatus, error) {
	snap, err := c.BuildSnapshot(ctx, date)
	if err != nil {
		return models.SlotStatus{}, err
	}
	if snap.Blocked != nil {
		return models.SlotStatus{
			Time:   slotLabel,
			Reason: models.ReasonBlockedDate,
			Detail: snap.Blocked.Reason,
		}, nil
	}
	return EvaluateSlot(snap, slotLabel, serviceName)
}
