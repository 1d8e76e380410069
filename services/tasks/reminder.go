package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lacquer/config"
	"lacquer/models"
	"lacquer/services/availability"
	"lacquer/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// ReminderLead is how far ahead of the appointment start the reminder fires.
const ReminderLead = 24 * time.Hour

// NewReminderTask builds the asynq task and its scheduling options.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks on the redis-backed queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder firing ReminderLead before the
// appointment start. Appointments confirmed inside the lead window fire
// immediately. Cancellation afterwards does not dequeue; the worker
// re-checks appointment status before notifying.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, apt *models.Appointment) error {
	startMin, err := availability.ParseSlot(apt.Time)
	if err != nil {
		return fmt.Errorf("unparseable appointment time %q: %w", apt.Time, err)
	}
	day, err := time.ParseInLocation("2006-01-02", apt.Date, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable appointment date %q: %w", apt.Date, err)
	}
	start := day.Add(time.Duration(startMin) * time.Minute)

	fireAt := start.Add(-ReminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		AppointmentID: apt.ID,
		Name:          apt.Name,
		Email:         apt.Email,
		Date:          apt.Date,
		Time:          apt.Time,
		Service:       apt.Service,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}
	utils.GetLogger().Debug("reminder enqueued",
		zap.Uint("appointmentID", apt.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
