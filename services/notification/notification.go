package notification

import (
	"context"

	"lacquer/models"
	"lacquer/utils"

	"go.uber.org/zap"
)

// NotificationService delivers appointment reminders. The default
// implementation logs; an SMTP or SMS sender slots in behind the same
// interface without touching the worker.
type NotificationService interface {
	SendReminder(ctx context.Context, p models.ReminderPayload) error
}

type LogNotificationService struct{}

func (s *LogNotificationService) SendReminder(ctx context.Context, p models.ReminderPayload) error {
	utils.GetLogger().Info("Appointment reminder",
		zap.Uint("appointmentID", p.AppointmentID),
		zap.String("name", p.Name),
		zap.String("email", p.Email),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
		zap.String("service", p.Service),
	)
	return nil
}
