package models

import "time"

// Appointment statuses. The pending → confirmed → completed/cancelled
// ordering is a dashboard convention; the data layer allows any transition.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a committed booking. Date is "YYYY-MM-DD" and Time is the
// slot label as submitted (e.g. "9:00 AM"). Service is a denormalized name;
// there is deliberately no uniqueness constraint over (date, time).
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Date      string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Time      string    `gorm:"type:varchar(8);not null" json:"time"`
	Service   string    `gorm:"not null" json:"service"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
