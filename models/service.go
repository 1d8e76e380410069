package models

import "time"

// Service is a bookable offering in the salon catalog. Appointments refer to
// services by name, not by ID, so renaming or removing a service never
// rewrites historical bookings.
type Service struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DefaultServiceDuration is assumed whenever an appointment references a
// service name the catalog can no longer resolve.
const DefaultServiceDuration = 60
