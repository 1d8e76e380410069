package models

import "time"

// OpenHour configures the bookable window for one weekday
// (0 = Sunday ... 6 = Saturday). Times are naive wall-clock "HH:MM" strings;
// a closed day may still carry times, they are simply ignored.
type OpenHour struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek int       `gorm:"uniqueIndex;not null" json:"dayOfWeek"`
	IsOpen    bool      `gorm:"not null;default:true" json:"isOpen"`
	OpenTime  *string   `gorm:"type:varchar(5)" json:"openTime"`
	CloseTime *string   `gorm:"type:varchar(5)" json:"closeTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
