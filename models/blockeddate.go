package models

import "time"

// BlockedDate excludes a single calendar date from booking regardless of the
// open-hours configuration for its weekday.
type BlockedDate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	Reason    string    `gorm:"not null" json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
