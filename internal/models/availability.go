package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is one recurring weekly window of a tutor's schedule.
// Clock times are "HH:MM" strings at minute resolution, no date component.
// The full set for a tutor is only ever replaced as a whole, never patched.
type Availability struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	TutorID   string `gorm:"size:36;index:idx_availability_tutor_day;not null" json:"tutor_id"`
	DayOfWeek string `gorm:"size:3;index:idx_availability_tutor_day;not null" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
