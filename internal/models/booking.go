package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	TutorID string       `gorm:"size:36;index;not null" json:"tutor_id"`
	Tutor   TutorProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tutor,omitempty"`

	StudentID string `gorm:"size:36;index;not null" json:"student_id"`
	Student   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student,omitempty"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	TotalPrice float64 `json:"total_price"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	MeetingLink string `gorm:"size:255" json:"meeting_link"`
	Note        string `gorm:"size:500" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
