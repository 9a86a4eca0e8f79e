package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BookingID string  `gorm:"size:36;uniqueIndex;not null" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	StudentID string `gorm:"size:36;index;not null" json:"student_id"`
	TutorID   string `gorm:"size:36;index;not null" json:"tutor_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
