package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TutorProfile struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio        string  `gorm:"size:1000" json:"bio"`
	HourlyRate float64 `json:"hourly_rate"`
	Experience int     `json:"experience"`

	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`

	Subjects []TutorSubject `gorm:"foreignKey:TutorID" json:"subjects,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *TutorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type TutorSubject struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TutorID    string   `gorm:"size:36;index;not null" json:"tutor_id"`
	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE;" json:"category"`

	CreatedAt time.Time `json:"created_at"`
}
