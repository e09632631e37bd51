package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactLead is a contact-form submission from a prospective client.
// Leads are append-only: the API never updates or deletes them.
type ContactLead struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName   string    `json:"firstName" gorm:"size:100;not null"`
	LastName    string    `json:"lastName" gorm:"size:100;not null"`
	Email       string    `json:"email" gorm:"size:255;not null"`
	Phone       string    `json:"phone,omitempty" gorm:"size:50"`
	ProjectType string    `json:"projectType" gorm:"size:100;not null"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"autoCreateTime;index"`
}

// BeforeCreate sets UUID before creating the record.
func (l *ContactLead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
