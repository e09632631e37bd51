package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio entry shown on the public site.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Category    string    `json:"category" gorm:"size:100;not null;index"` // e.g. "Residential", "Commercial"
	Image       string    `json:"image" gorm:"size:512;not null"`          // hosted image URL
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	Year        string    `json:"year,omitempty" gorm:"size:10"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Details     string    `json:"details,omitempty" gorm:"type:text"`
	Sustainable bool      `json:"sustainable" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
