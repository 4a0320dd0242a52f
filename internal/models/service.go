package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the seed catalog: the set of services vendors can offer.
type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	Category    string  `gorm:"size:64;index" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"default:0" json:"base_price"`
	DurationMin int     `json:"duration_min"`
	Active      bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
