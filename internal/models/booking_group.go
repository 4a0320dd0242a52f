package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingGroup is one checkout transaction. It owns its items: deleting the
// group cascades to them. The customer's contact/address info is copied in
// at checkout so later profile edits do not alter historical bookings.
type BookingGroup struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ContactInfo      string `gorm:"size:255" json:"contact_info"`
	FormattedAddress string `gorm:"size:255" json:"formatted_address"`
	PlaceID          string `gorm:"size:128" json:"place_id"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Items []BookingItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (bg *BookingGroup) BeforeCreate(tx *gorm.DB) error {
	if bg.ID == uuid.Nil {
		bg.ID = uuid.New()
	}
	return nil
}
