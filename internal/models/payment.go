package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a plain record attached to a booking group. No gateway is
// called and no status machine runs over it; the row is written once at
// checkout with status "initiated".
type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BookingGroupID uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"booking_group_id"`
	BookingGroup   BookingGroup `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	TotalAmount    float64 `json:"total_amount"`
	Method         string  `gorm:"size:32" json:"method"`
	Status         string  `gorm:"size:32;index" json:"status"`
	TransactionRef string  `gorm:"size:128" json:"transaction_ref"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
