package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingItem is one schedulable unit of work. Service name, price and
// duration are snapshots taken at checkout; catalog changes never reach
// rows that already exist. StartTime/EndTime are derived: start is the
// preferred date+time, end is start plus the snapshotted duration.
type BookingItem struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BookingGroupID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_group_id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	VendorID   uuid.UUID `gorm:"type:uuid;index;not null" json:"vendor_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`

	ServiceName string  `gorm:"size:150;not null" json:"service_name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	PreferredDate string `gorm:"size:10;not null" json:"preferredDate"`
	PreferredTime string `gorm:"size:5;not null" json:"preferredTime"`

	StartTime *time.Time `gorm:"index" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	Status string `gorm:"size:32;default:'processing';index" json:"status"`

	VendorDoneAt        *time.Time `json:"vendor_done_at"`
	CustomerConfirmedAt *time.Time `json:"customer_confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (bi *BookingItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}
