package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorService is one vendor's offering of a catalog service, with its own
// price and duration. At most one row per (vendor, service) pair.
type VendorService struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	VendorID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_vendor_service;not null" json:"vendor_id"`
	Vendor   Vendor    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_vendor_service;index;not null" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Active      bool    `gorm:"default:true" json:"is_active"`

	ImageURL string `gorm:"size:512" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (vs *VendorService) BeforeCreate(tx *gorm.DB) error {
	if vs.ID == uuid.Nil {
		vs.ID = uuid.New()
	}
	return nil
}
