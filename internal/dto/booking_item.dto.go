package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingItemDTO struct {
	ID             uuid.UUID  `json:"id"`
	BookingGroupID uuid.UUID  `json:"booking_group_id"`
	VendorID       uuid.UUID  `json:"vendor_id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	ServiceID      uuid.UUID  `json:"service_id"`
	ServiceName    string     `json:"service_name"`
	Price          float64    `json:"price"`
	DurationMin    int        `json:"duration_min"`
	PreferredDate  string     `json:"preferredDate"`
	PreferredTime  string     `json:"preferredTime"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	Status         string     `json:"status"`
}
