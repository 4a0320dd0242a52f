package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
)

// ComputeSlots answers "which slots are free for this vendor, this
// service, this date". The display grid is fixed, but every candidate is
// checked with the service's real occupancy window [start, start+duration),
// so a 90-minute service blocks 1.5 grid slots.
type ComputeSlots struct {
	repo domain.Repository
	cal  domain.Calendar
	loc  *time.Location
}

func NewComputeSlots(
	repo domain.Repository,
	cal domain.Calendar,
	loc *time.Location,
) *ComputeSlots {
	return &ComputeSlots{
		repo: repo,
		cal:  cal,
		loc:  loc,
	}
}

func (uc *ComputeSlots) Execute(
	ctx context.Context,
	vendorIDStr string,
	serviceIDStr string,
	dateStr string,
) (*domain.DayAvailability, error) {

	// --------------------------------------------------
	// 1. Syntactic validation, first failure wins
	// --------------------------------------------------
	vendorID, err := uuid.Parse(vendorIDStr)
	if err != nil {
		return nil, httperr.ErrInvalidInput("vendor_id", "must be a valid UUID")
	}

	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		return nil, httperr.ErrInvalidInput("service_id", "must be a valid UUID")
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrInvalidInput("date", "must be an ISO date (YYYY-MM-DD)")
	}

	out := &domain.DayAvailability{
		VendorID:  vendorID.String(),
		ServiceID: serviceID.String(),
		Date:      date.Format("2006-01-02"),
		Slots:     []domain.Slot{},
	}

	// --------------------------------------------------
	// 2. Non-working day: a valid, empty result, not an error
	// --------------------------------------------------
	if !uc.cal.IsWorkingDay(date.Weekday()) {
		return out, nil
	}

	// --------------------------------------------------
	// 3. Offering must exist and be active
	// --------------------------------------------------
	offering, err := uc.repo.GetOffering(ctx, vendorID, serviceID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrNotFound("vendor/service combination not found or inactive")
		}
		return nil, err
	}

	duration := time.Duration(offering.DurationMin) * time.Minute
	if duration <= 0 {
		duration = uc.cal.SlotLength
	}

	dayStart, dayEnd := uc.cal.Window(date)

	// Bookings whose start falls on this calendar day; cancelled rows and
	// rows missing either timestamp are already filtered out.
	items, err := uc.repo.ListItemsForVendorDay(
		ctx,
		vendorID,
		date,
		date.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(uc.cal.SlotLength) {
		occEnd := cur.Add(duration)

		// The service must finish inside working hours.
		available := !occEnd.After(dayEnd)

		if available {
			for _, it := range items {
				if domain.Overlaps(cur, occEnd, *it.StartTime, *it.EndTime) {
					available = false
					break
				}
			}
		}

		out.Slots = append(out.Slots, domain.Slot{
			Time:        cur.Format("15:04"),
			IsAvailable: available,
		})
	}

	return out, nil
}
