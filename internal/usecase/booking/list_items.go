package booking

import (
	"context"
	"time"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/dto"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/models"
)

type ListItems struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListItems(repo domain.Repository, loc *time.Location) *ListItems {
	return &ListItems{repo: repo, loc: loc}
}

// ForCustomer lists every booking item owned by the caller.
func (uc *ListItems) ForCustomer(
	ctx context.Context,
	p domain.Principal,
) ([]dto.BookingItemDTO, error) {

	customer, err := uc.repo.GetCustomerByUser(ctx, p.UserID)
	if err != nil {
		return nil, httperr.ErrNotFound("customer profile")
	}

	items, err := uc.repo.ListItemsForCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	return toDTOs(items), nil
}

// ForVendor lists the caller's booking items, optionally narrowed to one
// calendar day.
func (uc *ListItems) ForVendor(
	ctx context.Context,
	p domain.Principal,
	dateStr string,
) ([]dto.BookingItemDTO, error) {

	vendor, err := uc.repo.GetVendorByUser(ctx, p.UserID)
	if err != nil {
		return nil, httperr.ErrNotFound("vendor profile")
	}

	var items []models.BookingItem

	if dateStr == "" {
		items, err = uc.repo.ListItemsForVendor(ctx, vendor.ID)
	} else {
		var date time.Time
		date, err = time.ParseInLocation("2006-01-02", dateStr, uc.loc)
		if err != nil {
			return nil, httperr.ErrInvalidInput("date", "must be an ISO date (YYYY-MM-DD)")
		}
		items, err = uc.repo.ListItemsForVendorPeriod(ctx, vendor.ID, date, date.AddDate(0, 0, 1))
	}
	if err != nil {
		return nil, err
	}

	return toDTOs(items), nil
}

func toDTOs(items []models.BookingItem) []dto.BookingItemDTO {
	out := make([]dto.BookingItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.BookingItemDTO{
			ID:             it.ID,
			BookingGroupID: it.BookingGroupID,
			VendorID:       it.VendorID,
			CustomerID:     it.CustomerID,
			ServiceID:      it.ServiceID,
			ServiceName:    it.ServiceName,
			Price:          it.Price,
			DurationMin:    it.DurationMin,
			PreferredDate:  it.PreferredDate,
			PreferredTime:  it.PreferredTime,
			StartTime:      it.StartTime,
			EndTime:        it.EndTime,
			Status:         it.Status,
		})
	}
	return out
}
