package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagehub/marketplace-api/internal/audit"
	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/models"
)

// TransitionStatus applies a lifecycle transition on behalf of the caller.
// Ownership mismatches surface as not-found so one party can never learn
// whether another party's booking exists.
type TransitionStatus struct {
	repo  domain.Repository
	loc   *time.Location
	audit *audit.Dispatcher
}

func NewTransitionStatus(
	repo domain.Repository,
	loc *time.Location,
	dispatcher *audit.Dispatcher,
) *TransitionStatus {
	return &TransitionStatus{
		repo:  repo,
		loc:   loc,
		audit: dispatcher,
	}
}

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	p domain.Principal,
	itemID uuid.UUID,
	requested string,
) (*models.BookingItem, error) {

	var item *models.BookingItem

	switch p.Role {
	case domain.RoleVendor:
		vendor, err := uc.repo.GetVendorByUser(ctx, p.UserID)
		if err != nil {
			return nil, httperr.ErrNotFound("booking item")
		}
		item, err = uc.repo.GetItemForVendor(ctx, itemID, vendor.ID)
		if err != nil {
			return nil, httperr.ErrNotFound("booking item")
		}

	case domain.RoleCustomer:
		customer, err := uc.repo.GetCustomerByUser(ctx, p.UserID)
		if err != nil {
			return nil, httperr.ErrNotFound("booking item")
		}
		item, err = uc.repo.GetItemForCustomer(ctx, itemID, customer.ID)
		if err != nil {
			return nil, httperr.ErrNotFound("booking item")
		}

	default:
		return nil, httperr.ErrNotFound("booking item")
	}

	now := time.Now().In(uc.loc)
	if err := domain.Transition(item, p.Role, domain.Status(requested), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   "booking_item_" + requested,
		Entity:   "booking_item",
		EntityID: &item.ID,
	})

	return item, nil
}
