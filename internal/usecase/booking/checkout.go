package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/garagehub/marketplace-api/internal/audit"
	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/models"
)

var paymentMethods = map[string]bool{
	"card":     true,
	"cash":     true,
	"wallet":   true,
	"external": true,
}

type CheckoutInput struct {
	Principal domain.Principal
	Method    string
}

// Checkout converts the customer's cart into one BookingGroup with one
// BookingItem per cart row, snapshotting service name/price/duration and
// the customer's contact/address at this moment. All-or-nothing: a single
// invalid row aborts the whole group before anything is written.
type Checkout struct {
	repo  domain.Repository
	cal   domain.Calendar
	loc   *time.Location
	audit *audit.Dispatcher
}

func NewCheckout(
	repo domain.Repository,
	cal domain.Calendar,
	loc *time.Location,
	dispatcher *audit.Dispatcher,
) *Checkout {
	return &Checkout{
		repo:  repo,
		cal:   cal,
		loc:   loc,
		audit: dispatcher,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*models.BookingGroup, error) {

	if in.Principal.Role != domain.RoleCustomer {
		return nil, httperr.ErrNotFound("customer profile")
	}

	if !paymentMethods[in.Method] {
		return nil, httperr.ErrInvalidInput("method", "must be one of card, cash, wallet, external")
	}

	customer, err := uc.repo.GetCustomerByUser(ctx, in.Principal.UserID)
	if err != nil {
		return nil, httperr.ErrNotFound("customer profile")
	}

	cart, err := uc.repo.ListCartItems(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, httperr.ErrInvalidInput("cart", "cart is empty")
	}

	// --------------------------------------------------
	// Validate every row before creating anything
	// --------------------------------------------------
	items := make([]models.BookingItem, 0, len(cart))
	total := 0.0

	for _, ci := range cart {
		offering, err := uc.repo.GetOffering(ctx, ci.VendorID, ci.ServiceID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, httperr.ErrNotFound("offering for cart item " + ci.ID.String())
			}
			return nil, err
		}

		start, err := time.ParseInLocation(
			"2006-01-02 15:04",
			ci.PreferredDate+" "+ci.PreferredTime,
			uc.loc,
		)
		if err != nil {
			return nil, httperr.ErrInvalidInput("preferredDate", "cart item "+ci.ID.String()+" has an invalid date/time")
		}

		duration := offering.DurationMin
		if duration <= 0 {
			duration = int(uc.cal.SlotLength / time.Minute)
		}
		end := start.Add(time.Duration(duration) * time.Minute)

		items = append(items, models.BookingItem{
			CustomerID:    customer.ID,
			VendorID:      ci.VendorID,
			ServiceID:     ci.ServiceID,
			ServiceName:   offering.Service.Name,
			Price:         offering.Price,
			DurationMin:   duration,
			PreferredDate: ci.PreferredDate,
			PreferredTime: ci.PreferredTime,
			StartTime:     &start,
			EndTime:       &end,
			Status:        string(domain.InitialStatus()),
		})
		total += offering.Price
	}

	group := &models.BookingGroup{
		CustomerID:       customer.ID,
		ContactInfo:      customer.ContactInfo,
		FormattedAddress: customer.FormattedAddress,
		PlaceID:          customer.PlaceID,
		Latitude:         customer.Latitude,
		Longitude:        customer.Longitude,
		Items:            items,
	}

	payment := &models.Payment{
		TotalAmount: total,
		Method:      in.Method,
		Status:      "initiated",
	}

	if err := uc.repo.CreateCheckout(ctx, group, payment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   "booking_group_created",
		Entity:   "booking_group",
		EntityID: &group.ID,
		Metadata: map[string]any{"items": len(group.Items), "total": total},
	})

	return group, nil
}
