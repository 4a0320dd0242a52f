package booking_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. Checkout is
// recorded, not transactional; a row is only visible after CreateCheckout
// returned nil, which is the contract the use cases rely on.
type fakeRepo struct {
	customers map[uuid.UUID]*models.Customer // keyed by user id
	vendors   map[uuid.UUID]*models.Vendor   // keyed by user id
	offerings []*models.VendorService
	cart      []models.CartItem
	items     []*models.BookingItem

	groups   []*models.BookingGroup
	payments []*models.Payment

	checkoutErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers: map[uuid.UUID]*models.Customer{},
		vendors:   map[uuid.UUID]*models.Vendor{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetCustomerByUser(_ context.Context, userID uuid.UUID) (*models.Customer, error) {
	if c, ok := f.customers[userID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetVendorByUser(_ context.Context, userID uuid.UUID) (*models.Vendor, error) {
	if v, ok := f.vendors[userID]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetOffering(_ context.Context, vendorID, serviceID uuid.UUID) (*models.VendorService, error) {
	for _, o := range f.offerings {
		if o.VendorID == vendorID && o.ServiceID == serviceID && o.Active && o.Service.Active {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListCartItems(_ context.Context, customerID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, ci := range f.cart {
		if ci.CustomerID == customerID {
			out = append(out, ci)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateCheckout(_ context.Context, group *models.BookingGroup, payment *models.Payment) error {
	if f.checkoutErr != nil {
		return f.checkoutErr
	}

	group.ID = uuid.New()
	for i := range group.Items {
		group.Items[i].ID = uuid.New()
		group.Items[i].BookingGroupID = group.ID
		f.items = append(f.items, &group.Items[i])
	}
	f.groups = append(f.groups, group)

	payment.BookingGroupID = group.ID
	f.payments = append(f.payments, payment)

	remaining := f.cart[:0]
	for _, ci := range f.cart {
		if ci.CustomerID != group.CustomerID {
			remaining = append(remaining, ci)
		}
	}
	f.cart = remaining
	return nil
}

func (f *fakeRepo) ListItemsForVendorDay(_ context.Context, vendorID uuid.UUID, dayStart, dayEnd time.Time) ([]models.BookingItem, error) {
	var out []models.BookingItem
	for _, it := range f.items {
		if it.VendorID != vendorID || it.Status == "cancelled" {
			continue
		}
		if it.StartTime == nil || it.EndTime == nil {
			continue
		}
		if it.StartTime.Before(dayStart) || !it.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeRepo) GetItemForVendor(_ context.Context, itemID, vendorID uuid.UUID) (*models.BookingItem, error) {
	for _, it := range f.items {
		if it.ID == itemID && it.VendorID == vendorID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetItemForCustomer(_ context.Context, itemID, customerID uuid.UUID) (*models.BookingItem, error) {
	for _, it := range f.items {
		if it.ID == itemID && it.CustomerID == customerID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateItem(_ context.Context, item *models.BookingItem) error {
	for i, it := range f.items {
		if it.ID == item.ID {
			cp := *item
			f.items[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListItemsForVendorPeriod(_ context.Context, vendorID uuid.UUID, from, to time.Time) ([]models.BookingItem, error) {
	var out []models.BookingItem
	for _, it := range f.items {
		if it.VendorID != vendorID || it.StartTime == nil {
			continue
		}
		if it.StartTime.Before(from) || !it.StartTime.Before(to) {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeRepo) ListItemsForCustomer(_ context.Context, customerID uuid.UUID) ([]models.BookingItem, error) {
	var out []models.BookingItem
	for _, it := range f.items {
		if it.CustomerID == customerID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListItemsForVendor(_ context.Context, vendorID uuid.UUID) ([]models.BookingItem, error) {
	var out []models.BookingItem
	for _, it := range f.items {
		if it.VendorID == vendorID {
			out = append(out, *it)
		}
	}
	return out, nil
}

// -------- seeding helpers --------

func (f *fakeRepo) seedCustomer() *models.Customer {
	c := &models.Customer{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Fullname:         "Test Customer",
		ContactInfo:      "+1 555 0100",
		FormattedAddress: "1 Main St",
		PlaceID:          "place-1",
	}
	f.customers[c.UserID] = c
	return c
}

func (f *fakeRepo) seedVendor() *models.Vendor {
	v := &models.Vendor{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Fullname: "Test Vendor",
	}
	f.vendors[v.UserID] = v
	return v
}

func (f *fakeRepo) seedOffering(vendorID uuid.UUID, name string, price float64, durationMin int) *models.VendorService {
	o := &models.VendorService{
		ID:        uuid.New(),
		VendorID:  vendorID,
		ServiceID: uuid.New(),
		Service: models.Service{
			Name:   name,
			Active: true,
		},
		Price:       price,
		DurationMin: durationMin,
		Active:      true,
	}
	o.Service.ID = o.ServiceID
	f.offerings = append(f.offerings, o)
	return o
}

func (f *fakeRepo) seedItem(customerID, vendorID uuid.UUID, start, end time.Time, status string) *models.BookingItem {
	it := &models.BookingItem{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorID,
		ServiceID:  uuid.New(),
		StartTime:  &start,
		EndTime:    &end,
		Status:     status,
	}
	f.items = append(f.items, it)
	return it
}
