package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/models"
	booking "github.com/garagehub/marketplace-api/internal/usecase/booking"
)

func newCheckout(repo *fakeRepo) *booking.Checkout {
	return booking.NewCheckout(repo, domain.DefaultCalendar(), time.UTC, nil)
}

func addToCart(repo *fakeRepo, customerID uuid.UUID, o *models.VendorService, date, clock string) {
	repo.cart = append(repo.cart, models.CartItem{
		ID:            uuid.New(),
		CustomerID:    customerID,
		VendorID:      o.VendorID,
		ServiceID:     o.ServiceID,
		PreferredDate: date,
		PreferredTime: clock,
	})
}

func TestCheckoutRejectsNonCustomers(t *testing.T) {
	repo := newFakeRepo()
	vendor := repo.seedVendor()
	uc := newCheckout(repo)

	_, err := uc.Execute(context.Background(), booking.CheckoutInput{
		Principal: domain.Principal{UserID: vendor.UserID, Role: domain.RoleVendor},
		Method:    "card",
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found for a vendor caller, got %v", err)
	}
}

func TestCheckoutRejectsUnknownMethod(t *testing.T) {
	repo := newFakeRepo()
	customer := repo.seedCustomer()
	uc := newCheckout(repo)

	_, err := uc.Execute(context.Background(), booking.CheckoutInput{
		Principal: domain.Principal{UserID: customer.UserID, Role: domain.RoleCustomer},
		Method:    "crypto",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input for unknown method, got %v", err)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	repo := newFakeRepo()
	customer := repo.seedCustomer()
	uc := newCheckout(repo)

	_, err := uc.Execute(context.Background(), booking.CheckoutInput{
		Principal: domain.Principal{UserID: customer.UserID, Role: domain.RoleCustomer},
		Method:    "card",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input for empty cart, got %v", err)
	}
}

func TestCheckoutIsAllOrNothing(t *testing.T) {
	repo := newFakeRepo()
	customer := repo.seedCustomer()
	vendor := repo.seedVendor()
	good := repo.seedOffering(vendor.ID, "Oil Change", 80, 60)

	addToCart(repo, customer.ID, good, monday, "09:00")

	// Second row points at an offering nobody provides.
	repo.cart = append(repo.cart, models.CartItem{
		ID:            uuid.New(),
		CustomerID:    customer.ID,
		VendorID:      vendor.ID,
		ServiceID:     uuid.New(),
		PreferredDate: monday,
		PreferredTime: "11:00",
	})

	uc := newCheckout(repo)
	_, err := uc.Execute(context.Background(), booking.CheckoutInput{
		Principal: domain.Principal{UserID: customer.UserID, Role: domain.RoleCustomer},
		Method:    "card",
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found for the dangling row, got %v", err)
	}

	if len(repo.groups) != 0 || len(repo.items) != 0 || len(repo.payments) != 0 {
		t.Fatal("a failed checkout must not persist anything")
	}
	if len(repo.cart) != 2 {
		t.Fatalf("a failed checkout must keep the cart, have %d rows", len(repo.cart))
	}
}

func TestCheckoutSnapshotsAndClearsCart(t *testing.T) {
	repo := newFakeRepo()
	customer := repo.seedCustomer()
	vendor := repo.seedVendor()
	oil := repo.seedOffering(vendor.ID, "Oil Change", 80, 60)
	detail := repo.seedOffering(vendor.ID, "Full Detailing", 200, 90)

	addToCart(repo, customer.ID, oil, monday, "09:00")
	addToCart(repo, customer.ID, detail, monday, "11:00")

	uc := newCheckout(repo)
	group, err := uc.Execute(context.Background(), booking.CheckoutInput{
		Principal: domain.Principal{UserID: customer.UserID, Role: domain.RoleCustomer},
		Method:    "card",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if len(group.Items) != 2 {
		t.Fatalf("expected 2 booking items, got %d", len(group.Items))
	}

	// Customer contact/address is copied onto the group.
	if group.ContactInfo != customer.ContactInfo || group.FormattedAddress != customer.FormattedAddress {
		t.Fatal("group must snapshot the customer's contact and address")
	}

	first := group.Items[0]
	if first.ServiceName != "Oil Change" || first.Price != 80 || first.DurationMin != 60 {
		t.Fatalf("item snapshot = %q/%v/%d, want Oil Change/80/60",
			first.ServiceName, first.Price, first.DurationMin)
	}
	if first.Status != "processing" {
		t.Fatalf("new items start as processing, got %q", first.Status)
	}
	if first.StartTime == nil || first.EndTime == nil {
		t.Fatal("start/end must be derived at checkout")
	}
	if got := first.EndTime.Sub(*first.StartTime); got != 60*time.Minute {
		t.Fatalf("occupancy = %v, want 60m", got)
	}

	second := group.Items[1]
	if got := second.EndTime.Sub(*second.StartTime); got != 90*time.Minute {
		t.Fatalf("occupancy = %v, want 90m for the 90-minute service", got)
	}

	// Later catalog edits must not leak into the snapshot.
	detail.Price = 999
	detail.Service.Name = "Renamed"
	if second.Price != 200 || second.ServiceName != "Full Detailing" {
		t.Fatal("snapshot changed after a catalog edit")
	}

	if len(repo.payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(repo.payments))
	}
	p := repo.payments[0]
	if p.TotalAmount != 280 || p.Method != "card" || p.Status != "initiated" {
		t.Fatalf("payment = %v/%q/%q, want 280/card/initiated", p.TotalAmount, p.Method, p.Status)
	}
	if p.BookingGroupID != group.ID {
		t.Fatal("payment must reference the created group")
	}

	if len(repo.cart) != 0 {
		t.Fatalf("cart should be cleared, %d rows remain", len(repo.cart))
	}
}

func TestCheckoutDurationFallsBackToGrid(t *testing.T) {
	repo := newFakeRepo()
	customer := repo.seedCustomer()
	vendor := repo.seedVendor()
	o := repo.seedOffering(vendor.ID, "Quick Check", 30, 0) // no duration set

	addToCart(repo, customer.ID, o, monday, "14:00")

	uc := newCheckout(repo)
	group, err := uc.Execute(context.Background(), booking.CheckoutInput{
		Principal: domain.Principal{UserID: customer.UserID, Role: domain.RoleCustomer},
		Method:    "cash",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	it := group.Items[0]
	if it.DurationMin != 60 {
		t.Fatalf("duration fallback = %d, want the 60-minute grid", it.DurationMin)
	}
	if got := it.EndTime.Sub(*it.StartTime); got != time.Hour {
		t.Fatalf("occupancy = %v, want 1h", got)
	}
}
