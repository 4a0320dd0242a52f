package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/garagehub/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Profiles --------
	GetCustomerByUser(
		ctx context.Context,
		userID uuid.UUID,
	) (*models.Customer, error)

	GetVendorByUser(
		ctx context.Context,
		userID uuid.UUID,
	) (*models.Vendor, error)

	// -------- Offering --------
	// GetOffering resolves the active (vendor, service) pair whose
	// referenced service is itself active.
	GetOffering(
		ctx context.Context,
		vendorID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.VendorService, error)

	// -------- Cart --------
	ListCartItems(
		ctx context.Context,
		customerID uuid.UUID,
	) ([]models.CartItem, error)

	// -------- Checkout (atomic) --------
	// CreateCheckout persists the group with all of its items and the
	// payment record, and clears the customer's cart, in one transaction.
	CreateCheckout(
		ctx context.Context,
		group *models.BookingGroup,
		payment *models.Payment,
	) error

	// -------- Availability --------
	// ListItemsForVendorDay returns non-cancelled items whose start_time
	// falls in [dayStart, dayEnd) with both timestamps present.
	ListItemsForVendorDay(
		ctx context.Context,
		vendorID uuid.UUID,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.BookingItem, error)

	// -------- Items (state change / listing) --------
	GetItemForVendor(
		ctx context.Context,
		itemID uuid.UUID,
		vendorID uuid.UUID,
	) (*models.BookingItem, error)

	GetItemForCustomer(
		ctx context.Context,
		itemID uuid.UUID,
		customerID uuid.UUID,
	) (*models.BookingItem, error)

	UpdateItem(
		ctx context.Context,
		item *models.BookingItem,
	) error

	ListItemsForCustomer(
		ctx context.Context,
		customerID uuid.UUID,
	) ([]models.BookingItem, error)

	// ListItemsForVendorPeriod windows the vendor's agenda on start_time
	// without filtering by status; cancelled items stay visible.
	ListItemsForVendorPeriod(
		ctx context.Context,
		vendorID uuid.UUID,
		from time.Time,
		to time.Time,
	) ([]models.BookingItem, error)

	ListItemsForVendor(
		ctx context.Context,
		vendorID uuid.UUID,
	) ([]models.BookingItem, error)
}
