package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomerByUser(
	ctx context.Context,
	userID uuid.UUID,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) GetVendorByUser(
	ctx context.Context,
	userID uuid.UUID,
) (*models.Vendor, error) {

	var vendor models.Vendor
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// --------------------------------------------------
// Offering
// --------------------------------------------------

func (r *BookingGormRepository) GetOffering(
	ctx context.Context,
	vendorID uuid.UUID,
	serviceID uuid.UUID,
) (*models.VendorService, error) {

	var offering models.VendorService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Joins("JOIN services ON services.id = vendor_services.service_id").
		Where(
			"vendor_services.vendor_id = ? AND vendor_services.service_id = ? AND vendor_services.active = ? AND services.active = ?",
			vendorID, serviceID, true, true,
		).
		First(&offering).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

func (r *BookingGormRepository) ListCartItems(
	ctx context.Context,
	customerID uuid.UUID,
) ([]models.CartItem, error) {

	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

// CreateCheckout writes the group (items cascade through the association),
// the payment record, and empties the cart, all inside one transaction.
func (r *BookingGormRepository) CreateCheckout(
	ctx context.Context,
	group *models.BookingGroup,
	payment *models.Payment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		payment.BookingGroupID = group.ID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.
			Where("customer_id = ?", group.CustomerID).
			Delete(&models.CartItem{}).Error
	})
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListItemsForVendorDay(
	ctx context.Context,
	vendorID uuid.UUID,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.BookingItem, error) {

	var items []models.BookingItem
	if err := r.db.WithContext(ctx).
		Where(
			"vendor_id = ? AND status <> ? AND start_time IS NOT NULL AND end_time IS NOT NULL AND start_time >= ? AND start_time < ?",
			vendorID, string(domain.StatusCancelled), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// --------------------------------------------------
// Items (state change / listing)
// --------------------------------------------------

func (r *BookingGormRepository) GetItemForVendor(
	ctx context.Context,
	itemID uuid.UUID,
	vendorID uuid.UUID,
) (*models.BookingItem, error) {

	var item models.BookingItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", itemID, vendorID).
		First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *BookingGormRepository) GetItemForCustomer(
	ctx context.Context,
	itemID uuid.UUID,
	customerID uuid.UUID,
) (*models.BookingItem, error) {

	var item models.BookingItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", itemID, customerID).
		First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *BookingGormRepository) UpdateItem(
	ctx context.Context,
	item *models.BookingItem,
) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *BookingGormRepository) ListItemsForCustomer(
	ctx context.Context,
	customerID uuid.UUID,
) ([]models.BookingItem, error) {

	var items []models.BookingItem
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_time ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *BookingGormRepository) ListItemsForVendorPeriod(
	ctx context.Context,
	vendorID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.BookingItem, error) {

	var items []models.BookingItem
	if err := r.db.WithContext(ctx).
		Where(
			"vendor_id = ? AND start_time >= ? AND start_time < ?",
			vendorID, from, to,
		).
		Order("start_time ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *BookingGormRepository) ListItemsForVendor(
	ctx context.Context,
	vendorID uuid.UUID,
) ([]models.BookingItem, error) {

	var items []models.BookingItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("start_time ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
