package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/httpresp"
	"github.com/garagehub/marketplace-api/internal/models"
)

type CartHandler struct {
	db *gorm.DB
}

func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

// --------- Requests ---------

type AddCartItemRequest struct {
	VendorID      string `json:"vendor_id" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"required"`
}

type UpdateCartItemRequest struct {
	PreferredDate *string `json:"preferredDate,omitempty"`
	PreferredTime *string `json:"preferredTime,omitempty"`
}

// --------- Handlers ---------

func (h *CartHandler) customerFromPrincipal(c *gin.Context) (*models.Customer, bool) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return nil, false
	}
	if p.Role != domain.RoleCustomer {
		httperr.Forbidden(c, "customer_only", "Only customer users have a cart.")
		return nil, false
	}

	var customer models.Customer
	if err := h.db.Where("user_id = ?", p.UserID).First(&customer).Error; err != nil {
		httperr.BadRequest(c, "customer_profile_required", "Create a customer profile first.")
		return nil, false
	}
	return &customer, true
}

func (h *CartHandler) List(c *gin.Context) {
	customer, ok := h.customerFromPrincipal(c)
	if !ok {
		return
	}

	var items []models.CartItem
	if err := h.db.
		Where("customer_id = ?", customer.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_cart", "Failed to list cart items.")
		return
	}

	httpresp.List(c, items)
}

func (h *CartHandler) Add(c *gin.Context) {
	customer, ok := h.customerFromPrincipal(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		httperr.BadRequest(c, "invalid_vendor_id", "vendor_id must be a valid UUID.")
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id must be a valid UUID.")
		return
	}

	if !isISODate(req.PreferredDate) {
		httperr.BadRequest(c, "invalid_preferred_date", "preferredDate must be an ISO date (YYYY-MM-DD).")
		return
	}
	if !isClock(req.PreferredTime) {
		httperr.BadRequest(c, "invalid_preferred_time", "preferredTime must be a 24h clock time (HH:MM).")
		return
	}

	// The vendor must actively offer this service.
	var count int64
	if err := h.db.Model(&models.VendorService{}).
		Joins("JOIN services ON services.id = vendor_services.service_id").
		Where(
			"vendor_services.vendor_id = ? AND vendor_services.service_id = ? AND vendor_services.active = ? AND services.active = ?",
			vendorID, serviceID, true, true,
		).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "failed_to_validate_offering", "Failed to validate offering.")
		return
	}
	if count == 0 {
		httperr.BadRequest(c, "offering_not_available", "This vendor does not offer the specified service.")
		return
	}

	item := models.CartItem{
		CustomerID:    customer.ID,
		VendorID:      vendorID,
		ServiceID:     serviceID,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_add_cart_item", "Failed to add cart item.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) Update(c *gin.Context) {
	customer, ok := h.customerFromPrincipal(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a valid UUID.")
		return
	}

	var item models.CartItem
	if err := h.db.
		Where("id = ? AND customer_id = ?", itemID, customer.ID).
		First(&item).Error; err != nil {

		httperr.NotFound(c, "cart_item_not_found", "Cart item not found.")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.PreferredDate != nil {
		if !isISODate(*req.PreferredDate) {
			httperr.BadRequest(c, "invalid_preferred_date", "preferredDate must be an ISO date (YYYY-MM-DD).")
			return
		}
		item.PreferredDate = *req.PreferredDate
	}
	if req.PreferredTime != nil {
		if !isClock(*req.PreferredTime) {
			httperr.BadRequest(c, "invalid_preferred_time", "preferredTime must be a 24h clock time (HH:MM).")
			return
		}
		item.PreferredTime = *req.PreferredTime
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_cart_item", "Failed to update cart item.")
		return
	}

	httpresp.OK(c, item)
}

func (h *CartHandler) Delete(c *gin.Context) {
	customer, ok := h.customerFromPrincipal(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a valid UUID.")
		return
	}

	res := h.db.
		Where("id = ? AND customer_id = ?", itemID, customer.ID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_cart_item", "Failed to delete cart item.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "cart_item_not_found", "Cart item not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
