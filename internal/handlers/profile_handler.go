package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/httpresp"
	"github.com/garagehub/marketplace-api/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type ProfileRequest struct {
	Fullname         string   `json:"fullname" binding:"required"`
	ContactInfo      string   `json:"contact_info"`
	FormattedAddress string   `json:"formatted_address"`
	PlaceID          string   `json:"place_id"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

// Get returns the caller's role profile: a Customer row for customers,
// a Vendor row for vendors.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	switch p.Role {
	case domain.RoleCustomer:
		var customer models.Customer
		if err := h.db.Where("user_id = ?", p.UserID).First(&customer).Error; err != nil {
			httperr.NotFound(c, "profile_not_found", "Profile not found.")
			return
		}
		httpresp.OK(c, customer)

	case domain.RoleVendor:
		var vendor models.Vendor
		if err := h.db.Where("user_id = ?", p.UserID).First(&vendor).Error; err != nil {
			httperr.NotFound(c, "profile_not_found", "Profile not found.")
			return
		}
		httpresp.OK(c, vendor)

	default:
		httperr.BadRequest(c, "invalid_role", "Expected a customer or vendor principal.")
	}
}

// Put replaces the caller's profile, creating it on first use.
func (h *ProfileHandler) Put(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	switch p.Role {
	case domain.RoleCustomer:
		var customer models.Customer
		err := h.db.Where("user_id = ?", p.UserID).First(&customer).Error
		created := err == gorm.ErrRecordNotFound
		if err != nil && !created {
			httperr.Internal(c, "failed_to_get_profile", "Failed to load profile.")
			return
		}

		customer.UserID = p.UserID
		applyProfile(&customer.Fullname, &customer.ContactInfo, &customer.FormattedAddress,
			&customer.PlaceID, &customer.Latitude, &customer.Longitude, req)

		if err := h.db.Save(&customer).Error; err != nil {
			httperr.Internal(c, "failed_to_save_profile", "Failed to save profile.")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, customer)

	case domain.RoleVendor:
		var vendor models.Vendor
		err := h.db.Where("user_id = ?", p.UserID).First(&vendor).Error
		created := err == gorm.ErrRecordNotFound
		if err != nil && !created {
			httperr.Internal(c, "failed_to_get_profile", "Failed to load profile.")
			return
		}

		vendor.UserID = p.UserID
		applyProfile(&vendor.Fullname, &vendor.ContactInfo, &vendor.FormattedAddress,
			&vendor.PlaceID, &vendor.Latitude, &vendor.Longitude, req)

		if err := h.db.Save(&vendor).Error; err != nil {
			httperr.Internal(c, "failed_to_save_profile", "Failed to save profile.")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, vendor)

	default:
		httperr.BadRequest(c, "invalid_role", "Expected a customer or vendor principal.")
	}
}

func applyProfile(
	fullname, contact, address, placeID *string,
	lat, long **float64,
	req ProfileRequest,
) {
	*fullname = req.Fullname
	*contact = req.ContactInfo
	*address = req.FormattedAddress
	*placeID = req.PlaceID
	*lat = req.Latitude
	*long = req.Longitude
}
