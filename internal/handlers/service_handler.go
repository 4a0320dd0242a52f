package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dbpkg "github.com/garagehub/marketplace-api/internal/db"
	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/httpresp"
	"github.com/garagehub/marketplace-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests / DTOs ---------

type RegisterOfferingRequest struct {
	ServiceID   string  `json:"service_id" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration" binding:"required,min=1"`
	Active      *bool   `json:"is_active"`
}

type UpdateOfferingRequest struct {
	ServiceID   string   `json:"service_id" binding:"required"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration,omitempty"`
	Active      *bool    `json:"is_active,omitempty"`
}

type DeleteOfferingRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// OfferingDTO keeps the catalog contract: id is the service id, not the
// offering row id.
type OfferingDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	DurationMin int       `json:"duration"`
	Active      bool      `json:"is_active"`
	ImageURL    string    `json:"image_url"`
}

func toOfferingDTO(vs models.VendorService) OfferingDTO {
	return OfferingDTO{
		ID:          vs.ServiceID,
		Name:        vs.Service.Name,
		Description: vs.Service.Description,
		Price:       vs.Price,
		DurationMin: vs.DurationMin,
		Active:      vs.Active,
		ImageURL:    vs.ImageURL,
	}
}

// --------- Public catalog ---------

// SeedList returns the active seed services anyone can browse.
func (h *ServiceHandler) SeedList(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.OK(c, services)
}

// VendorCatalog lists one vendor's active offerings.
func (h *ServiceHandler) VendorCatalog(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendor_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_vendor_id", "vendor_id must be a valid UUID.")
		return
	}

	var offerings []models.VendorService
	if err := h.db.
		Preload("Service").
		Joins("JOIN services ON services.id = vendor_services.service_id").
		Where("vendor_services.vendor_id = ? AND vendor_services.active = ? AND services.active = ?", vendorID, true, true).
		Order("services.name ASC").
		Find(&offerings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_offerings", "Failed to list vendor services.")
		return
	}

	out := make([]OfferingDTO, 0, len(offerings))
	for _, vs := range offerings {
		out = append(out, toOfferingDTO(vs))
	}
	httpresp.OK(c, out)
}

// --------- Vendor offering CRUD ---------

func (h *ServiceHandler) vendorFromPrincipal(c *gin.Context) (*models.Vendor, bool) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return nil, false
	}
	if p.Role != domain.RoleVendor {
		httperr.Forbidden(c, "vendor_only", "Only vendor users can manage offerings.")
		return nil, false
	}

	var vendor models.Vendor
	if err := h.db.Where("user_id = ?", p.UserID).First(&vendor).Error; err != nil {
		httperr.BadRequest(c, "vendor_profile_required", "Create a vendor profile first.")
		return nil, false
	}
	return &vendor, true
}

func (h *ServiceHandler) List(c *gin.Context) {
	vendor, ok := h.vendorFromPrincipal(c)
	if !ok {
		return
	}

	var offerings []models.VendorService
	if err := h.db.
		Preload("Service").
		Joins("JOIN services ON services.id = vendor_services.service_id").
		Where("vendor_services.vendor_id = ?", vendor.ID).
		Order("services.name ASC").
		Find(&offerings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_offerings", "Failed to list offerings.")
		return
	}

	out := make([]OfferingDTO, 0, len(offerings))
	for _, vs := range offerings {
		out = append(out, toOfferingDTO(vs))
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	vendor, ok := h.vendorFromPrincipal(c)
	if !ok {
		return
	}

	var req RegisterOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id must be a valid UUID.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", serviceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service does not exist.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	offering := models.VendorService{
		VendorID:    vendor.ID,
		ServiceID:   serviceID,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      active,
	}

	if err := h.db.Create(&offering).Error; err != nil {
		// One offering per (vendor, service) pair.
		if dbpkg.IsUniqueViolation(err) {
			httperr.BadRequest(c, "service_already_registered", "This service is already registered for this vendor.")
			return
		}
		httperr.Internal(c, "failed_to_create_offering", "Failed to register service.")
		return
	}

	offering.Service = service
	c.JSON(http.StatusCreated, toOfferingDTO(offering))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	vendor, ok := h.vendorFromPrincipal(c)
	if !ok {
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id must be a valid UUID.")
		return
	}

	var offering models.VendorService
	if err := h.db.
		Preload("Service").
		Where("vendor_id = ? AND service_id = ?", vendor.ID, serviceID).
		First(&offering).Error; err != nil {

		httperr.NotFound(c, "offering_not_found", "Offering not found.")
		return
	}

	if req.Price != nil {
		offering.Price = *req.Price
	}
	if req.DurationMin != nil {
		offering.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		offering.Active = *req.Active
	}

	if err := h.db.Save(&offering).Error; err != nil {
		httperr.Internal(c, "failed_to_update_offering", "Failed to update offering.")
		return
	}

	httpresp.OK(c, toOfferingDTO(offering))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	vendor, ok := h.vendorFromPrincipal(c)
	if !ok {
		return
	}

	var req DeleteOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id must be a valid UUID.")
		return
	}

	res := h.db.
		Where("vendor_id = ? AND service_id = ?", vendor.ID, serviceID).
		Delete(&models.VendorService{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_offering", "Failed to delete offering.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "offering_not_found", "Offering not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
