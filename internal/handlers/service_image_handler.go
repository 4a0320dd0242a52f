package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/media"
	"github.com/garagehub/marketplace-api/internal/models"
)

const maxImageBytes = 10 << 20 // 10 MiB

type ServiceImageHandler struct {
	db      *gorm.DB
	storage *media.Storage
}

// NewServiceImageHandler accepts a nil storage when no bucket is
// configured; uploads then answer 503.
func NewServiceImageHandler(db *gorm.DB, storage *media.Storage) *ServiceImageHandler {
	return &ServiceImageHandler{db: db, storage: storage}
}

// Upload attaches a photo to one of the caller's offerings. The image is
// resized, re-encoded as webp and stored under a deterministic key, so a
// re-upload replaces the previous object.
func (h *ServiceImageHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "media_disabled", "Image storage is not configured.")
		return
	}

	sh := ServiceHandler{db: h.db}
	vendor, ok := sh.vendorFromPrincipal(c)
	if !ok {
		return
	}

	serviceID, err := uuid.Parse(c.PostForm("service_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id must be a valid UUID.")
		return
	}

	var offering models.VendorService
	if err := h.db.
		Where("vendor_id = ? AND service_id = ?", vendor.ID, serviceID).
		First(&offering).Error; err != nil {

		httperr.NotFound(c, "offering_not_found", "Offering not found.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "An image file is required.")
		return
	}
	if fileHeader.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be at most 10 MiB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	processed, err := media.ProcessImage(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Uploaded file is not a valid JPEG or PNG image.")
		return
	}

	key := fmt.Sprintf("services/%s/%s.webp", vendor.ID, serviceID)
	if err := h.storage.Put(c.Request.Context(), key, bytes.NewReader(processed), "image/webp"); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Failed to store image.")
		return
	}

	offering.ImageURL = h.storage.URL(key)
	if err := h.db.Save(&offering).Error; err != nil {
		httperr.Internal(c, "failed_to_update_offering", "Failed to save image URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": offering.ImageURL})
}
