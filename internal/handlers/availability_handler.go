package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/httpresp"
	ucBooking "github.com/garagehub/marketplace-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	computeSlotsUC *ucBooking.ComputeSlots
}

func NewAvailabilityHandler(computeSlotsUC *ucBooking.ComputeSlots) *AvailabilityHandler {
	return &AvailabilityHandler{computeSlotsUC: computeSlotsUC}
}

// Slots handles GET /api/availability/slots?vendor_id=&service_id=&date=.
// Weekends and fully-booked days are 200s; only malformed input (400) and
// an unknown/inactive pair (404) are errors.
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	vendorID := c.Query("vendor_id")
	serviceID := c.Query("service_id")
	date := c.Query("date")

	if vendorID == "" || serviceID == "" || date == "" {
		httperr.BadRequest(c, "missing_parameters", "vendor_id, service_id, and date are required query parameters.")
		return
	}

	out, err := h.computeSlotsUC.Execute(c.Request.Context(), vendorID, serviceID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, out)
}
