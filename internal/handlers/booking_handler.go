package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/httpresp"
	ucBooking "github.com/garagehub/marketplace-api/internal/usecase/booking"
)

type BookingHandler struct {
	checkoutUC   *ucBooking.Checkout
	transitionUC *ucBooking.TransitionStatus
	listUC       *ucBooking.ListItems
}

func NewBookingHandler(
	checkoutUC *ucBooking.Checkout,
	transitionUC *ucBooking.TransitionStatus,
	listUC *ucBooking.ListItems,
) *BookingHandler {
	return &BookingHandler{
		checkoutUC:   checkoutUC,
		transitionUC: transitionUC,
		listUC:       listUC,
	}
}

// --------- Requests ---------

type CheckoutRequest struct {
	Method string `json:"method" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Checkout(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	group, err := h.checkoutUC.Execute(c.Request.Context(), ucBooking.CheckoutInput{
		Principal: p,
		Method:    req.Method,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	items, err := h.listUC.ForCustomer(c.Request.Context(), p)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) ListVendor(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	items, err := h.listUC.ForVendor(c.Request.Context(), p, c.Query("date"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a valid UUID.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	item, err := h.transitionUC.Execute(c.Request.Context(), p, itemID, req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, item)
}
