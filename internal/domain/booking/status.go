package booking

import (
	"time"

	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/models"
)

// ===============================
// Booking Item Lifecycle
// ===============================

type Status string

const (
	StatusProcessing        Status = "processing"
	StatusVendorDone        Status = "vendor_done"
	StatusCustomerConfirmed Status = "customer_confirmed"
	StatusCancelled         Status = "cancelled"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func InitialStatus() Status {
	return StatusProcessing
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusProcessing, StatusVendorDone, StatusCustomerConfirmed, StatusCancelled:
		return true
	}
	return false
}

type transitionKey struct {
	Role Role
	From Status
	To   Status
}

// The full transition table. Anything not listed here is rejected;
// customer_confirmed and cancelled are terminal.
var transitions = map[transitionKey]bool{
	{RoleVendor, StatusProcessing, StatusVendorDone}:          true,
	{RoleVendor, StatusProcessing, StatusCancelled}:           true,
	{RoleCustomer, StatusVendorDone, StatusCustomerConfirmed}: true,
	{RoleCustomer, StatusProcessing, StatusCancelled}:         true,
	{RoleCustomer, StatusVendorDone, StatusCancelled}:         true,
}

func CanTransition(role Role, from, to Status) error {
	if !transitions[transitionKey{role, from, to}] {
		return httperr.ErrInvalidTransition(string(from), string(to))
	}
	return nil
}

// Transition moves the item to the requested status on behalf of the
// given role, deriving lifecycle timestamps.
func Transition(item *models.BookingItem, role Role, to Status, now time.Time) error {
	if !ValidStatus(to) {
		return httperr.ErrInvalidInput("status", "unknown status "+string(to))
	}
	if err := CanTransition(role, Status(item.Status), to); err != nil {
		return err
	}

	item.Status = string(to)

	switch to {
	case StatusVendorDone:
		item.VendorDoneAt = &now
	case StatusCustomerConfirmed:
		item.CustomerConfirmedAt = &now
	}

	return nil
}
