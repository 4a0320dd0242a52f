package httperr

import "errors"

const (
	CodeInvalidInput      = "invalid_input"
	CodeNotFound          = "not_found"
	CodeInvalidTransition = "invalid_transition"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrInvalidInput names the field that failed validation.
func ErrInvalidInput(field, message string) error {
	return BusinessError{
		Code:    CodeInvalidInput,
		Message: field + ": " + message,
	}
}

func ErrNotFound(what string) error {
	return BusinessError{
		Code:    CodeNotFound,
		Message: what,
	}
}

// ErrInvalidTransition carries both the current and the requested state.
func ErrInvalidTransition(current, requested string) error {
	return BusinessError{
		Code:    CodeInvalidTransition,
		Message: "cannot transition from " + current + " to " + requested,
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf extracts the business code, or "" for non-business errors.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// MessageOf extracts the business message, or "" for non-business errors.
func MessageOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}
