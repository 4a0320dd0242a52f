package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/httperr"
	"github.com/garagehub/marketplace-api/internal/middleware"
)

func principalFrom(c *gin.Context) (domain.Principal, bool) {
	userIDVal, ok1 := c.Get(middleware.ContextUserID)
	roleVal, ok2 := c.Get(middleware.ContextUserRole)
	if !ok1 || !ok2 {
		return domain.Principal{}, false
	}

	userID, ok1 := userIDVal.(uuid.UUID)
	role, ok2 := roleVal.(string)
	if !ok1 || !ok2 {
		return domain.Principal{}, false
	}

	return domain.Principal{
		UserID: userID,
		Role:   domain.Role(role),
	}, true
}

// isISODate and isClock validate the wire formats the cart stores
// ("2006-01-02" / "15:04") so malformed values are rejected at add time
// instead of surfacing at checkout.
func isISODate(s string) bool {
	t, err := time.Parse("2006-01-02", s)
	return err == nil && t.Format("2006-01-02") == s
}

func isClock(s string) bool {
	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}

// writeBusinessError maps the error taxonomy onto HTTP statuses:
// invalid input 400, not found 404, invalid transition 409, anything
// unrecognized 500.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.CodeOf(err)
	msg := httperr.MessageOf(err)

	switch code {
	case httperr.CodeInvalidInput:
		httperr.BadRequest(c, code, msg)
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, msg)
	case httperr.CodeInvalidTransition:
		httperr.Conflict(c, code, msg)
	case "":
		httperr.Internal(c, "internal_error", "Unexpected error.")
	default:
		httperr.BadRequest(c, code, msg)
	}
}
