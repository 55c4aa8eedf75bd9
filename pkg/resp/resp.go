package resp

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

// Done answers a mutation with the data and the toast text for the UI.
func Done(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": message, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// FromError maps service and backend errors to a status code. message is the
// toast text shown next to the error detail.
func FromError(c *gin.Context, message string, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": message, "error": verr.Error(), "fields": verr.Fields})
		return
	}
	c.JSON(statusOf(err), gin.H{"ok": false, "message": message, "error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, api.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, api.ErrNotFound),
		errors.Is(err, services.ErrNoTable),
		errors.Is(err, services.ErrDiscountNotFound):
		return http.StatusNotFound
	case errors.Is(err, api.ErrConflict),
		errors.Is(err, services.ErrTableUnavailable):
		return http.StatusConflict
	case errors.Is(err, api.ErrBadRequest),
		errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrTableTooSmall),
		errors.Is(err, services.ErrDiscountNotValid),
		errors.Is(err, services.ErrBookingTimeMissed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
