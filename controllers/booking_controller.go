package controllers

import (
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/pkg/resp"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{Svc: s}
}

// parseDate reads ?date=YYYY-MM-DD in the booking location; empty means no
// date chosen yet.
func (h *BookingController) parseDate(c *gin.Context) (*time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return nil, true
	}
	d, err := time.ParseInLocation(dateLayout, raw, h.Svc.Calculator().Location())
	if err != nil {
		resp.BadRequest(c, "date must be YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}

// GET /booking/discounts?date=
func (h *BookingController) Discounts(c *gin.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}
	items, err := h.Svc.ValidDiscounts(c.Request.Context(), utils.CurrentSessionID(c), date)
	if err != nil {
		resp.FromError(c, "Could not load discounts", err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /booking/quote?date=&discountId=
func (h *BookingController) Quote(c *gin.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}
	screen, err := h.Svc.Screen(c.Request.Context(), utils.CurrentSessionID(c), date, c.Query("discountId"))
	if err != nil {
		resp.FromError(c, "Could not compute the total", err)
		return
	}
	resp.OK(c, screen)
}

// POST /booking/confirm
func (h *BookingController) Confirm(c *gin.Context) {
	var req services.BookingRequest
	if !decodeJSON(c, &req) {
		return
	}
	draft, err := h.Svc.Confirm(c.Request.Context(), utils.CurrentSessionID(c), req)
	if err != nil {
		resp.FromError(c, "Booking could not be confirmed", err)
		return
	}
	resp.Done(c, "Booking ready for payment", draft)
}
