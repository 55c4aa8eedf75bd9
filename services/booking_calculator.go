package services

import (
	"errors"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/shopspring/decimal"
)

var ErrDiscountNotValid = errors.New("discount is not valid on the booking date")

var hundred = decimal.NewFromInt(100)

// BookingQuote is what the booking screen displays.
type BookingQuote struct {
	Subtotal       int64       `json:"subtotal"`
	DiscountAmount int64       `json:"discountAmount"`
	Total          int64       `json:"total"`
	Source         TotalSource `json:"source"`
}

// BookingCalculator derives booking totals and discount validity. It does no
// I/O. Calendar days are taken in loc.
type BookingCalculator struct {
	loc *time.Location
}

func NewBookingCalculator(loc *time.Location) *BookingCalculator {
	if loc == nil {
		loc = time.Local
	}
	return &BookingCalculator{loc: loc}
}

func (b *BookingCalculator) Location() *time.Location { return b.loc }

// Subtotal uses the server total when the cart carries one.
func (b *BookingCalculator) Subtotal(v CartView) int64 { return v.Total.Amount }

// DiscountAmount is subtotal*percentage/100 rounded half-to-even to a whole
// currency unit.
func (b *BookingCalculator) DiscountAmount(d *entity.Discount, subtotal int64) int64 {
	if d == nil {
		return 0
	}
	return decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromFloat(d.Percentage)).
		Div(hundred).
		RoundBank(0).
		IntPart()
}

// Total is not clamped at zero.
func (b *BookingCalculator) Total(subtotal, discountAmount int64) int64 {
	return subtotal - discountAmount
}

func (b *BookingCalculator) Quote(v CartView, d *entity.Discount) BookingQuote {
	sub := b.Subtotal(v)
	off := b.DiscountAmount(d, sub)
	return BookingQuote{
		Subtotal:       sub,
		DiscountAmount: off,
		Total:          b.Total(sub, off),
		Source:         v.Total.Source,
	}
}

// IsDiscountValidOn checks the active flag and the inclusive, day-grained
// validity window.
func (b *BookingCalculator) IsDiscountValidOn(d entity.Discount, date time.Time) bool {
	if !d.Active {
		return false
	}
	day := date.In(b.loc)
	from := b.startOfDay(d.ValidFrom)
	to := b.startOfDay(d.ValidTo).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return !day.Before(from) && !day.After(to)
}

// ValidDiscounts filters the catalog for a booking date; no date yet means
// nothing is offered.
func (b *BookingCalculator) ValidDiscounts(all []entity.Discount, date *time.Time) []entity.Discount {
	out := []entity.Discount{}
	if date == nil {
		return out
	}
	for _, d := range all {
		if b.IsDiscountValidOn(d, *date) {
			out = append(out, d)
		}
	}
	return out
}

func (b *BookingCalculator) startOfDay(t time.Time) time.Time {
	t = t.In(b.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, b.loc)
}

// BookingSelection is the date/discount state of the booking screen.
type BookingSelection struct {
	Date     *time.Time
	Discount *entity.Discount
}

// OnDateChange sets the new date and drops the selected discount if it is no
// longer valid on it.
func (b *BookingCalculator) OnDateChange(sel *BookingSelection, date time.Time) {
	sel.Date = &date
	if sel.Discount != nil && !b.IsDiscountValidOn(*sel.Discount, date) {
		sel.Discount = nil
	}
}

// SelectDiscount picks d for the current date. nil clears the selection.
func (b *BookingCalculator) SelectDiscount(sel *BookingSelection, d *entity.Discount) error {
	if d == nil {
		sel.Discount = nil
		return nil
	}
	if sel.Date == nil || !b.IsDiscountValidOn(*d, *sel.Date) {
		return ErrDiscountNotValid
	}
	sel.Discount = d
	return nil
}
