package services

import (
	"testing"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func juneDiscount() entity.Discount {
	return entity.Discount{
		ID:         "disc-1",
		Code:       "JUNE20",
		Percentage: 20,
		ValidFrom:  day(2025, time.June, 1),
		ValidTo:    day(2025, time.June, 10),
		Active:     true,
	}
}

func estimateView(amount int64) CartView {
	return CartView{Total: PriceTotal{Source: ClientEstimate, Amount: amount}}
}

func TestDiscountArithmetic(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	d := juneDiscount()

	q := calc.Quote(estimateView(500000), &d)
	assert.Equal(t, int64(500000), q.Subtotal)
	assert.Equal(t, int64(100000), q.DiscountAmount)
	assert.Equal(t, int64(400000), q.Total)
	assert.Equal(t, ClientEstimate, q.Source)

	none := calc.Quote(estimateView(500000), nil)
	assert.Equal(t, int64(0), none.DiscountAmount)
	assert.Equal(t, int64(500000), none.Total)
}

func TestDiscountAmountRoundsHalfToEven(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	cases := []struct {
		subtotal int64
		pct      float64
		want     int64
	}{
		{subtotal: 5, pct: 50, want: 2},       // 2.5
		{subtotal: 7, pct: 50, want: 4},       // 3.5
		{subtotal: 333, pct: 10, want: 33},    // 33.3
		{subtotal: 999, pct: 12.5, want: 125}, // 124.875
		{subtotal: 0, pct: 30, want: 0},
	}
	for _, tc := range cases {
		d := entity.Discount{Percentage: tc.pct}
		assert.Equal(t, tc.want, calc.DiscountAmount(&d, tc.subtotal), "%d * %v%%", tc.subtotal, tc.pct)
	}
}

func TestTotalIsNotClamped(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	d := entity.Discount{Percentage: 150}
	q := calc.Quote(estimateView(1000), &d)
	assert.Equal(t, int64(1500), q.DiscountAmount)
	assert.Equal(t, int64(-500), q.Total)
}

func TestSubtotalUsesServerTotal(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	v := CartView{
		Items: []entity.LineItem{{DishID: "d1", Price: 1000, Quantity: 1}},
		Total: PriceTotal{Source: ServerAuthoritative, Amount: 800},
	}
	q := calc.Quote(v, nil)
	assert.Equal(t, int64(800), q.Subtotal)
	assert.Equal(t, ServerAuthoritative, q.Source)
}

func TestDiscountValidityIsInclusiveByDay(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	d := juneDiscount()

	assert.False(t, calc.IsDiscountValidOn(d, day(2025, time.May, 31)))
	assert.True(t, calc.IsDiscountValidOn(d, day(2025, time.June, 1)))
	assert.True(t, calc.IsDiscountValidOn(d, day(2025, time.June, 5)))
	assert.True(t, calc.IsDiscountValidOn(d, day(2025, time.June, 10)))
	assert.True(t, calc.IsDiscountValidOn(d, time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, calc.IsDiscountValidOn(d, day(2025, time.June, 11)))

	d.Active = false
	assert.False(t, calc.IsDiscountValidOn(d, day(2025, time.June, 5)))
}

func TestDiscountValidityUsesCalculatorZone(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)
	calc := NewBookingCalculator(hcm)
	d := juneDiscount()
	d.ValidFrom = time.Date(2025, time.June, 1, 0, 0, 0, 0, hcm)
	d.ValidTo = time.Date(2025, time.June, 10, 0, 0, 0, 0, hcm)

	// 18:00 UTC on the 10th is already the 11th in ICT.
	assert.False(t, calc.IsDiscountValidOn(d, time.Date(2025, time.June, 10, 18, 0, 0, 0, time.UTC)))
	assert.True(t, calc.IsDiscountValidOn(d, time.Date(2025, time.June, 10, 16, 0, 0, 0, time.UTC)))
}

func TestValidDiscountsWithoutDateIsEmpty(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	all := []entity.Discount{juneDiscount()}

	got := calc.ValidDiscounts(all, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	date := day(2025, time.June, 3)
	assert.Len(t, calc.ValidDiscounts(all, &date), 1)

	late := day(2025, time.July, 1)
	assert.Empty(t, calc.ValidDiscounts(all, &late))
}

func TestDateChangeDropsInvalidSelection(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	d := juneDiscount()
	sel := BookingSelection{}

	calc.OnDateChange(&sel, day(2025, time.June, 5))
	require.NoError(t, calc.SelectDiscount(&sel, &d))
	require.NotNil(t, sel.Discount)

	calc.OnDateChange(&sel, day(2025, time.June, 10))
	assert.NotNil(t, sel.Discount, "still valid on the last day")

	calc.OnDateChange(&sel, day(2025, time.June, 11))
	assert.Nil(t, sel.Discount)
	assert.Equal(t, day(2025, time.June, 11), *sel.Date)

	q := calc.Quote(estimateView(500000), sel.Discount)
	assert.Equal(t, int64(0), q.DiscountAmount)
	assert.Equal(t, int64(500000), q.Total)
}

func TestSelectDiscountRequiresValidDate(t *testing.T) {
	calc := NewBookingCalculator(time.UTC)
	d := juneDiscount()
	sel := BookingSelection{}

	assert.ErrorIs(t, calc.SelectDiscount(&sel, &d), ErrDiscountNotValid)

	calc.OnDateChange(&sel, day(2025, time.July, 2))
	assert.ErrorIs(t, calc.SelectDiscount(&sel, &d), ErrDiscountNotValid)
	assert.Nil(t, sel.Discount)

	calc.OnDateChange(&sel, day(2025, time.June, 2))
	require.NoError(t, calc.SelectDiscount(&sel, &d))
	require.NoError(t, calc.SelectDiscount(&sel, nil))
	assert.Nil(t, sel.Discount)
}
