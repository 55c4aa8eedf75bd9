package entity

import "time"

// Discount is a promotional code. ValidFrom/ValidTo are compared by calendar
// day only.
type Discount struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Percentage  float64   `json:"percentage"`
	ValidFrom   time.Time `json:"validFrom"`
	ValidTo     time.Time `json:"validTo"`
	Active      bool      `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DiscountSummary is what a booking draft keeps of the chosen discount.
type DiscountSummary struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
}

func (d *Discount) Summary() *DiscountSummary {
	if d == nil {
		return nil
	}
	return &DiscountSummary{ID: d.ID, Code: d.Code, Percentage: d.Percentage}
}
