package entity

import "time"

type Dish struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           int64   `json:"price"`
	DiscountPercent float64 `json:"discountPercent"`
	FinalPrice      int64   `json:"finalPrice"`
	CategoryID      string  `json:"categoryId"`
	Status          string  `json:"status"`
	Image           string  `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayPrice is the price shown to the customer: the server-computed final
// price when it has one, the list price otherwise.
func (d *Dish) DisplayPrice() int64 {
	if d.FinalPrice > 0 {
		return d.FinalPrice
	}
	return d.Price
}

func (d *Dish) Available() bool { return d.Status == "" || d.Status == DishAvailable }

// DishQuery mirrors the query string accepted by GET /dishes.
type DishQuery struct {
	Page     int    `form:"page" json:"page"`
	Limit    int    `form:"limit" json:"limit"`
	Category string `form:"category" json:"category,omitempty"`
	Status   string `form:"status" json:"status,omitempty"`
	Keyword  string `form:"keyword" json:"keyword,omitempty"`
}

type DishPage struct {
	Items      []Dish `json:"items"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
}
