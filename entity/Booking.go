package entity

import "time"

type CustomerInfo struct {
	Name   string `json:"name" binding:"required,min=2,max=100"`
	Phone  string `json:"phone" binding:"required,min=8,max=20"`
	Email  string `json:"email" binding:"omitempty,email"`
	Guests int    `json:"guests" binding:"required,min=1,max=50"`
	Note   string `json:"note" binding:"max=500"`
}

// BookingDraft is composed at confirmation time and handed to the payment
// flow. It is never persisted here.
type BookingDraft struct {
	ID             string           `json:"id"`
	CartID         string           `json:"cartId"`
	TableID        string           `json:"tableId"`
	TableNumber    int              `json:"tableNumber"`
	Items          []LineItem       `json:"items"`
	Subtotal       int64            `json:"subtotal"`
	DiscountAmount int64            `json:"discountAmount"`
	Total          int64            `json:"total"`
	Customer       CustomerInfo     `json:"customer"`
	Discount       *DiscountSummary `json:"discount,omitempty"`
	BookingTime    string           `json:"bookingTime"`
	CreatedAt      time.Time        `json:"createdAt"`
}
