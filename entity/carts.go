package entity

import "time"

// Cart is the server-owned cart aggregate. The client never edits it in place;
// every mutation response replaces the local copy.
type Cart struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`

	// nil when the backend did not report a total
	TotalPrice *int64 `json:"totalPrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Empty reports whether the cart holds no line with a positive quantity.
func (c *Cart) Empty() bool {
	if c == nil {
		return true
	}
	for _, it := range c.Items {
		if it.Quantity > 0 {
			return false
		}
	}
	return true
}
