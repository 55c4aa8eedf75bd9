package entity

import (
	"bytes"
	"encoding/json"
)

// CartItem is one server cart line. Depending on the endpoint the backend
// sends the dish populated or as a bare id, under "dishId" or "dish".
type CartItem struct {
	DishID   string `json:"dishId"`
	Dish     *Dish  `json:"dish,omitempty"`
	Quantity int    `json:"quantity"`
}

func (ci *CartItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		DishID   json.RawMessage `json:"dishId"`
		Dish     json.RawMessage `json:"dish"`
		Quantity int             `json:"quantity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	ci.DishID, ci.Dish, ci.Quantity = "", nil, raw.Quantity

	for _, ref := range []json.RawMessage{raw.DishID, raw.Dish} {
		id, dish, err := dishRef(ref)
		if err != nil {
			return err
		}
		if ci.DishID == "" {
			ci.DishID = id
		}
		if ci.Dish == nil {
			ci.Dish = dish
		}
	}
	return nil
}

func dishRef(d json.RawMessage) (string, *Dish, error) {
	d = bytes.TrimSpace(d)
	switch {
	case len(d) == 0 || bytes.Equal(d, []byte("null")):
		return "", nil, nil
	case d[0] == '{':
		var dish Dish
		if err := json.Unmarshal(d, &dish); err != nil {
			return "", nil, err
		}
		return dish.ID, &dish, nil
	default:
		var id string
		if err := json.Unmarshal(d, &id); err != nil {
			return "", nil, err
		}
		return id, nil, nil
	}
}

// LineItem is the UI-facing projection of a CartItem, rebuilt from every
// server response and never stored on its own.
type LineItem struct {
	DishID   string `json:"dishId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

func (li LineItem) Subtotal() int64 { return li.Price * int64(li.Quantity) }
