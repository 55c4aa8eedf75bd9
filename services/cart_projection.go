package services

import "github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"

// TotalSource tells whether a cart total came from the backend or was summed
// locally.
type TotalSource string

const (
	ServerAuthoritative TotalSource = "server"
	ClientEstimate      TotalSource = "estimate"
)

type PriceTotal struct {
	Source TotalSource `json:"source"`
	Amount int64       `json:"amount"`
}

// ProjectItems turns the server cart into UI line items. Lines with a
// non-positive quantity are removal signals and are dropped.
func ProjectItems(cart *entity.Cart) []entity.LineItem {
	if cart == nil {
		return []entity.LineItem{}
	}
	items := make([]entity.LineItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.Quantity < 1 {
			continue
		}
		li := entity.LineItem{DishID: it.DishID, Quantity: it.Quantity}
		if it.Dish != nil {
			li.Name = it.Dish.Name
			li.Price = it.Dish.DisplayPrice()
			li.Image = it.Dish.Image
			if li.DishID == "" {
				li.DishID = it.Dish.ID
			}
		}
		items = append(items, li)
	}
	return items
}

func ClientSum(items []entity.LineItem) int64 {
	var sum int64
	for _, li := range items {
		sum += li.Subtotal()
	}
	return sum
}

// CartTotal defers to the server-reported total and only sums locally when
// there is no snapshot or the snapshot carries no total.
func CartTotal(cart *entity.Cart, items []entity.LineItem) PriceTotal {
	if cart != nil && cart.TotalPrice != nil {
		return PriceTotal{Source: ServerAuthoritative, Amount: *cart.TotalPrice}
	}
	return PriceTotal{Source: ClientEstimate, Amount: ClientSum(items)}
}
