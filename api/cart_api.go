package api

import (
	"context"
	"net/http"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
)

type CartAPI struct{ c *Client }

func NewCartAPI(c *Client) *CartAPI { return &CartAPI{c: c} }

type cartLineReq struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// GET /carts
func (a *CartAPI) Get(ctx context.Context, token string) (*entity.Cart, error) {
	var out entity.Cart
	if err := a.c.Do(ctx, http.MethodGet, "/carts", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /carts/add
func (a *CartAPI) Add(ctx context.Context, token, dishID string, quantity int) (*entity.Cart, error) {
	var out entity.Cart
	if err := a.c.Do(ctx, http.MethodPost, "/carts/add", token, cartLineReq{DishID: dishID, Quantity: quantity}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /carts/edit
func (a *CartAPI) Edit(ctx context.Context, token, dishID string, quantity int) (*entity.Cart, error) {
	var out entity.Cart
	if err := a.c.Do(ctx, http.MethodPost, "/carts/edit", token, cartLineReq{DishID: dishID, Quantity: quantity}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /carts/delete-item; the backend reads the missing quantity as zero.
func (a *CartAPI) RemoveItem(ctx context.Context, token, dishID string) (*entity.Cart, error) {
	var out entity.Cart
	body := struct {
		DishID string `json:"dishId"`
	}{DishID: dishID}
	if err := a.c.Do(ctx, http.MethodDelete, "/carts/delete-item", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /carts/clear. The response body is ignored.
func (a *CartAPI) Clear(ctx context.Context, token string) error {
	return a.c.Do(ctx, http.MethodDelete, "/carts/clear", token, nil, nil)
}
