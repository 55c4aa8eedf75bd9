package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
)

type DiscountAPI struct{ c *Client }

func NewDiscountAPI(c *Client) *DiscountAPI { return &DiscountAPI{c: c} }

type DiscountInput struct {
	Code        string    `json:"code" binding:"required,min=2,max=50"`
	Description string    `json:"description" binding:"max=500"`
	Percentage  float64   `json:"percentage" binding:"required,gt=0,lte=100"`
	ValidFrom   time.Time `json:"validFrom" binding:"required"`
	ValidTo     time.Time `json:"validTo" binding:"required"`
	Active      bool      `json:"active"`
}

// GET /discounts
func (a *DiscountAPI) List(ctx context.Context, token string) ([]entity.Discount, error) {
	var out []entity.Discount
	if err := a.c.Do(ctx, http.MethodGet, "/discounts", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *DiscountAPI) Create(ctx context.Context, token string, in DiscountInput) (*entity.Discount, error) {
	var out entity.Discount
	if err := a.c.Do(ctx, http.MethodPost, "/discounts/create", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DiscountAPI) Update(ctx context.Context, token, id string, in DiscountInput) (*entity.Discount, error) {
	var out entity.Discount
	if err := a.c.Do(ctx, http.MethodPatch, "/discounts/edit/"+url.PathEscape(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DiscountAPI) Delete(ctx context.Context, token, id string) error {
	return a.c.Do(ctx, http.MethodDelete, "/discounts/delete/"+url.PathEscape(id), token, nil, nil)
}
