package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
)

type DishAPI struct{ c *Client }

func NewDishAPI(c *Client) *DishAPI { return &DishAPI{c: c} }

// DishInput is the body of the admin create/edit calls.
type DishInput struct {
	Name            string  `json:"name" binding:"required,min=2,max=120"`
	Description     string  `json:"description" binding:"max=2000"`
	Price           int64   `json:"price" binding:"required,gt=0"`
	DiscountPercent float64 `json:"discountPercent" binding:"gte=0,lte=100"`
	CategoryID      string  `json:"categoryId" binding:"required"`
	Status          string  `json:"status" binding:"omitempty,oneof=available unavailable"`
	Image           string  `json:"image"`
}

func dishQueryString(q entity.DishQuery) string {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// GET /dishes
func (a *DishAPI) List(ctx context.Context, token string, q entity.DishQuery) (*entity.DishPage, error) {
	var out entity.DishPage
	if err := a.c.Do(ctx, http.MethodGet, "/dishes"+dishQueryString(q), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /dishes/detail/:id
func (a *DishAPI) Detail(ctx context.Context, token, id string) (*entity.Dish, error) {
	var out entity.Dish
	if err := a.c.Do(ctx, http.MethodGet, "/dishes/detail/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DishAPI) Create(ctx context.Context, token string, in DishInput) (*entity.Dish, error) {
	var out entity.Dish
	if err := a.c.Do(ctx, http.MethodPost, "/dishes/create", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DishAPI) Update(ctx context.Context, token, id string, in DishInput) (*entity.Dish, error) {
	var out entity.Dish
	if err := a.c.Do(ctx, http.MethodPatch, "/dishes/edit/"+url.PathEscape(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DishAPI) Delete(ctx context.Context, token, id string) error {
	return a.c.Do(ctx, http.MethodDelete, "/dishes/delete/"+url.PathEscape(id), token, nil, nil)
}
