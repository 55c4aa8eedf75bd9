package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
)

type CategoryAPI struct{ c *Client }

func NewCategoryAPI(c *Client) *CategoryAPI { return &CategoryAPI{c: c} }

type CategoryInput struct {
	Name        string `json:"name" binding:"required,min=2,max=80"`
	Description string `json:"description" binding:"max=500"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (a *CategoryAPI) List(ctx context.Context, token string) ([]entity.Category, error) {
	var out []entity.Category
	if err := a.c.Do(ctx, http.MethodGet, "/categories", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CategoryAPI) Create(ctx context.Context, token string, in CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := a.c.Do(ctx, http.MethodPost, "/categories/create", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Update(ctx context.Context, token, id string, in CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := a.c.Do(ctx, http.MethodPatch, "/categories/edit/"+url.PathEscape(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CategoryAPI) Delete(ctx context.Context, token, id string) error {
	return a.c.Do(ctx, http.MethodDelete, "/categories/delete/"+url.PathEscape(id), token, nil, nil)
}
