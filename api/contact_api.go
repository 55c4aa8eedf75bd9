package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
)

type ContactAPI struct{ c *Client }

func NewContactAPI(c *Client) *ContactAPI { return &ContactAPI{c: c} }

type ContactInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// POST /contacts/create
func (a *ContactAPI) Create(ctx context.Context, token string, in ContactInput) error {
	return a.c.Do(ctx, http.MethodPost, "/contacts/create", token, in, nil)
}

func (a *ContactAPI) List(ctx context.Context, token string) ([]entity.Contact, error) {
	var out []entity.Contact
	if err := a.c.Do(ctx, http.MethodGet, "/contacts", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ContactAPI) Delete(ctx context.Context, token, id string) error {
	return a.c.Do(ctx, http.MethodDelete, "/contacts/delete/"+url.PathEscape(id), token, nil, nil)
}
