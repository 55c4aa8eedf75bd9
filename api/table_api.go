package api

import (
	"context"
	"net/http"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
)

type TableAPI struct{ c *Client }

func NewTableAPI(c *Client) *TableAPI { return &TableAPI{c: c} }

// GET /tables
func (a *TableAPI) List(ctx context.Context, token string) ([]entity.Table, error) {
	var out []entity.Table
	if err := a.c.Do(ctx, http.MethodGet, "/tables", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
