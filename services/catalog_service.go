package services

import (
	"context"
	"strings"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"go.uber.org/zap"
)

const (
	defaultDishLimit = 12
	maxDishLimit     = 100
)

type DishReader interface {
	List(ctx context.Context, token string, q entity.DishQuery) (*entity.DishPage, error)
	Detail(ctx context.Context, token, id string) (*entity.Dish, error)
}

type CategoryReader interface {
	List(ctx context.Context, token string) ([]entity.Category, error)
}

// CatalogService serves the read side of the menu and the table list.
type CatalogService struct {
	dishes     DishReader
	categories CategoryReader
	tables     TableBackend
	tokens     repository.TokenStore
	log        *zap.Logger
}

func NewCatalogService(dishes DishReader, categories CategoryReader, tables TableBackend, tokens repository.TokenStore, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{dishes: dishes, categories: categories, tables: tables, tokens: tokens, log: log}
}

// NormalizeDishQuery applies paging defaults and drops unknown statuses.
func NormalizeDishQuery(q entity.DishQuery) entity.DishQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultDishLimit
	}
	if q.Limit > maxDishLimit {
		q.Limit = maxDishLimit
	}
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Category = strings.TrimSpace(q.Category)
	if q.Status != entity.DishAvailable && q.Status != entity.DishUnavailable {
		q.Status = ""
	}
	return q
}

func (s *CatalogService) Dishes(ctx context.Context, sessionID string, q entity.DishQuery) (*entity.DishPage, error) {
	q = NormalizeDishQuery(q)
	page, err := s.dishes.List(ctx, s.token(ctx, sessionID), q)
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		page.Items = []entity.Dish{}
	}
	if page.Page == 0 {
		page.Page = q.Page
	}
	if page.Limit == 0 {
		page.Limit = q.Limit
	}
	if page.TotalPages == 0 && page.Total > 0 {
		page.TotalPages = int((page.Total + int64(page.Limit) - 1) / int64(page.Limit))
	}
	return page, nil
}

func (s *CatalogService) Dish(ctx context.Context, sessionID, id string) (*entity.Dish, error) {
	return s.dishes.Detail(ctx, s.token(ctx, sessionID), id)
}

func (s *CatalogService) Categories(ctx context.Context, sessionID string) ([]entity.Category, error) {
	return s.categories.List(ctx, s.token(ctx, sessionID))
}

func (s *CatalogService) Tables(ctx context.Context, sessionID string) ([]entity.Table, error) {
	return s.tables.List(ctx, s.token(ctx, sessionID))
}

func (s *CatalogService) token(ctx context.Context, sessionID string) string {
	return credential(ctx, s.tokens, sessionID, time.Now(), s.log)
}
