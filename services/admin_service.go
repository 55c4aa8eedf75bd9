package services

import (
	"context"
	"strings"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"go.uber.org/zap"
)

type CategoryBackend interface {
	CategoryReader
	Create(ctx context.Context, token string, in api.CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, token, id string, in api.CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, token, id string) error
}

type DishBackend interface {
	DishReader
	Create(ctx context.Context, token string, in api.DishInput) (*entity.Dish, error)
	Update(ctx context.Context, token, id string, in api.DishInput) (*entity.Dish, error)
	Delete(ctx context.Context, token, id string) error
}

type DiscountAdminBackend interface {
	DiscountBackend
	Create(ctx context.Context, token string, in api.DiscountInput) (*entity.Discount, error)
	Update(ctx context.Context, token, id string, in api.DiscountInput) (*entity.Discount, error)
	Delete(ctx context.Context, token, id string) error
}

type ContactAdminBackend interface {
	List(ctx context.Context, token string) ([]entity.Contact, error)
	Delete(ctx context.Context, token, id string) error
}

// AdminService backs the back office screens. Every call carries the session
// credential; the backend decides whether it is allowed.
type AdminService struct {
	categories CategoryBackend
	dishes     DishBackend
	discounts  DiscountAdminBackend
	contacts   ContactAdminBackend
	tokens     repository.TokenStore
	log        *zap.Logger
}

func NewAdminService(categories CategoryBackend, dishes DishBackend, discounts DiscountAdminBackend, contacts ContactAdminBackend, tokens repository.TokenStore, log *zap.Logger) *AdminService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminService{
		categories: categories, dishes: dishes, discounts: discounts, contacts: contacts,
		tokens: tokens, log: log,
	}
}

func (s *AdminService) token(ctx context.Context, sessionID string) string {
	return credential(ctx, s.tokens, sessionID, time.Now(), s.log)
}

// ----- categories -----

func (s *AdminService) Categories(ctx context.Context, sessionID string) ([]entity.Category, error) {
	return s.categories.List(ctx, s.token(ctx, sessionID))
}

func (s *AdminService) CreateCategory(ctx context.Context, sessionID string, in api.CategoryInput) (*entity.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(&in); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, s.token(ctx, sessionID), in)
}

func (s *AdminService) UpdateCategory(ctx context.Context, sessionID, id string, in api.CategoryInput) (*entity.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(&in); err != nil {
		return nil, err
	}
	return s.categories.Update(ctx, s.token(ctx, sessionID), id, in)
}

func (s *AdminService) DeleteCategory(ctx context.Context, sessionID, id string) error {
	return s.categories.Delete(ctx, s.token(ctx, sessionID), id)
}

// ----- dishes -----

func (s *AdminService) Dishes(ctx context.Context, sessionID string, q entity.DishQuery) (*entity.DishPage, error) {
	return s.dishes.List(ctx, s.token(ctx, sessionID), NormalizeDishQuery(q))
}

func (s *AdminService) CreateDish(ctx context.Context, sessionID string, in api.DishInput) (*entity.Dish, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(&in); err != nil {
		return nil, err
	}
	return s.dishes.Create(ctx, s.token(ctx, sessionID), in)
}

func (s *AdminService) UpdateDish(ctx context.Context, sessionID, id string, in api.DishInput) (*entity.Dish, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate(&in); err != nil {
		return nil, err
	}
	return s.dishes.Update(ctx, s.token(ctx, sessionID), id, in)
}

func (s *AdminService) DeleteDish(ctx context.Context, sessionID, id string) error {
	return s.dishes.Delete(ctx, s.token(ctx, sessionID), id)
}

// ----- discounts -----

func (s *AdminService) Discounts(ctx context.Context, sessionID string) ([]entity.Discount, error) {
	return s.discounts.List(ctx, s.token(ctx, sessionID))
}

func validateDiscount(in *api.DiscountInput) error {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if err := validate(in); err != nil {
		return err
	}
	if in.ValidTo.Before(in.ValidFrom) {
		return invalid("ValidTo", "gtefield=ValidFrom")
	}
	return nil
}

func (s *AdminService) CreateDiscount(ctx context.Context, sessionID string, in api.DiscountInput) (*entity.Discount, error) {
	if err := validateDiscount(&in); err != nil {
		return nil, err
	}
	return s.discounts.Create(ctx, s.token(ctx, sessionID), in)
}

func (s *AdminService) UpdateDiscount(ctx context.Context, sessionID, id string, in api.DiscountInput) (*entity.Discount, error) {
	if err := validateDiscount(&in); err != nil {
		return nil, err
	}
	return s.discounts.Update(ctx, s.token(ctx, sessionID), id, in)
}

func (s *AdminService) DeleteDiscount(ctx context.Context, sessionID, id string) error {
	return s.discounts.Delete(ctx, s.token(ctx, sessionID), id)
}

// ----- contacts -----

func (s *AdminService) Contacts(ctx context.Context, sessionID string) ([]entity.Contact, error) {
	return s.contacts.List(ctx, s.token(ctx, sessionID))
}

func (s *AdminService) DeleteContact(ctx context.Context, sessionID, id string) error {
	return s.contacts.Delete(ctx, s.token(ctx, sessionID), id)
}
