package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoTable           = errors.New("table not found")
	ErrTableUnavailable  = errors.New("table is not available")
	ErrTableTooSmall     = errors.New("table cannot seat the party")
	ErrDiscountNotFound  = errors.New("discount not found")
	ErrBookingTimeMissed = errors.New("booking time is in the past")
)

const BookingTimeLayout = "2006-01-02 15:04"

type TableBackend interface {
	List(ctx context.Context, token string) ([]entity.Table, error)
}

type DiscountBackend interface {
	List(ctx context.Context, token string) ([]entity.Discount, error)
}

type BookingRequest struct {
	TableID    string              `json:"tableId" binding:"required"`
	DiscountID string              `json:"discountId"`
	BookingAt  time.Time           `json:"bookingAt" binding:"required"`
	Customer   entity.CustomerInfo `json:"customer"`
}

// BookingScreen is the data the booking page renders for a chosen date.
type BookingScreen struct {
	Quote            BookingQuote      `json:"quote"`
	ValidDiscounts   []entity.Discount `json:"validDiscounts"`
	SelectedDiscount *entity.Discount  `json:"selectedDiscount,omitempty"`
	Items            []entity.LineItem `json:"items"`
}

type BookingService struct {
	carts     *CartRegistry
	tables    TableBackend
	discounts DiscountBackend
	tokens    repository.TokenStore
	calc      *BookingCalculator
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingService(carts *CartRegistry, tables TableBackend, discounts DiscountBackend, tokens repository.TokenStore, calc *BookingCalculator, log *zap.Logger) *BookingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingService{
		carts: carts, tables: tables, discounts: discounts, tokens: tokens,
		calc: calc, log: log, now: time.Now,
	}
}

func (s *BookingService) Calculator() *BookingCalculator { return s.calc }

// ValidDiscounts loads the discount catalog and keeps what applies on date.
func (s *BookingService) ValidDiscounts(ctx context.Context, sessionID string, date *time.Time) ([]entity.Discount, error) {
	if date == nil {
		return []entity.Discount{}, nil
	}
	all, err := s.discounts.List(ctx, s.token(ctx, sessionID))
	if err != nil {
		return nil, err
	}
	return s.calc.ValidDiscounts(all, date), nil
}

// Screen recomputes the booking page for a date and an optional discount.
// A discount that is not valid on the date is deselected, not rejected.
func (s *BookingService) Screen(ctx context.Context, sessionID string, date *time.Time, discountID string) (*BookingScreen, error) {
	view, err := s.cartView(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	valid, err := s.ValidDiscounts(ctx, sessionID, date)
	if err != nil {
		return nil, err
	}

	sel := BookingSelection{}
	if discountID != "" {
		for i := range valid {
			if valid[i].ID == discountID {
				sel.Discount = &valid[i]
				break
			}
		}
	}
	if date != nil {
		s.calc.OnDateChange(&sel, *date)
	}

	return &BookingScreen{
		Quote:            s.calc.Quote(view, sel.Discount),
		ValidDiscounts:   valid,
		SelectedDiscount: sel.Discount,
		Items:            view.Items,
	}, nil
}

// Confirm composes the booking draft handed to the payment flow. Input is
// validated before anything is fetched.
func (s *BookingService) Confirm(ctx context.Context, sessionID string, req BookingRequest) (*entity.BookingDraft, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	if req.BookingAt.Before(s.now()) {
		return nil, ErrBookingTimeMissed
	}

	view, err := s.cartView(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrEmptyCart
	}

	token := s.token(ctx, sessionID)
	tables, err := s.tables.List(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}
	var table *entity.Table
	for i := range tables {
		if tables[i].ID == req.TableID {
			table = &tables[i]
			break
		}
	}
	switch {
	case table == nil:
		return nil, ErrNoTable
	case !table.Available():
		return nil, ErrTableUnavailable
	case table.Capacity > 0 && table.Capacity < req.Customer.Guests:
		return nil, ErrTableTooSmall
	}

	sel := BookingSelection{}
	s.calc.OnDateChange(&sel, req.BookingAt)
	if req.DiscountID != "" {
		all, err := s.discounts.List(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("load discounts: %w", err)
		}
		var chosen *entity.Discount
		for i := range all {
			if all[i].ID == req.DiscountID {
				chosen = &all[i]
				break
			}
		}
		if chosen == nil {
			return nil, ErrDiscountNotFound
		}
		if err := s.calc.SelectDiscount(&sel, chosen); err != nil {
			return nil, err
		}
	}

	q := s.calc.Quote(view, sel.Discount)
	draft := &entity.BookingDraft{
		ID:             uuid.NewString(),
		CartID:         view.CartID,
		TableID:        table.ID,
		TableNumber:    table.Number,
		Items:          view.Items,
		Subtotal:       q.Subtotal,
		DiscountAmount: q.DiscountAmount,
		Total:          q.Total,
		Customer:       req.Customer,
		Discount:       sel.Discount.Summary(),
		BookingTime:    req.BookingAt.In(s.calc.Location()).Format(BookingTimeLayout),
		CreatedAt:      s.now(),
	}
	s.log.Info("booking draft composed",
		zap.String("session", sessionID),
		zap.String("draft", draft.ID),
		zap.String("table", draft.TableID),
		zap.Int64("total", draft.Total),
	)
	return draft, nil
}

// cartView makes sure the session's cart was loaded at least once.
func (s *BookingService) cartView(ctx context.Context, sessionID string) (CartView, error) {
	m := s.carts.For(ctx, sessionID)
	if !m.Loaded() {
		if err := m.Fetch(ctx); err != nil {
			return CartView{}, err
		}
	}
	return m.Snapshot(), nil
}

func (s *BookingService) token(ctx context.Context, sessionID string) string {
	return credential(ctx, s.tokens, sessionID, s.now(), s.log)
}
