package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"go.uber.org/zap"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartBackend is the cart half of the REST backend.
type CartBackend interface {
	Get(ctx context.Context, token string) (*entity.Cart, error)
	Add(ctx context.Context, token, dishID string, quantity int) (*entity.Cart, error)
	Edit(ctx context.Context, token, dishID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, token, dishID string) (*entity.Cart, error)
	Clear(ctx context.Context, token string) error
}

// CartView is a copy of the manager state handed to readers and observers.
type CartView struct {
	CartID     string            `json:"cartId,omitempty"`
	Items      []entity.LineItem `json:"items"`
	Count      int               `json:"count"`
	Total      PriceTotal        `json:"total"`
	Loading    bool              `json:"loading"`
	Generation uint64            `json:"generation"`
}

// CartManager holds the cart snapshot of one session and its projection.
//
// Every operation that talks to the backend runs under writeMu, so at most
// one request is in flight and responses apply in issue order. A response is
// dropped when its context is done by the time it arrives, or when Reset ran
// while it was in flight.
type CartManager struct {
	sessionID string
	backend   CartBackend
	tokens    repository.TokenStore
	log       *zap.Logger
	now       func() time.Time

	writeMu sync.Mutex

	mu       sync.RWMutex
	snapshot *entity.Cart
	items    []entity.LineItem
	loading  bool
	fetched  bool
	gen      uint64
	subs     map[int]chan CartView
	nextSub  int
}

func NewCartManager(sessionID string, backend CartBackend, tokens repository.TokenStore, log *zap.Logger) *CartManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartManager{
		sessionID: sessionID,
		backend:   backend,
		tokens:    tokens,
		log:       log.With(zap.String("session", sessionID)),
		now:       time.Now,
		items:     []entity.LineItem{},
		subs:      make(map[int]chan CartView),
	}
}

func (m *CartManager) SessionID() string { return m.sessionID }

// Fetch loads the cart. Without a usable credential it resets to empty and
// makes no call. A failed read is logged and also resets to empty; only a
// cancelled ctx is reported back.
func (m *CartManager) Fetch(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	gen := m.generation()
	token := credential(ctx, m.tokens, m.sessionID, m.now(), m.log)
	if token == "" {
		m.apply(nil, gen)
		return nil
	}

	m.setLoading(true)
	defer m.setLoading(false)

	cart, err := m.backend.Get(ctx, token)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		m.log.Warn("cart fetch failed, showing empty cart", zap.Error(err))
		m.apply(nil, gen)
		return nil
	}
	m.apply(cart, gen)
	return nil
}

func (m *CartManager) AddItem(ctx context.Context, dishID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return m.mutate(ctx, "add", func(token string) (*entity.Cart, error) {
		return m.backend.Add(ctx, token, dishID, quantity)
	})
}

// RemoveItem is the quantity-zero edit; the backend treats it as removal.
func (m *CartManager) RemoveItem(ctx context.Context, dishID string) error {
	return m.mutate(ctx, "remove", func(token string) (*entity.Cart, error) {
		return m.backend.RemoveItem(ctx, token, dishID)
	})
}

func (m *CartManager) UpdateQuantity(ctx context.Context, dishID string, quantity int) error {
	if quantity <= 0 {
		return m.RemoveItem(ctx, dishID)
	}
	return m.mutate(ctx, "edit", func(token string) (*entity.Cart, error) {
		return m.backend.Edit(ctx, token, dishID, quantity)
	})
}

// Clear empties the cart on success whatever the response body holds.
func (m *CartManager) Clear(ctx context.Context) error {
	return m.mutate(ctx, "clear", func(token string) (*entity.Cart, error) {
		return nil, m.backend.Clear(ctx, token)
	})
}

func (m *CartManager) mutate(ctx context.Context, op string, call func(token string) (*entity.Cart, error)) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	token := credential(ctx, m.tokens, m.sessionID, m.now(), m.log)
	if token == "" {
		return fmt.Errorf("cart %s: %w", op, api.ErrUnauthenticated)
	}
	gen := m.generation()

	m.setLoading(true)
	defer m.setLoading(false)

	cart, err := call(token)
	if err != nil {
		return fmt.Errorf("cart %s: %w", op, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if !m.apply(cart, gen) {
		m.log.Debug("dropped stale cart response", zap.String("op", op))
	}
	return nil
}

// Reset forgets the snapshot, e.g. on logout. Responses still in flight are
// dropped when they arrive.
func (m *CartManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.snapshot = nil
	m.items = []entity.LineItem{}
	m.fetched = false
	m.notifyLocked()
}

func (m *CartManager) TotalItemCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, li := range m.items {
		n += li.Quantity
	}
	return n
}

func (m *CartManager) TotalPrice() PriceTotal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return CartTotal(m.snapshot, m.items)
}

func (m *CartManager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Loaded reports whether a fetch or mutation has applied since the last reset.
func (m *CartManager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetched
}

func (m *CartManager) Snapshot() CartView {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewLocked()
}

// Subscribe delivers the current view and then every change until ctx is
// done. A slow reader only ever sees the latest view.
func (m *CartManager) Subscribe(ctx context.Context) <-chan CartView {
	ch := make(chan CartView, 1)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	ch <- m.viewLocked()
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, id)
		close(ch)
		m.mu.Unlock()
	}()
	return ch
}

func (m *CartManager) Observers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

func (m *CartManager) generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen
}

// apply replaces the snapshot unless the generation moved since gen was read.
func (m *CartManager) apply(cart *entity.Cart, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen {
		return false
	}
	m.gen++
	m.snapshot = cart
	m.items = ProjectItems(cart)
	m.fetched = true
	m.notifyLocked()
	return true
}

func (m *CartManager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
	m.notifyLocked()
}

func (m *CartManager) viewLocked() CartView {
	items := make([]entity.LineItem, len(m.items))
	copy(items, m.items)
	v := CartView{
		Items:      items,
		Total:      CartTotal(m.snapshot, m.items),
		Loading:    m.loading,
		Generation: m.gen,
	}
	for _, li := range items {
		v.Count += li.Quantity
	}
	if m.snapshot != nil {
		v.CartID = m.snapshot.ID
	}
	return v
}

func (m *CartManager) notifyLocked() {
	if len(m.subs) == 0 {
		return
	}
	v := m.viewLocked()
	for _, ch := range m.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}
