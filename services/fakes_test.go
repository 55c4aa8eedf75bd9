package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
)

// memTokens is an in-memory TokenStore.
type memTokens struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemTokens() *memTokens { return &memTokens{m: map[string]string{}} }

func (t *memTokens) Get(_ context.Context, sid string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tok, ok := t.m[sid]
	if !ok {
		return "", repository.ErrSessionNotFound
	}
	return tok, nil
}

func (t *memTokens) Put(_ context.Context, sid, tok string, _ *time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[sid] = tok
	return nil
}

func (t *memTokens) Delete(_ context.Context, sid string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, sid)
	return nil
}

type cartCall struct {
	Op       string
	DishID   string
	Quantity int
	Token    string
}

// fakeCartServer models the backend cart: it keeps quantities per dish and
// answers with the full cart, like the real endpoints.
type fakeCartServer struct {
	mu     sync.Mutex
	calls  []cartCall
	qty    map[string]int
	order  []string
	dishes map[string]entity.Dish

	// reportTotal controls whether responses carry totalPrice; totalOverride
	// replaces the computed total when non-nil.
	reportTotal   bool
	totalOverride *int64

	err    error // returned by writes
	getErr error // returned by Get

	before func(op string)

	inflight    int32
	maxInflight int32
}

func newFakeCartServer() *fakeCartServer {
	return &fakeCartServer{
		qty: map[string]int{},
		dishes: map[string]entity.Dish{
			"d1": {ID: "d1", Name: "Pho bo", Price: 60000, FinalPrice: 50000, Image: "pho.jpg"},
			"d2": {ID: "d2", Name: "Bun cha", Price: 45000},
			"d3": {ID: "d3", Name: "Tra da", Price: 5000},
		},
		reportTotal: true,
	}
}

func (f *fakeCartServer) enter(op string) {
	n := atomic.AddInt32(&f.inflight, 1)
	for {
		m := atomic.LoadInt32(&f.maxInflight)
		if n <= m || atomic.CompareAndSwapInt32(&f.maxInflight, m, n) {
			break
		}
	}
	if f.before != nil {
		f.before(op)
	}
}

func (f *fakeCartServer) leave() { atomic.AddInt32(&f.inflight, -1) }

func (f *fakeCartServer) record(c cartCall) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeCartServer) Calls() []cartCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]cartCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// cartLocked builds the response the backend would send.
func (f *fakeCartServer) cartLocked() *entity.Cart {
	c := &entity.Cart{ID: "cart-1", UserID: "u1"}
	var total int64
	for _, id := range f.order {
		q, ok := f.qty[id]
		if !ok {
			continue
		}
		d := f.dishes[id]
		c.Items = append(c.Items, entity.CartItem{DishID: id, Dish: &d, Quantity: q})
		total += d.DisplayPrice() * int64(q)
	}
	if f.reportTotal {
		if f.totalOverride != nil {
			total = *f.totalOverride
		}
		c.TotalPrice = &total
	}
	return c
}

func (f *fakeCartServer) setLocked(id string, q int) {
	if q <= 0 {
		delete(f.qty, id)
		for i, o := range f.order {
			if o == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
		return
	}
	if _, ok := f.qty[id]; !ok {
		f.order = append(f.order, id)
	}
	f.qty[id] = q
}

func (f *fakeCartServer) Get(_ context.Context, token string) (*entity.Cart, error) {
	f.enter("get")
	defer f.leave()
	f.record(cartCall{Op: "get", Token: token})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cartLocked(), nil
}

func (f *fakeCartServer) Add(_ context.Context, token, dishID string, quantity int) (*entity.Cart, error) {
	f.enter("add")
	defer f.leave()
	f.record(cartCall{Op: "add", DishID: dishID, Quantity: quantity, Token: token})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.setLocked(dishID, f.qty[dishID]+quantity)
	return f.cartLocked(), nil
}

func (f *fakeCartServer) Edit(_ context.Context, token, dishID string, quantity int) (*entity.Cart, error) {
	f.enter("edit")
	defer f.leave()
	f.record(cartCall{Op: "edit", DishID: dishID, Quantity: quantity, Token: token})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.setLocked(dishID, quantity)
	return f.cartLocked(), nil
}

func (f *fakeCartServer) RemoveItem(_ context.Context, token, dishID string) (*entity.Cart, error) {
	f.enter("remove")
	defer f.leave()
	f.record(cartCall{Op: "remove", DishID: dishID, Token: token})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.setLocked(dishID, 0)
	return f.cartLocked(), nil
}

func (f *fakeCartServer) Clear(_ context.Context, token string) error {
	f.enter("clear")
	defer f.leave()
	f.record(cartCall{Op: "clear", Token: token})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.qty = map[string]int{}
	f.order = nil
	return nil
}

// catalogFake serves tables and discounts.
type catalogFake struct {
	tables    []entity.Table
	discounts []entity.Discount
	err       error
	calls     int32
}

func (c *catalogFake) tableLister() TableBackend       { return tableListFunc(c.listTables) }
func (c *catalogFake) discountLister() DiscountBackend { return discountListFunc(c.listDiscounts) }

func (c *catalogFake) listTables(_ context.Context, _ string) ([]entity.Table, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.tables, c.err
}

func (c *catalogFake) listDiscounts(_ context.Context, _ string) ([]entity.Discount, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.discounts, c.err
}

type tableListFunc func(ctx context.Context, token string) ([]entity.Table, error)

func (f tableListFunc) List(ctx context.Context, token string) ([]entity.Table, error) {
	return f(ctx, token)
}

type discountListFunc func(ctx context.Context, token string) ([]entity.Discount, error)

func (f discountListFunc) List(ctx context.Context, token string) ([]entity.Discount, error) {
	return f(ctx, token)
}

// contactFake records submitted messages.
type contactFake struct {
	mu   sync.Mutex
	sent []api.ContactInput
}

func (c *contactFake) Create(_ context.Context, _ string, in api.ContactInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, in)
	return nil
}
