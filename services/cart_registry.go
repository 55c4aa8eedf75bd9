package services

import (
	"context"
	"sync"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"go.uber.org/zap"
)

// CartRegistry owns one CartManager per UI session. Controllers and the
// websocket hub get it injected instead of reaching for a global.
//
// Only sessions holding a usable credential or an attached observer keep a
// manager; anonymous requests are served by a throwaway one.
type CartRegistry struct {
	backend CartBackend
	tokens  repository.TokenStore
	log     *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	managers map[string]*CartManager
}

func NewCartRegistry(backend CartBackend, tokens repository.TokenStore, log *zap.Logger) *CartRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartRegistry{
		backend:  backend,
		tokens:   tokens,
		log:      log,
		now:      time.Now,
		managers: make(map[string]*CartManager),
	}
}

// For returns the session's manager. A session without a usable credential
// and without a kept manager gets a fresh one that is not stored.
func (r *CartRegistry) For(ctx context.Context, sessionID string) *CartManager {
	return r.get(ctx, sessionID, false)
}

func (r *CartRegistry) get(ctx context.Context, sessionID string, keep bool) *CartManager {
	r.mu.Lock()
	m, ok := r.managers[sessionID]
	r.mu.Unlock()
	if ok {
		return m
	}
	if !keep && credential(ctx, r.tokens, sessionID, r.now(), r.log) == "" {
		return NewCartManager(sessionID, r.backend, r.tokens, r.log)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.managers[sessionID]; ok {
		return m
	}
	m = NewCartManager(sessionID, r.backend, r.tokens, r.log)
	r.managers[sessionID] = m
	return m
}

// Subscribe attaches an observer to the session's kept manager. The
// subscription is taken under the registry lock so Drop cannot forget the
// manager in between.
func (r *CartRegistry) Subscribe(ctx context.Context, sessionID string) (*CartManager, <-chan CartView) {
	for {
		m := r.get(ctx, sessionID, true)
		r.mu.Lock()
		if r.managers[sessionID] == m {
			views := m.Subscribe(ctx)
			r.mu.Unlock()
			return m, views
		}
		r.mu.Unlock()
	}
}

// Release forgets an unobserved manager whose session has no usable
// credential. Observers call it once their subscription has ended.
func (r *CartRegistry) Release(ctx context.Context, sessionID string) {
	if credential(ctx, r.tokens, sessionID, r.now(), r.log) != "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.managers[sessionID]; ok && m.Observers() == 0 {
		delete(r.managers, sessionID)
	}
}

// Drop resets the session's manager. It is forgotten unless observers are
// still attached; those receive the empty view and keep following it.
func (r *CartRegistry) Drop(sessionID string) {
	r.mu.Lock()
	m, ok := r.managers[sessionID]
	if ok && m.Observers() == 0 {
		delete(r.managers, sessionID)
	}
	r.mu.Unlock()
	if ok {
		m.Reset()
	}
}

func (r *CartRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}
