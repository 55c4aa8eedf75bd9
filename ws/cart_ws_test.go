package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/middlewares"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct{ tok string }

func (s staticTokens) Get(context.Context, string) (string, error) {
	if s.tok == "" {
		return "", repository.ErrSessionNotFound
	}
	return s.tok, nil
}
func (staticTokens) Put(context.Context, string, string, *time.Time) error { return nil }
func (staticTokens) Delete(context.Context, string) error { return nil }

// countingCart answers every call with a cart holding n units of one dish.
type countingCart struct {
	mu   sync.Mutex
	n    int
	gets int
}

func (c *countingCart) cart() *entity.Cart {
	if c.n == 0 {
		return &entity.Cart{ID: "c1"}
	}
	return &entity.Cart{ID: "c1", Items: []entity.CartItem{{DishID: "d1", Dish: &entity.Dish{ID: "d1", Price: 1000}, Quantity: c.n}}}
}

func (c *countingCart) Get(context.Context, string) (*entity.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.cart(), nil
}

func (c *countingCart) Add(_ context.Context, _, _ string, q int) (*entity.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n += q
	return c.cart(), nil
}

func (c *countingCart) Edit(_ context.Context, _, _ string, q int) (*entity.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = q
	return c.cart(), nil
}

func (c *countingCart) RemoveItem(context.Context, string, string) (*entity.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
	return c.cart(), nil
}

func (c *countingCart) Clear(context.Context, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
	return nil
}

func setupHub(t *testing.T) (*CartHub, *services.CartRegistry, *countingCart, string) {
	t.Helper()
	return setupHubWith(t, staticTokens{tok: "opaque"})
}

func setupHubWith(t *testing.T, tokens repository.TokenStore) (*CartHub, *services.CartRegistry, *countingCart, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	backend := &countingCart{}
	carts := services.NewCartRegistry(backend, tokens, nil)
	hub := NewCartHub(carts, nil)
	t.Cleanup(hub.Close)

	r := gin.New()
	r.GET("/ws/cart", middlewares.WSSessionMiddleware(), hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, carts, backend, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart"
}

// readUntil reads views until ok accepts one.
func readUntil(t *testing.T, conn *websocket.Conn, ok func(services.CartView) bool) services.CartView {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var v services.CartView
		require.NoError(t, conn.ReadJSON(&v))
		if ok(v) {
			return v
		}
	}
}

func TestHubPushesCartChanges(t *testing.T) {
	hub, carts, _, url := setupHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?session=s1", nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readUntil(t, conn, func(services.CartView) bool { return true })
	assert.Empty(t, first.Items)
	require.Eventually(t, func() bool { return hub.Connections("s1") == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, carts.For(context.Background(), "s1").AddItem(context.Background(), "d1", 3))
	v := readUntil(t, conn, func(v services.CartView) bool { return v.Count == 3 && !v.Loading })
	assert.Equal(t, services.PriceTotal{Source: services.ClientEstimate, Amount: 3000}, v.Total)
}

func TestHubRefreshCommand(t *testing.T) {
	_, _, backend, url := setupHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?session=s2", nil)
	require.NoError(t, err)
	defer conn.Close()
	readUntil(t, conn, func(services.CartView) bool { return true })

	backend.mu.Lock()
	backend.n = 2
	backend.mu.Unlock()

	require.NoError(t, conn.WriteJSON(Command{Type: "refresh"}))
	v := readUntil(t, conn, func(v services.CartView) bool { return v.Count == 2 })
	assert.Equal(t, "c1", v.CartID)
}

func TestHubForgetsClosedConnections(t *testing.T) {
	hub, carts, _, url := setupHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?session=s3", nil)
	require.NoError(t, err)
	readUntil(t, conn, func(services.CartView) bool { return true })
	require.Equal(t, 1, carts.For(context.Background(), "s3").Observers())

	conn.Close()
	require.Eventually(t, func() bool {
		return hub.Connections("s3") == 0 && carts.For(context.Background(), "s3").Observers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHubReleasesAnonymousSessions(t *testing.T) {
	hub, carts, _, url := setupHubWith(t, staticTokens{})

	conn, _, err := websocket.DefaultDialer.Dial(url+"?session=anon", nil)
	require.NoError(t, err)
	first := readUntil(t, conn, func(services.CartView) bool { return true })
	assert.Empty(t, first.Items)
	require.Equal(t, 1, carts.Len())

	conn.Close()
	require.Eventually(t, func() bool {
		return hub.Connections("anon") == 0 && carts.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHubRequiresSession(t *testing.T) {
	_, _, _, url := setupHub(t)
	_, res, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 401, res.StatusCode)
}
