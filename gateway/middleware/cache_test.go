package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCacheTestApp wires the cache middleware in front of a fake cart
// backend whose GET response changes when the POST handler runs.
func newCacheTestApp(t *testing.T) (*fiber.App, *int) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	reads := 0
	cartBody := `{"total_items":0}`

	app := fiber.New()
	app.Use(CacheMiddleware(client, DefaultCacheConfig()))
	app.Get("/api/cart", func(c *fiber.Ctx) error {
		reads++
		c.Set("Content-Type", "application/json")
		return c.SendString(cartBody)
	})
	app.Post("/api/cart/items", func(c *fiber.Ctx) error {
		cartBody = `{"total_items":1}`
		c.Set("Content-Type", "application/json")
		return c.SendString(cartBody)
	})
	return app, &reads
}

func getCart(t *testing.T, app *fiber.App, session string) string {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/api/cart", nil)
	req.Header.Set("X-Session-Id", session)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCartMutationInvalidatesTheSessionCache(t *testing.T) {
	app, reads := newCacheTestApp(t)

	assert.Contains(t, getCart(t, app, "s"), `"total_items":0`)
	assert.Contains(t, getCart(t, app, "s"), `"total_items":0`)
	assert.Equal(t, 1, *reads, "second read should be served from the cache")

	req := httptest.NewRequest(fiber.MethodPost, "/api/cart/items", nil)
	req.Header.Set("X-Session-Id", "s")
	_, err := app.Test(req, 5000)
	require.NoError(t, err)

	// The mutation dropped the cached entry; the next read sees the new cart
	assert.Contains(t, getCart(t, app, "s"), `"total_items":1`)
	assert.Equal(t, 2, *reads)
}

func TestSessionsDoNotShareCachedResponses(t *testing.T) {
	app, reads := newCacheTestApp(t)

	getCart(t, app, "alice")
	assert.Equal(t, 1, *reads)

	getCart(t, app, "bob")
	assert.Equal(t, 2, *reads, "a different session must not hit alice's cache entry")
}

func TestCacheHitSetsHeader(t *testing.T) {
	app, _ := newCacheTestApp(t)

	getCart(t, app, "s")

	req := httptest.NewRequest(fiber.MethodGet, "/api/cart", nil)
	req.Header.Set("X-Session-Id", "s")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
}
