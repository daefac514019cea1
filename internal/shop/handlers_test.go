package shop

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(log).Routes())
	t.Cleanup(ts.Close)
	return ts
}

// cookieClient returns a client with a cookie jar so session state carries
// across requests, following redirects like a browser would.
func cookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, url string) string {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRoutes_PageStatuses(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path     string
		expected int
	}{
		{"/", http.StatusOK},
		{"/products/", http.StatusOK},
		{"/product/1/", http.StatusOK},
		{"/cart/", http.StatusOK},
		{"/wishlist/", http.StatusOK},
		{"/product/999/", http.StatusNotFound},
		{"/product/abc/", http.StatusNotFound},
		{"/thank-you/999/", http.StatusNotFound},
		{"/thank-you/abc/", http.StatusNotFound},
		{"/no-such-page/", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}

func TestCartBadge_OnEveryPage(t *testing.T) {
	ts := newTestServer(t)
	client := cookieClient(t)

	// Fresh session: every page shows a zero cart badge.
	body := get(t, client, ts.URL+"/products/")
	assert.Contains(t, body, "Cart (0)")

	// Two of product 1, one of product 2.
	get(t, client, ts.URL+"/add-to-cart/1/")
	get(t, client, ts.URL+"/add-to-cart/1/")
	get(t, client, ts.URL+"/add-to-cart/2/")

	for _, path := range []string{"/", "/products/", "/product/1/", "/cart/", "/wishlist/"} {
		body := get(t, client, ts.URL+path)
		assert.Contains(t, body, "Cart (3)", "page %s must show the cart badge", path)
	}
}

func TestCart_AddRemoveClear(t *testing.T) {
	ts := newTestServer(t)
	client := cookieClient(t)

	get(t, client, ts.URL+"/add-to-cart/1/")
	get(t, client, ts.URL+"/add-to-cart/2/")
	body := get(t, client, ts.URL+"/cart/")
	assert.Contains(t, body, "Laptop Pro 15")
	assert.Contains(t, body, "Mechanical Keyboard")

	get(t, client, ts.URL+"/remove-from-cart/1/")
	body = get(t, client, ts.URL+"/cart/")
	assert.NotContains(t, body, "Laptop Pro 15")
	assert.Contains(t, body, "Cart (1)")

	get(t, client, ts.URL+"/clear-cart/")
	body = get(t, client, ts.URL+"/cart/")
	assert.Contains(t, body, "Your cart is empty")
	assert.Contains(t, body, "Cart (0)")
}

func TestCart_AddUnknownProduct(t *testing.T) {
	ts := newTestServer(t)
	client := cookieClient(t)

	resp, err := client.Get(ts.URL + "/add-to-cart/999/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := get(t, client, ts.URL+"/cart/")
	assert.Contains(t, body, "Cart (0)")
}

func TestWishlist_AddRemove(t *testing.T) {
	ts := newTestServer(t)
	client := cookieClient(t)

	get(t, client, ts.URL+"/add-to-wishlist/3/")
	body := get(t, client, ts.URL+"/wishlist/")
	assert.Contains(t, body, "4K Monitor 27")

	// Wishlist entries do not count toward the cart badge.
	assert.Contains(t, body, "Cart (0)")

	get(t, client, ts.URL+"/remove-from-wishlist/3/")
	body = get(t, client, ts.URL+"/wishlist/")
	assert.Contains(t, body, "Your wishlist is empty")
}

func TestCheckout_Flow(t *testing.T) {
	ts := newTestServer(t)
	client := cookieClient(t)

	get(t, client, ts.URL+"/add-to-cart/2/")
	get(t, client, ts.URL+"/add-to-cart/2/")

	body := get(t, client, ts.URL+"/checkout/")
	assert.Contains(t, body, "Mechanical Keyboard")
	assert.Contains(t, body, "$258.00")

	resp, err := client.Post(ts.URL+"/checkout/", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	confirmation := string(raw)
	assert.Contains(t, confirmation, "Your order #1 has been placed")
	assert.Contains(t, confirmation, "$258.00")

	// Checkout cleared the cart.
	body = get(t, client, ts.URL+"/cart/")
	assert.Contains(t, body, "Cart (0)")
}

func TestCheckout_EmptyCartRedirects(t *testing.T) {
	ts := newTestServer(t)
	client := cookieClient(t)

	resp, err := client.Get(ts.URL + "/checkout/")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Following redirects, an empty-cart checkout lands on the cart page.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Your cart is empty")
}
