package rest_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	cartapp "github.com/strideshop/storefront/internal/cart/app"
	"github.com/strideshop/storefront/internal/cart/infra/memory"
	catalogapp "github.com/strideshop/storefront/internal/catalog/app"
	"github.com/strideshop/storefront/internal/catalog/infra/static"
	checkoutapp "github.com/strideshop/storefront/internal/checkout/app"
	orderapp "github.com/strideshop/storefront/internal/order/app"
	"github.com/strideshop/storefront/internal/rest"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogSvc := catalogapp.NewService(static.NewRepo())
	cartSvc := cartapp.NewService(memory.NewStore())
	checkoutSvc := checkoutapp.NewService(cartSvc, catalogSvc, 4)
	orderSvc := orderapp.NewService(checkoutSvc, cartSvc, log, 10*time.Millisecond)

	h := rest.NewHandler(catalogSvc, cartSvc, checkoutSvc, orderSvc, log)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return srv, &http.Client{Jar: jar}
}

func do(t *testing.T, client *http.Client, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}

func TestProductListing(t *testing.T) {
	srv, client := newTestServer(t)

	t.Run("all products", func(t *testing.T) {
		status, body := do(t, client, http.MethodGet, srv.URL+"/api/products", nil)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if got := body["total"].(float64); got != 8 {
			t.Fatalf("expected 8 products, got %v", got)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		status, body := do(t, client, http.MethodGet, srv.URL+"/api/products?category=sneakers", nil)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if got := body["total"].(float64); got != 3 {
			t.Fatalf("expected 3 sneakers, got %v", got)
		}
	})

	t.Run("price sort", func(t *testing.T) {
		status, body := do(t, client, http.MethodGet, srv.URL+"/api/products?sort=price-low", nil)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		products := body["products"].([]any)
		first := products[0].(map[string]any)
		if first["price"] != "49.99" {
			t.Fatalf("expected cheapest first, got %v", first["price"])
		}
	})

	t.Run("bad sort rejected", func(t *testing.T) {
		status, _ := do(t, client, http.MethodGet, srv.URL+"/api/products?sort=alphabetical", nil)
		if status != http.StatusBadRequest {
			t.Fatalf("status %d", status)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		status, _ := do(t, client, http.MethodGet, srv.URL+"/api/products/999", nil)
		if status != http.StatusNotFound {
			t.Fatalf("status %d", status)
		}
	})
}

func TestCartFlow(t *testing.T) {
	srv, client := newTestServer(t)

	add := map[string]any{"product_id": "1", "size": 9, "color": "white", "quantity": 1}

	t.Run("add resolves product details", func(t *testing.T) {
		status, body := do(t, client, http.MethodPost, srv.URL+"/api/cart/items", add)
		if status != http.StatusOK {
			t.Fatalf("status %d: %v", status, body)
		}
		items := body["items"].([]any)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		item := items[0].(map[string]any)
		if item["name"] != "Classic White Sneakers" || item["unit_price"] != "89.99" {
			t.Fatalf("product not resolved: %v", item)
		}
	})

	t.Run("repeat add merges", func(t *testing.T) {
		status, body := do(t, client, http.MethodPost, srv.URL+"/api/cart/items", add)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if got := body["count"].(float64); got != 2 {
			t.Fatalf("expected count 2, got %v", got)
		}
		if len(body["items"].([]any)) != 1 {
			t.Fatal("expected merged line")
		}
	})

	t.Run("different size is a new line", func(t *testing.T) {
		other := map[string]any{"product_id": "1", "size": 10, "color": "white", "quantity": 1}
		status, body := do(t, client, http.MethodPost, srv.URL+"/api/cart/items", other)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if len(body["items"].([]any)) != 2 {
			t.Fatal("expected a second line")
		}
	})

	t.Run("missing size rejected at the boundary", func(t *testing.T) {
		bad := map[string]any{"product_id": "1", "color": "white"}
		status, _ := do(t, client, http.MethodPost, srv.URL+"/api/cart/items", bad)
		if status != http.StatusBadRequest {
			t.Fatalf("status %d", status)
		}
	})

	t.Run("patch to zero removes", func(t *testing.T) {
		patch := map[string]any{"product_id": "1", "size": 10, "color": "white", "quantity": 0}
		status, body := do(t, client, http.MethodPatch, srv.URL+"/api/cart/items", patch)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if len(body["items"].([]any)) != 1 {
			t.Fatal("expected line removed")
		}
	})

	t.Run("clear empties", func(t *testing.T) {
		status, body := do(t, client, http.MethodDelete, srv.URL+"/api/cart", nil)
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if got := body["count"].(float64); got != 0 {
			t.Fatalf("expected count 0, got %v", got)
		}
	})
}

func TestCheckoutAndOrderFlow(t *testing.T) {
	srv, client := newTestServer(t)

	t.Run("quote on empty cart conflicts", func(t *testing.T) {
		status, _ := do(t, client, http.MethodPost, srv.URL+"/api/checkout/quote", map[string]any{})
		if status != http.StatusConflict {
			t.Fatalf("status %d", status)
		}
	})

	// 2 x 49.99 slides + 1 x 89.99 sneakers => subtotal 189.97, free standard shipping.
	do(t, client, http.MethodPost, srv.URL+"/api/cart/items", map[string]any{
		"product_id": "2", "size": 8, "color": "brown", "quantity": 2,
	})
	do(t, client, http.MethodPost, srv.URL+"/api/cart/items", map[string]any{
		"product_id": "1", "size": 9, "color": "white", "quantity": 1,
	})

	t.Run("standard quote ships free over threshold", func(t *testing.T) {
		status, body := do(t, client, http.MethodPost, srv.URL+"/api/checkout/quote",
			map[string]any{"delivery_method": "standard"})
		if status != http.StatusOK {
			t.Fatalf("status %d: %v", status, body)
		}
		quote := body["quote"].(map[string]any)
		if quote["subtotal"] != "189.97" || quote["shipping"] != "0.00" || quote["total"] != "189.97" {
			t.Fatalf("unexpected quote: %v", quote)
		}
		if quote["free_shipping"] != true {
			t.Fatal("expected free shipping flag")
		}
	})

	t.Run("express quote pays flat rate", func(t *testing.T) {
		status, body := do(t, client, http.MethodPost, srv.URL+"/api/checkout/quote",
			map[string]any{"delivery_method": "express"})
		if status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		quote := body["quote"].(map[string]any)
		if quote["shipping"] != "20.00" || quote["total"] != "209.97" {
			t.Fatalf("unexpected quote: %v", quote)
		}
	})

	var orderNumber string
	t.Run("place order", func(t *testing.T) {
		status, body := do(t, client, http.MethodPost, srv.URL+"/api/orders", map[string]any{
			"first_name": "Ama", "last_name": "Mensah", "email": "ama@example.com",
			"delivery_method": "standard", "payment_method": "mobile",
		})
		if status != http.StatusCreated {
			t.Fatalf("status %d: %v", status, body)
		}
		order := body["order"].(map[string]any)
		orderNumber = order["number"].(string)
		if len(orderNumber) != 8 {
			t.Fatalf("unexpected order number %q", orderNumber)
		}
		if order["total"] != "189.97" {
			t.Fatalf("unexpected total: %v", order["total"])
		}
	})

	t.Run("confirmation reads cart during the grace window then finds it cleared", func(t *testing.T) {
		_, body := do(t, client, http.MethodGet, srv.URL+"/api/orders/"+orderNumber, nil)
		order := body["order"].(map[string]any)
		if len(order["items"].([]any)) != 2 {
			t.Fatal("confirmation lost the order lines")
		}

		// The grace window in this harness is 10ms; after it the cart is empty.
		deadline := time.After(time.Second)
		for {
			_, cart := do(t, client, http.MethodGet, srv.URL+"/api/cart", nil)
			if cart["count"].(float64) == 0 {
				break
			}
			select {
			case <-deadline:
				t.Fatal("cart never cleared after the grace window")
			case <-time.After(5 * time.Millisecond):
			}
		}
	})
}
