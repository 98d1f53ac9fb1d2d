package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luxehaven_server/services"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type memoryPersister struct {
	payloads map[string][]byte
}

func (mp *memoryPersister) LoadCart(ctx context.Context, token string) ([]byte, error) {
	return mp.payloads[token], nil
}

func (mp *memoryPersister) SaveCart(ctx context.Context, token string, payload []byte) error {
	mp.payloads[token] = payload
	return nil
}

func testRouter() (chi.Router, *services.CartService) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	cartService := services.NewCartService(logger, &memoryPersister{payloads: make(map[string][]byte)})

	r := chi.NewRouter()
	NewCartRoutesManager(logger, cartService, nil).RegisterRoutes(r)
	return r, cartService
}

func TestFetchCartIssuesToken(t *testing.T) {
	r, _ := testRouter()

	req := httptest.NewRequest("GET", "/cart", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	token := rec.Header().Get(CartTokenHeader)
	if token == "" {
		t.Fatal("expected a cart token to be issued")
	}
	if _, err := uuid.Parse(token); err != nil {
		t.Fatalf("issued token is not a uuid: %q", token)
	}
}

func TestFetchCartEchoesExistingToken(t *testing.T) {
	r, cartService := testRouter()
	token := uuid.NewString()

	product := &tables.Product{ID: uuid.New(), Title: "Midnight Oud", Price: 12500}
	if _, err := cartService.AddToCart(context.Background(), token, product, 2); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set(CartTokenHeader, token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get(CartTokenHeader); got != token {
		t.Fatalf("token not echoed: got %q, want %q", got, token)
	}
	if body := rec.Body.String(); !strings.Contains(body, product.ID.String()) {
		t.Fatalf("response missing cart line for %s:\n%s", product.ID, body)
	}
}

func TestRemoveItemInvalidProductID(t *testing.T) {
	r, _ := testRouter()

	req := httptest.NewRequest("DELETE", "/cart/items/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestClearCartLeavesEmptyCart(t *testing.T) {
	r, cartService := testRouter()
	token := uuid.NewString()

	product := &tables.Product{ID: uuid.New(), Title: "Rose & Pepper", Price: 9000}
	if _, err := cartService.AddToCart(context.Background(), token, product, 1); err != nil {
		t.Fatalf("seed add failed: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/cart", nil)
	req.Header.Set(CartTokenHeader, token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if items := cartService.GetCart(context.Background(), token); len(items) != 0 {
		t.Fatalf("cart not cleared: %+v", items)
	}
}
