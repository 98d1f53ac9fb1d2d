package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"luxehaven_server/lib"
	"luxehaven_server/structs"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// memoryPersister keeps cart payloads in a map, standing in for Redis
type memoryPersister struct {
	payloads map[string][]byte
	loadErr  error
	saveErr  error
}

func newMemoryPersister() *memoryPersister {
	return &memoryPersister{payloads: make(map[string][]byte)}
}

func (mp *memoryPersister) LoadCart(ctx context.Context, token string) ([]byte, error) {
	if mp.loadErr != nil {
		return nil, mp.loadErr
	}
	payload, ok := mp.payloads[token]
	if !ok {
		return nil, nil
	}
	return payload, nil
}

func (mp *memoryPersister) SaveCart(ctx context.Context, token string, payload []byte) error {
	if mp.saveErr != nil {
		return mp.saveErr
	}
	mp.payloads[token] = payload
	return nil
}

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
}

func testProduct(title string, price uint64) *tables.Product {
	return &tables.Product{
		ID:       uuid.New(),
		Title:    title,
		Price:    price,
		ImageURL: "https://cdn.example.com/" + title + ".jpg",
	}
}

func TestGetCartUnknownTokenIsEmpty(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())

	items := cs.GetCart(context.Background(), "nobody")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestGetCartCorruptPayloadResetsToEmpty(t *testing.T) {
	mp := newMemoryPersister()
	mp.payloads["tok"] = []byte("{not json")
	cs := NewCartService(testLogger(), mp)

	items := cs.GetCart(context.Background(), "tok")
	if len(items) != 0 {
		t.Fatalf("expected corrupt cart to read as empty, got %d items", len(items))
	}
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	product := testProduct("noir", 8500)

	for _, qty := range []int{0, -1, -100} {
		if _, err := cs.AddToCart(context.Background(), "tok", product, qty); !errors.Is(err, lib.ErrInvalidQuantity) {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()
	product := testProduct("oud", 12000)

	items, err := cs.AddToCart(ctx, "tok", product, 2)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", items)
	}
	lineID := items[0].ID

	items, err = cs.AddToCart(ctx, "tok", product, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected merge into one line, got %d lines", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", items[0].Quantity)
	}
	if items[0].ID != lineID {
		t.Fatalf("merge must keep the existing line, id changed %s -> %s", lineID, items[0].ID)
	}
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	product := testProduct("iris", 9900)

	items, err := cs.AddToCart(context.Background(), "tok", product, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	snap := items[0].Product
	if snap == nil {
		t.Fatal("expected a product snapshot on the cart line")
	}
	if snap.ID != product.ID || snap.Title != product.Title || snap.Price != product.Price {
		t.Fatalf("snapshot does not match product: %+v", snap)
	}
	if snap.ImageURL != product.ImageURL {
		t.Fatalf("expected snapshot image %q, got %q", product.ImageURL, snap.ImageURL)
	}
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()
	keep := testProduct("keep", 100)
	drop := testProduct("drop", 200)

	if _, err := cs.AddToCart(ctx, "tok", keep, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cs.AddToCart(ctx, "tok", drop, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := cs.RemoveFromCart(ctx, "tok", drop.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != keep.ID {
		t.Fatalf("expected only the kept line, got %+v", items)
	}

	// Removing again must not change anything or error
	items, err = cs.RemoveFromCart(ctx, "tok", drop.ID)
	if err != nil {
		t.Fatalf("repeat remove failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != keep.ID {
		t.Fatalf("repeat remove changed the cart: %+v", items)
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()
	product := testProduct("amber", 4500)

	if _, err := cs.AddToCart(ctx, "tok", product, 5); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := cs.UpdateQuantity(ctx, "tok", product.ID, 2)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected absolute quantity 2, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()
	product := testProduct("musk", 7000)

	if _, err := cs.AddToCart(ctx, "tok", product, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	for _, qty := range []int{0, -4} {
		items, err := cs.UpdateQuantity(ctx, "tok", product.ID, qty)
		if err != nil {
			t.Fatalf("update to %d failed: %v", qty, err)
		}
		if len(items) != 0 {
			t.Fatalf("expected quantity %d to remove the line, got %+v", qty, items)
		}
	}
}

func TestUpdateQuantityAbsentProductIsNoOp(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()
	product := testProduct("vetiver", 3000)

	if _, err := cs.AddToCart(ctx, "tok", product, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := cs.UpdateQuantity(ctx, "tok", uuid.New(), 9)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected cart unchanged, got %+v", items)
	}
}

func TestClearCartEmptiesEverything(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()

	if _, err := cs.AddToCart(ctx, "tok", testProduct("a", 1), 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cs.AddToCart(ctx, "tok", testProduct("b", 2), 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := cs.ClearCart(ctx, "tok"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if items := cs.GetCart(ctx, "tok"); len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
}

func TestCartSurvivesServiceRestart(t *testing.T) {
	mp := newMemoryPersister()
	ctx := context.Background()
	product := testProduct("santal", 15000)

	first := NewCartService(testLogger(), mp)
	if _, err := first.AddToCart(ctx, "tok", product, 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// A fresh service over the same persister sees the identical cart
	second := NewCartService(testLogger(), mp)
	items := second.GetCart(ctx, "tok")
	if len(items) != 1 || items[0].ProductID != product.ID || items[0].Quantity != 4 {
		t.Fatalf("cart did not round-trip through persistence: %+v", items)
	}
}

func TestCartsAreIsolatedPerToken(t *testing.T) {
	cs := NewCartService(testLogger(), newMemoryPersister())
	ctx := context.Background()

	if _, err := cs.AddToCart(ctx, "alice", testProduct("x", 10), 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if items := cs.GetCart(ctx, "bob"); len(items) != 0 {
		t.Fatalf("expected bob's cart to be empty, got %+v", items)
	}
}

func TestTotals(t *testing.T) {
	items := []structs.CartItem{
		{Quantity: 2, Product: &structs.ProductSnapshot{Price: 1000}},
		{Quantity: 3, Product: &structs.ProductSnapshot{Price: 250}},
		{Quantity: 4, Product: nil}, // snapshotless line counts items but no price
	}

	if got := TotalItems(items); got != 9 {
		t.Fatalf("TotalItems = %d, want 9", got)
	}
	if got := TotalPrice(items); got != 2750 {
		t.Fatalf("TotalPrice = %d, want 2750", got)
	}

	if got := TotalItems(nil); got != 0 {
		t.Fatalf("TotalItems(nil) = %d, want 0", got)
	}
	if got := TotalPrice(nil); got != 0 {
		t.Fatalf("TotalPrice(nil) = %d, want 0", got)
	}
}

func TestGetCartDropsNonPositivePersistedQuantities(t *testing.T) {
	mp := newMemoryPersister()
	cs := NewCartService(testLogger(), mp)
	token := uuid.NewString()

	good := uuid.New()
	lines := []structs.CartItem{
		{ID: uuid.NewString(), ProductID: uuid.New(), Quantity: -3, Product: &structs.ProductSnapshot{ID: uuid.New(), Title: "Smoke", Price: 9000}},
		{ID: uuid.NewString(), ProductID: good, Quantity: 2, Product: &structs.ProductSnapshot{ID: good, Title: "Amber Noir", Price: 1500}},
		{ID: uuid.NewString(), ProductID: uuid.New(), Quantity: 0, Product: &structs.ProductSnapshot{ID: uuid.New(), Title: "Vetiver", Price: 4000}},
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		t.Fatalf("marshal seed payload: %v", err)
	}
	mp.payloads[token] = payload

	items := cs.GetCart(context.Background(), token)
	if len(items) != 1 {
		t.Fatalf("got %d lines, want 1: %+v", len(items), items)
	}
	if items[0].ProductID != good {
		t.Fatalf("kept line %s, want %s", items[0].ProductID, good)
	}

	// The negative line must not wrap into the unsigned total
	if got := TotalPrice(items); got != 3000 {
		t.Fatalf("TotalPrice = %d, want 3000", got)
	}
	if got := TotalItems(items); got != 2 {
		t.Fatalf("TotalItems = %d, want 2", got)
	}
}
