package services

import (
	"context"
	"encoding/json"
	"fmt"
	"luxehaven_server/lib"
	"luxehaven_server/structs"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CartPersister stores a cart as one opaque payload under one key. Load
// returns nil when nothing has been persisted for the token yet.
type CartPersister interface {
	LoadCart(ctx context.Context, token string) ([]byte, error)
	SaveCart(ctx context.Context, token string, payload []byte) error
}

// CartService owns the shopping cart: an insertion-order-preserving sequence
// of CartItem with at most one item per distinct product id. Every mutation
// rewrites the full persisted payload synchronously, so the persisted and
// in-memory states never diverge across a sequence of operations.
type CartService struct {
	logger    *gecho.Logger
	persister CartPersister
}

func NewCartService(logger *gecho.Logger, persister CartPersister) *CartService {
	return &CartService{
		logger:    logger,
		persister: persister,
	}
}

// GetCart loads the cart for a token. A missing or corrupt persisted value
// yields an empty cart; corruption is logged, never surfaced.
func (cs *CartService) GetCart(ctx context.Context, token string) []structs.CartItem {
	payload, err := cs.persister.LoadCart(ctx, token)
	if err != nil {
		cs.logger.Warn("Failed to load persisted cart, starting empty",
			gecho.Field("error", err),
			gecho.Field("token", token),
		)
		return []structs.CartItem{}
	}

	if payload == nil {
		return []structs.CartItem{}
	}

	var items []structs.CartItem
	if err := json.Unmarshal(payload, &items); err != nil {
		cs.logger.Warn("Persisted cart is corrupt, resetting to empty",
			gecho.Field("error", err),
			gecho.Field("token", token),
		)
		return []structs.CartItem{}
	}

	if items == nil {
		items = []structs.CartItem{}
	}

	// Persisted lines must keep quantity >= 1; drop any that do not, or the
	// unsigned total arithmetic would wrap.
	kept := items[:0]
	for _, item := range items {
		if item.Quantity < 1 {
			cs.logger.Warn("Dropping persisted cart line with invalid quantity",
				gecho.Field("token", token),
				gecho.Field("product_id", item.ProductID),
				gecho.Field("quantity", item.Quantity),
			)
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// AddToCart merges a product into the cart: an existing line for the product
// has its quantity incremented, otherwise a new line is appended with a
// denormalized snapshot of the product taken now. Quantities below 1 are
// rejected.
func (cs *CartService) AddToCart(ctx context.Context, token string, product *tables.Product, quantity int) ([]structs.CartItem, error) {
	if quantity < 1 {
		return nil, lib.ErrInvalidQuantity
	}

	items := cs.GetCart(ctx, token)

	merged := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		items = append(items, structs.CartItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Quantity:  quantity,
			Product: &structs.ProductSnapshot{
				ID:       product.ID,
				Title:    product.Title,
				Price:    product.Price,
				ImageURL: lib.PrimaryImageURL(product.Images, product.ImageURL),
			},
		})
	}

	if err := cs.persist(ctx, token, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart removes the line for a product. Removing an absent product
// is a no-op, not an error.
func (cs *CartService) RemoveFromCart(ctx context.Context, token string, productID uuid.UUID) ([]structs.CartItem, error) {
	items := cs.GetCart(ctx, token)

	filtered := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}

	if err := cs.persist(ctx, token, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// UpdateQuantity sets the absolute quantity for a product's line. A quantity
// of zero or less removes the line. Updating an absent product is a no-op.
func (cs *CartService) UpdateQuantity(ctx context.Context, token string, productID uuid.UUID, quantity int) ([]structs.CartItem, error) {
	if quantity <= 0 {
		return cs.RemoveFromCart(ctx, token, productID)
	}

	items := cs.GetCart(ctx, token)

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	if err := cs.persist(ctx, token, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ClearCart empties the cart. The storage key remains, holding an empty
// sequence.
func (cs *CartService) ClearCart(ctx context.Context, token string) error {
	return cs.persist(ctx, token, []structs.CartItem{})
}

// persist rewrites the whole cart payload
func (cs *CartService) persist(ctx context.Context, token string, items []structs.CartItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := cs.persister.SaveCart(ctx, token, payload); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// TotalItems is the sum of all line quantities
func TotalItems(items []structs.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of quantity x snapshot price over all lines. A line
// without a product snapshot contributes zero.
func TotalPrice(items []structs.CartItem) uint64 {
	var total uint64
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += uint64(item.Quantity) * item.Product.Price
	}
	return total
}
