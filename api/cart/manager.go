package cart

import (
	"luxehaven_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CartTokenHeader carries the opaque cart token the client stores locally.
// The server issues one on the first mutation and echoes it on every reply.
const CartTokenHeader = "X-Cart-Token"

type CartRoutesManager struct {
	logger         *gecho.Logger
	cartService    *services.CartService
	productService *services.ProductService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	productService *services.ProductService,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:         logger,
		cartService:    cartService,
		productService: productService,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/cart", crm.FetchCart)
	r.Post("/cart/items", crm.AddItem)
	r.Patch("/cart/items/{productId}", crm.UpdateItem)
	r.Delete("/cart/items/{productId}", crm.RemoveItem)
	r.Delete("/cart", crm.ClearCart)
}
