package products

import (
	"context"

	"luxehaven_server/services"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type productCatalog interface {
	GetAllProducts(ctx context.Context, opts *services.ProductListOptions) (*services.ProductListResult, error)
	GetProductByID(ctx context.Context, id uuid.UUID, includeImages bool) (*tables.Product, error)
}

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService productCatalog
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService productCatalog,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	// Register product-related routes here
	r.Get("/products", prm.FetchAllProducts)
	r.Get("/products/{id}", prm.FetchProductByID)
}
