package orders

import (
	"luxehaven_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger         *gecho.Logger
	orderService   *services.OrderService
	productService *services.ProductService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	productService *services.ProductService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:         logger,
		orderService:   orderService,
		productService: productService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/orders/whatsapp", orm.BuildWhatsAppOrder)
}
