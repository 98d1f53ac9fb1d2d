package api

import (
	"luxehaven_server/api/admin"
	"luxehaven_server/api/auth"
	"luxehaven_server/api/brands"
	"luxehaven_server/api/cart"
	"luxehaven_server/api/categories"
	"luxehaven_server/api/contact"
	"luxehaven_server/api/health"
	"luxehaven_server/api/middleware"
	"luxehaven_server/api/orders"
	"luxehaven_server/api/products"
	"luxehaven_server/api/trending"
	"luxehaven_server/database"
	"luxehaven_server/services"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	trendingRoutes *trending.TrendingRoutesManager
	brandRoutes    *brands.BrandRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	cartRoutes     *cart.CartRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	contactRoutes  *contact.ContactRoutesManager
	authRoutes     *auth.AuthRoutesManager
	adminRoutes    *admin.AdminRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	mw *middleware.Middleware,
	sm *services.ServiceManager,
) *routerManager {
	return &routerManager{
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService),
		trendingRoutes: trending.NewTrendingRoutesManager(logger, sm.TrendingService),
		brandRoutes:    brands.NewBrandRoutesManager(logger, sm.CatalogService),
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CatalogService),
		cartRoutes:     cart.NewCartRoutesManager(logger, sm.CartService, sm.ProductService),
		orderRoutes:    orders.NewOrderRoutesManager(logger, sm.OrderService, sm.ProductService),
		contactRoutes:  contact.NewContactRoutesManager(logger, sm.EmailService),
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService),
		adminRoutes:    admin.NewAdminRoutesManager(logger, sm.ProductService, sm.CatalogService, sm.TrendingService, sm.StorageService, cfg, mw),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.trendingRoutes.RegisterRoutes(r)
	rm.brandRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.contactRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
