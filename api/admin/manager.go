package admin

import (
	"luxehaven_server/api/middleware"
	"luxehaven_server/services"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger          *gecho.Logger
	productService  *services.ProductService
	catalogService  *services.CatalogService
	trendingService *services.TrendingService
	storageService  *services.StorageService
	cfg             *structs.Config
	mw              *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	catalogService *services.CatalogService,
	trendingService *services.TrendingService,
	storageService *services.StorageService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:          logger,
		productService:  productService,
		catalogService:  catalogService,
		trendingService: trendingService,
		storageService:  storageService,
		cfg:             cfg,
		mw:              mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.AdminAuthMiddleware)

		// Product management
		r.Post("/products", arm.CreateProduct)
		r.Put("/products/{id}", arm.UpdateProduct)
		r.Delete("/products/{id}", arm.DeleteProduct)
		r.Post("/products/images", arm.UploadProductImage)

		// Brand management
		r.Post("/brands", arm.CreateBrand)
		r.Put("/brands/{id}", arm.UpdateBrand)
		r.Delete("/brands/{id}", arm.DeleteBrand)

		// Category management
		r.Post("/categories", arm.CreateCategory)
		r.Put("/categories/{id}", arm.UpdateCategory)
		r.Delete("/categories/{id}", arm.DeleteCategory)

		// Trending list management
		r.Get("/trending", arm.ListTrending)
		r.Post("/trending", arm.AddTrending)
		r.Patch("/trending/{id}/active", arm.SetTrendingActive)
		r.Post("/trending/{id}/reorder", arm.ReorderTrending)
		r.Delete("/trending/{id}", arm.DeleteTrending)
	})
}
