package services

import (
	"luxehaven_server/database"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
	ProductService  *ProductService
	CatalogService  *CatalogService
	TrendingService *TrendingService
	CartService     *CartService
	OrderService    *OrderService
	StorageService  *StorageService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger, db)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, db, cacheService)
	catalogService := NewCatalogService(logger, db)
	trendingService := NewTrendingService(logger, db, cacheService)
	cartService := NewCartService(logger, cacheService)
	orderService := NewOrderService(logger, cfg)
	storageService := NewStorageService(logger, NewDiskFileStore(cfg.Storage))

	return &ServiceManager{
		AuthService:     authService,
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
		ProductService:  productService,
		CatalogService:  catalogService,
		TrendingService: trendingService,
		CartService:     cartService,
		OrderService:    orderService,
		StorageService:  storageService,
	}
}
