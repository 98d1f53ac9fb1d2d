package services

import (
	"context"
	"fmt"
	"luxehaven_server/database"
	"luxehaven_server/lib"
	"luxehaven_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	SearchTerm string     `json:"search_term,omitempty"` // Search in title, description, brand, category
	BrandID    *uuid.UUID `json:"brand_id,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	InStock    *bool      `json:"in_stock,omitempty"`
	MinPrice   *uint64    `json:"min_price,omitempty"`
	MaxPrice   *uint64    `json:"max_price,omitempty"`

	// Sorting
	SortBy        string `json:"sort_by"`        // Field to sort by (created_at, price, title, rating)
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Relations
	IncludeImages bool `json:"include_images"` // Preload product images

	// Performance
	Timeout time.Duration `json:"-"` // Query timeout (not exposed in JSON)
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	Filters    ProductListOptions  `json:"filters"`
	QueryTime  time.Duration       `json:"query_time"`
}

// GetAllProducts retrieves products with comprehensive filtering, pagination, and error handling
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		ps.logger.Error("Invalid product list options", gecho.Field("error", err), gecho.Field("options", opts))
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](ps.db).
		Relation("Brand").
		Relation("Category")

	query = ps.applyFilters(query, opts)
	query = ps.applySorting(query, opts)

	if opts.IncludeImages {
		query = query.Relation("Images")
	}

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(result.Data)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("page", result.Pagination.Page),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		Filters:    *opts,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetProductByID retrieves a single product by ID with optional image preloading.
// Returns nil when the product does not exist.
func (ps *ProductService) GetProductByID(ctx context.Context, id uuid.UUID, includeImages bool) (*tables.Product, error) {
	startTime := time.Now()

	// Try to get from cache first
	cachedProduct, err := ps.cacheService.GetProductByID(id.String(), includeImages)
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cachedProduct != nil {
		ps.logger.Debug("Product retrieved from cache", gecho.Field("id", id), gecho.Field("duration", time.Since(startTime)))
		return cachedProduct, nil
	}

	// Cache miss - fetch from database
	query := database.Query[tables.Product](ps.db).
		Where("id", id).
		Relation("Brand").
		Relation("Category").
		Timeout(5 * time.Second)

	if includeImages {
		query = query.Relation("Images")
	}

	product, err := query.First(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch product by ID",
			gecho.Field("id", id),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if product == nil {
		ps.logger.Warn("Product not found", gecho.Field("id", id))
		return nil, nil
	}

	// Cache the product asynchronously
	go func() {
		if err := ps.cacheService.SetProductByID(product, includeImages); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
		}
	}()

	return product, nil
}

// CreateProduct inserts a product and its image set in one transaction, so a
// failed image insert never leaves an imageless product behind.
func (ps *ProductService) CreateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	images := normalizeImageSet(product.ID, product.Images)
	product.Images = nil

	err := database.Transaction(ps.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(product).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}

		if len(images) > 0 {
			if _, err := tx.NewInsert().Model(&images).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert product images: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	product.Images = images
	return product, nil
}

// UpdateProduct saves product fields and replaces its whole image set in one
// transaction (delete then reinsert, matching how the admin panel edits the
// gallery as a unit).
func (ps *ProductService) UpdateProduct(ctx context.Context, product *tables.Product) (*tables.Product, error) {
	product.UpdatedAt = time.Now()

	images := normalizeImageSet(product.ID, product.Images)
	product.Images = nil

	err := database.Transaction(ps.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().Model(product).WherePK().Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("product %s: %w", product.ID, lib.ErrNotFound)
		}

		if _, err := tx.NewDelete().Model((*tables.ProductImage)(nil)).
			Where("product_id = ?", product.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear product images: %w", err)
		}

		if len(images) > 0 {
			if _, err := tx.NewInsert().Model(&images).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert product images: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := ps.cacheService.InvalidateProductCaches(product.ID); err != nil {
		ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err), gecho.Field("id", product.ID))
	}

	product.Images = images
	return product, nil
}

// DeleteProduct removes a product, its images and any trending entries
// referencing it
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := database.Transaction(ps.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*tables.ProductImage)(nil)).
			Where("product_id = ?", id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}

		if _, err := tx.NewDelete().Model((*tables.TrendingPerfume)(nil)).
			Where("product_id = ?", id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete trending entries: %w", err)
		}

		res, err := tx.NewDelete().Model((*tables.Product)(nil)).
			Where("id = ?", id).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("product %s: %w", id, lib.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := ps.cacheService.InvalidateProductCaches(id); err != nil {
		ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err), gecho.Field("id", id))
	}

	return nil
}

// normalizeImageSet stamps the owning product id, reassigns order_index by
// position and keeps at most one primary flag (the first, or the first image
// when none is flagged).
func normalizeImageSet(productID uuid.UUID, images []tables.ProductImage) []tables.ProductImage {
	if len(images) == 0 {
		return nil
	}

	out := make([]tables.ProductImage, len(images))
	copy(out, images)

	primarySeen := false
	for i := range out {
		if out[i].ID == uuid.Nil {
			out[i].ID = uuid.New()
		}
		out[i].ProductID = productID
		out[i].OrderIndex = i

		if out[i].IsPrimary {
			if primarySeen {
				out[i].IsPrimary = false
			}
			primarySeen = true
		}
	}

	if !primarySeen {
		out[0].IsPrimary = true
	}

	return out
}

// applyDefaultOptions sets default values for unspecified options
func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if opts.PageSize > 100 {
		opts.PageSize = 100 // Max page size for performance
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
}

// validateOptions validates the provided options
func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"price":      true,
		"title":      true,
		"rating":     true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}

	return nil
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if opts.BrandID != nil {
		query = query.Where("brand_id", *opts.BrandID)
	}
	if opts.CategoryID != nil {
		query = query.Where("category_id", *opts.CategoryID)
	}
	if opts.InStock != nil {
		query = query.Where("in_stock", *opts.InStock)
	}

	if opts.MinPrice != nil {
		query = query.WhereOp("price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("price", "<=", *opts.MaxPrice)
	}

	// Search across title, description, brand name and category name,
	// matching the storefront search box
	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(p.title ILIKE ? OR p.description ILIKE ? OR brand.name ILIKE ? OR category.name ILIKE ?)",
			searchPattern, searchPattern, searchPattern, searchPattern,
		)
	}

	return query
}

// applySorting applies sorting to the query
func (ps *ProductService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	direction := database.DESC
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	}
	return query.OrderBy(opts.SortBy, direction)
}
