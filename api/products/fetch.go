package products

import (
	"luxehaven_server/database"
	"luxehaven_server/handling"
	"luxehaven_server/lib"
	"luxehaven_server/services"
	"luxehaven_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllProducts handles GET /products with comprehensive filtering, pagination, and sorting
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters into options
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	// Log the request
	prm.logger.Debug("Fetching products",
		gecho.Field("include_images", opts.IncludeImages),
		gecho.Field("page", opts.Page),
		gecho.Field("page_size", opts.PageSize),
	)

	// Fetch products using the service. Catalogue reads degrade to an empty
	// page on failure; the error stays in the log.
	result, err := prm.productService.GetAllProducts(ctx, opts)
	if err != nil {
		prm.logger.Error("Failed to fetch products, serving empty result", gecho.Field("error", err))
		result = &services.ProductListResult{
			Products:   []tables.Product{},
			Pagination: database.Pagination{Page: opts.Page, PageSize: opts.PageSize},
			Filters:    *opts,
		}
	}

	// Present each product's images in display order
	if opts.IncludeImages {
		for i := range result.Products {
			result.Products[i].Images = lib.SortProductImages(result.Products[i].Images, result.Products[i].ImageURL)
		}
	}

	// Return successful response with metadata
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"filters":    result.Filters,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id} to fetch a single product
func (prm *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Get ID from URL parameter using chi
	idStr := chi.URLParam(r, "id")

	// Validate and parse ID
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		prm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	// Fetch product using the service, images always preloaded for detail view
	product, err := prm.productService.GetProductByID(ctx, id, true)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetchOne", prm.logger, w)
		return
	}
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.notFound"),
			gecho.Send(),
		)
		return
	}

	// Present images in display order
	product.Images = lib.SortProductImages(product.Images, product.ImageURL)

	// Return successful response
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}
