package brands

import (
	"context"
	"net/http"

	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type brandLister interface {
	GetBrands(ctx context.Context) ([]tables.Brand, error)
}

type BrandRoutesManager struct {
	logger         *gecho.Logger
	catalogService brandLister
}

func NewBrandRoutesManager(
	logger *gecho.Logger,
	catalogService brandLister,
) *BrandRoutesManager {
	return &BrandRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (brm *BrandRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/brands", brm.FetchAllBrands)
}

// FetchAllBrands handles GET /brands listing every brand alphabetically
func (brm *BrandRoutesManager) FetchAllBrands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Listing failures degrade to an empty collection; the error stays in
	// the log.
	brands, err := brm.catalogService.GetBrands(ctx)
	if err != nil {
		brm.logger.Error("Failed to fetch brands, serving empty result", gecho.Field("error", err))
		brands = []tables.Brand{}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"brands": brands,
			"count":  len(brands),
		}),
		gecho.Send(),
	)
}
