package categories

import (
	"context"
	"net/http"

	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type categoryLister interface {
	GetCategories(ctx context.Context) ([]tables.Category, error)
}

type CategoryRoutesManager struct {
	logger         *gecho.Logger
	catalogService categoryLister
}

func NewCategoryRoutesManager(
	logger *gecho.Logger,
	catalogService categoryLister,
) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/categories", crm.FetchAllCategories)
}

// FetchAllCategories handles GET /categories listing every category alphabetically
func (crm *CategoryRoutesManager) FetchAllCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Listing failures degrade to an empty collection; the error stays in
	// the log.
	categories, err := crm.catalogService.GetCategories(ctx)
	if err != nil {
		crm.logger.Error("Failed to fetch categories, serving empty result", gecho.Field("error", err))
		categories = []tables.Category{}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
			"count":      len(categories),
		}),
		gecho.Send(),
	)
}
