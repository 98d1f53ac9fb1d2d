package trending

import (
	"context"

	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type trendingLister interface {
	GetActive(ctx context.Context) ([]tables.TrendingPerfume, error)
}

type TrendingRoutesManager struct {
	logger          *gecho.Logger
	trendingService trendingLister
}

func NewTrendingRoutesManager(
	logger *gecho.Logger,
	trendingService trendingLister,
) *TrendingRoutesManager {
	return &TrendingRoutesManager{
		logger:          logger,
		trendingService: trendingService,
	}
}

func (trm *TrendingRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/trending", trm.FetchActiveTrending)
}
