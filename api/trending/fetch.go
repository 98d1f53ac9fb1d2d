package trending

import (
	"luxehaven_server/lib"
	"luxehaven_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchActiveTrending handles GET /trending. Entries come back in rank order
// with their products preloaded.
func (trm *TrendingRoutesManager) FetchActiveTrending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// A failed read degrades to an empty trending shelf; the error stays in
	// the log.
	entries, err := trm.trendingService.GetActive(ctx)
	if err != nil {
		trm.logger.Error("Failed to fetch trending products, serving empty result", gecho.Field("error", err))
		entries = []tables.TrendingPerfume{}
	}

	for i := range entries {
		if entries[i].Product != nil {
			entries[i].Product.Images = lib.SortProductImages(entries[i].Product.Images, entries[i].Product.ImageURL)
		}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"trending": entries,
			"count":    len(entries),
		}),
		gecho.Send(),
	)
}
