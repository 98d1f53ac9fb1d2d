package admin

import (
	"errors"
	"net/http"

	"luxehaven_server/lib"
	"luxehaven_server/services"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListTrending returns every trending entry, active or not, in rank order
func (arm *AdminRoutesManager) ListTrending(w http.ResponseWriter, r *http.Request) {
	entries, err := arm.trendingService.GetAll(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list trending entries", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to fetch trending list. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"trending": entries,
			"count":    len(entries),
		}),
		gecho.Send(),
	)
}

// AddTrending appends a product to the bottom of the trending list
func (arm *AdminRoutesManager) AddTrending(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.TrendingCreateRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a product to add"), gecho.Send())
		return
	}

	entry, err := arm.trendingService.Add(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w, gecho.WithMessage("Product is already trending"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to add trending entry", gecho.Field("error", err), gecho.Field("product_id", body.ProductID))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to add trending entry. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(entry),
		gecho.WithMessage("Trending entry added successfully"),
		gecho.Send(),
	)
}

// SetTrendingActive toggles an entry's storefront visibility
func (arm *AdminRoutesManager) SetTrendingActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a trending entry"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.TrendingActiveRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the request and try again"), gecho.Send())
		return
	}

	if err := arm.trendingService.SetActive(r.Context(), id, body.IsActive); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Trending entry not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to toggle trending entry", gecho.Field("error", err), gecho.Field("id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update trending entry. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Trending entry updated successfully"),
		gecho.Send(),
	)
}

// ReorderTrending moves an entry one rank up or down. Boundary moves succeed
// without changing anything.
func (arm *AdminRoutesManager) ReorderTrending(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a trending entry"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ReorderRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Direction must be \"up\" or \"down\""), gecho.Send())
		return
	}

	if err := arm.trendingService.Reorder(r.Context(), id, services.Direction(body.Direction)); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Trending entry not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to reorder trending entry", gecho.Field("error", err), gecho.Field("id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to reorder trending entry. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Trending entry reordered successfully"),
		gecho.Send(),
	)
}

// DeleteTrending removes an entry from the trending list
func (arm *AdminRoutesManager) DeleteTrending(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a trending entry"), gecho.Send())
		return
	}

	if err := arm.trendingService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Trending entry not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete trending entry", gecho.Field("error", err), gecho.Field("id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete trending entry. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Trending entry deleted successfully"),
		gecho.Send(),
	)
}
