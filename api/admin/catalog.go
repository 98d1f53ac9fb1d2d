package admin

import (
	"errors"
	"net/http"

	"luxehaven_server/lib"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) CreateBrand(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Brand](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the brand information and try again"), gecho.Send())
		return
	}

	created, err := arm.catalogService.CreateBrand(r.Context(), body)
	if err != nil {
		arm.logger.Error("Failed to create brand", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create brand. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(created),
		gecho.WithMessage("Brand created successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a brand to update"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[tables.Brand](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the brand information and try again"), gecho.Send())
		return
	}
	body.ID = id

	if err := arm.catalogService.UpdateBrand(r.Context(), body); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Brand not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update brand", gecho.Field("error", err), gecho.Field("brand_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update brand. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Brand updated successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a brand to delete"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeleteBrand(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Brand not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete brand", gecho.Field("error", err), gecho.Field("brand_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete brand. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Brand deleted successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[tables.Category](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the category information and try again"), gecho.Send())
		return
	}

	created, err := arm.catalogService.CreateCategory(r.Context(), body)
	if err != nil {
		arm.logger.Error("Failed to create category", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create category. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(created),
		gecho.WithMessage("Category created successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a category to update"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[tables.Category](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the category information and try again"), gecho.Send())
		return
	}
	body.ID = id

	if err := arm.catalogService.UpdateCategory(r.Context(), body); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to update category", gecho.Field("error", err), gecho.Field("category_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update category. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated successfully"),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a category to delete"), gecho.Send())
		return
	}

	if err := arm.catalogService.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Category not found"), gecho.Send())
			return
		}
		arm.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("category_id", id))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to delete category. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted successfully"),
		gecho.Send(),
	)
}
