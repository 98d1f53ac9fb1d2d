package services

import (
	"context"
	"fmt"
	"luxehaven_server/database"
	"luxehaven_server/lib"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CatalogService manages brands and categories, the two lookup entities
// products hang off of
type CatalogService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCatalogService(logger *gecho.Logger, db *database.DB) *CatalogService {
	return &CatalogService{
		logger: logger,
		db:     db,
	}
}

func (cs *CatalogService) GetBrands(ctx context.Context) ([]tables.Brand, error) {
	brands, err := database.Query[tables.Brand](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}
	return brands, nil
}

func (cs *CatalogService) CreateBrand(ctx context.Context, brand *tables.Brand) (*tables.Brand, error) {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	created, err := database.Create(cs.db, ctx, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return created, nil
}

func (cs *CatalogService) UpdateBrand(ctx context.Context, brand *tables.Brand) error {
	affected, err := database.UpdateByID[tables.Brand](cs.db, ctx, brand.ID, map[string]any{
		"name":        brand.Name,
		"description": brand.Description,
		"logo_url":    brand.LogoURL,
	})
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("brand %s: %w", brand.ID, lib.ErrNotFound)
	}
	return nil
}

func (cs *CatalogService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Brand](cs.db, ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("brand %s: %w", id, lib.ErrNotFound)
	}
	return nil
}

func (cs *CatalogService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (cs *CatalogService) CreateCategory(ctx context.Context, category *tables.Category) (*tables.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	created, err := database.Create(cs.db, ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (cs *CatalogService) UpdateCategory(ctx context.Context, category *tables.Category) error {
	affected, err := database.UpdateByID[tables.Category](cs.db, ctx, category.ID, map[string]any{
		"name":        category.Name,
		"description": category.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %s: %w", category.ID, lib.ErrNotFound)
	}
	return nil
}

func (cs *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %s: %w", id, lib.ErrNotFound)
	}
	return nil
}
