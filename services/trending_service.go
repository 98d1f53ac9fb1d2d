package services

import (
	"context"
	"fmt"
	"luxehaven_server/database"
	"luxehaven_server/lib"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Direction of a trending reorder
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

type TrendingService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewTrendingService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *TrendingService {
	return &TrendingService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetActive returns active trending entries in display order with their
// products preloaded
func (ts *TrendingService) GetActive(ctx context.Context) ([]tables.TrendingPerfume, error) {
	cached, err := ts.cacheService.GetTrendingList()
	if err != nil {
		ts.logger.Warn("Failed to get trending list from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	entries, err := database.Query[tables.TrendingPerfume](ts.db).
		Where("is_active", true).
		Relation("Product").
		Relation("Product.Brand").
		Relation("Product.Category").
		Relation("Product.Images").
		OrderBy("order_index", database.ASC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending entries: %w", err)
	}

	go func() {
		if err := ts.cacheService.SetTrendingList(entries); err != nil {
			ts.logger.Warn("Failed to cache trending list", gecho.Field("error", err))
		}
	}()

	return entries, nil
}

// GetAll returns every trending entry (active or not) in display order, for
// the admin panel
func (ts *TrendingService) GetAll(ctx context.Context) ([]tables.TrendingPerfume, error) {
	entries, err := database.Query[tables.TrendingPerfume](ts.db).
		Relation("Product").
		Relation("Product.Brand").
		OrderBy("order_index", database.ASC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending entries: %w", err)
	}
	return entries, nil
}

// Add appends a product to the trending list at the bottom rank (max+1)
func (ts *TrendingService) Add(ctx context.Context, productID uuid.UUID) (*tables.TrendingPerfume, error) {
	existing, err := ts.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	maxOrder := 0
	for _, entry := range existing {
		if entry.ProductID == productID {
			return nil, fmt.Errorf("product %s is already trending: %w", productID, lib.ErrConflict)
		}
		if entry.OrderIndex > maxOrder {
			maxOrder = entry.OrderIndex
		}
	}

	entry := &tables.TrendingPerfume{
		ID:         uuid.New(),
		ProductID:  productID,
		OrderIndex: maxOrder + 1,
		IsActive:   true,
	}

	if _, err := database.Create(ts.db, ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to add trending entry: %w", err)
	}

	ts.invalidate()
	return entry, nil
}

// SetActive toggles whether an entry is shown on the storefront
func (ts *TrendingService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	affected, err := database.UpdateByID[tables.TrendingPerfume](ts.db, ctx, id, map[string]any{
		"is_active": active,
	})
	if err != nil {
		return fmt.Errorf("failed to update trending entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trending entry %s: %w", id, lib.ErrNotFound)
	}

	ts.invalidate()
	return nil
}

// Delete removes an entry from the trending list. Remaining ranks keep their
// values; ordering only needs them distinct, not contiguous.
func (ts *TrendingService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := database.DeleteByID[tables.TrendingPerfume](ts.db, ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete trending entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trending entry %s: %w", id, lib.ErrNotFound)
	}

	ts.invalidate()
	return nil
}

// swapPlan names the two entries whose ranks a reorder exchanges
type swapPlan struct {
	Current  tables.TrendingPerfume
	Neighbor tables.TrendingPerfume
}

// planReorder finds the swap a move implies. Entries must be sorted by
// order_index ascending. It returns (nil, true) for a boundary move (first
// entry up, last entry down) and (nil, false) when the id is absent.
func planReorder(entries []tables.TrendingPerfume, id uuid.UUID, direction Direction) (*swapPlan, bool) {
	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false
	}

	target := idx - 1
	if direction == MoveDown {
		target = idx + 1
	}

	if target < 0 || target >= len(entries) {
		// Boundary move, nothing to do
		return nil, true
	}

	return &swapPlan{Current: entries[idx], Neighbor: entries[target]}, true
}

// Reorder moves an entry one position up or down by swapping its order_index
// with its immediate neighbor. Both rank updates run in one transaction, so
// the list is never observable half-swapped. Boundary moves are no-ops.
func (ts *TrendingService) Reorder(ctx context.Context, id uuid.UUID, direction Direction) error {
	entries, err := database.Query[tables.TrendingPerfume](ts.db).
		OrderBy("order_index", database.ASC).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch trending entries: %w", err)
	}

	plan, found := planReorder(entries, id, direction)
	if !found {
		return fmt.Errorf("trending entry %s: %w", id, lib.ErrNotFound)
	}
	if plan == nil {
		ts.logger.Debug("Trending reorder is a boundary no-op",
			gecho.Field("id", id),
			gecho.Field("direction", direction),
		)
		return nil
	}

	err = database.Transaction(ts.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model((*tables.TrendingPerfume)(nil)).
			Set("order_index = ?", plan.Neighbor.OrderIndex).
			Where("id = ?", plan.Current.ID).Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewUpdate().Model((*tables.TrendingPerfume)(nil)).
			Set("order_index = ?", plan.Current.OrderIndex).
			Where("id = ?", plan.Neighbor.ID).Exec(ctx); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to swap trending ranks: %w", err)
	}

	ts.invalidate()
	return nil
}

func (ts *TrendingService) invalidate() {
	if err := ts.cacheService.InvalidateTrendingCache(); err != nil {
		ts.logger.Warn("Failed to invalidate trending cache", gecho.Field("error", err))
	}
}
