package services

import (
	"testing"

	"luxehaven_server/structs/tables"

	"github.com/google/uuid"
)

func rankedEntries(n int) []tables.TrendingPerfume {
	entries := make([]tables.TrendingPerfume, n)
	for i := range entries {
		entries[i] = tables.TrendingPerfume{
			ID:         uuid.New(),
			ProductID:  uuid.New(),
			OrderIndex: i + 1,
			IsActive:   true,
		}
	}
	return entries
}

func TestPlanReorderSwapsWithUpperNeighbor(t *testing.T) {
	entries := rankedEntries(3)

	plan, found := planReorder(entries, entries[1].ID, MoveUp)
	if !found {
		t.Fatal("expected entry to be found")
	}
	if plan == nil {
		t.Fatal("expected a swap plan, got boundary no-op")
	}
	if plan.Current.ID != entries[1].ID || plan.Neighbor.ID != entries[0].ID {
		t.Fatalf("wrong swap pair: current=%s neighbor=%s", plan.Current.ID, plan.Neighbor.ID)
	}
}

func TestPlanReorderSwapsWithLowerNeighbor(t *testing.T) {
	entries := rankedEntries(3)

	plan, found := planReorder(entries, entries[1].ID, MoveDown)
	if !found {
		t.Fatal("expected entry to be found")
	}
	if plan == nil {
		t.Fatal("expected a swap plan, got boundary no-op")
	}
	if plan.Current.ID != entries[1].ID || plan.Neighbor.ID != entries[2].ID {
		t.Fatalf("wrong swap pair: current=%s neighbor=%s", plan.Current.ID, plan.Neighbor.ID)
	}
}

func TestPlanReorderBoundaryMovesAreNoOps(t *testing.T) {
	entries := rankedEntries(3)

	plan, found := planReorder(entries, entries[0].ID, MoveUp)
	if !found {
		t.Fatal("expected first entry to be found")
	}
	if plan != nil {
		t.Fatalf("moving the first entry up must be a no-op, got %+v", plan)
	}

	plan, found = planReorder(entries, entries[2].ID, MoveDown)
	if !found {
		t.Fatal("expected last entry to be found")
	}
	if plan != nil {
		t.Fatalf("moving the last entry down must be a no-op, got %+v", plan)
	}
}

func TestPlanReorderSingleEntryList(t *testing.T) {
	entries := rankedEntries(1)

	for _, dir := range []Direction{MoveUp, MoveDown} {
		plan, found := planReorder(entries, entries[0].ID, dir)
		if !found {
			t.Fatalf("direction %s: expected entry to be found", dir)
		}
		if plan != nil {
			t.Fatalf("direction %s: single entry moves must be no-ops, got %+v", dir, plan)
		}
	}
}

func TestPlanReorderUnknownID(t *testing.T) {
	entries := rankedEntries(3)

	plan, found := planReorder(entries, uuid.New(), MoveUp)
	if found {
		t.Fatal("expected unknown id to report not found")
	}
	if plan != nil {
		t.Fatalf("expected nil plan for unknown id, got %+v", plan)
	}
}

func TestPlanReorderKeepsRanksDistinct(t *testing.T) {
	// Non-contiguous ranks still swap cleanly; planReorder exchanges the
	// stored values rather than recomputing positions.
	entries := []tables.TrendingPerfume{
		{ID: uuid.New(), OrderIndex: 2},
		{ID: uuid.New(), OrderIndex: 7},
		{ID: uuid.New(), OrderIndex: 40},
	}

	plan, found := planReorder(entries, entries[2].ID, MoveUp)
	if !found || plan == nil {
		t.Fatalf("expected a swap plan, found=%v plan=%+v", found, plan)
	}
	if plan.Current.OrderIndex != 40 || plan.Neighbor.OrderIndex != 7 {
		t.Fatalf("expected ranks 40 and 7 to swap, got %d and %d", plan.Current.OrderIndex, plan.Neighbor.OrderIndex)
	}
}
