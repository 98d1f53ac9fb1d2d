package handling

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestParseProductListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Page != 0 || opts.PageSize != 0 || opts.SearchTerm != "" {
		t.Fatalf("expected zero options for bare request, got %+v", opts)
	}
}

func TestParseProductListOptionsFullQuery(t *testing.T) {
	brandID := uuid.New()
	r := httptest.NewRequest("GET",
		"/products?page=2&page_size=12&search=oud&brand_id="+brandID.String()+
			"&in_stock=true&min_price=1000&max_price=20000&sort_by=price&sort_direction=desc&include_images=true", nil)

	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.Page != 2 || opts.PageSize != 12 {
		t.Fatalf("pagination not parsed: %+v", opts)
	}
	if opts.SearchTerm != "oud" {
		t.Fatalf("search term not parsed: %q", opts.SearchTerm)
	}
	if opts.BrandID == nil || *opts.BrandID != brandID {
		t.Fatalf("brand filter not parsed: %v", opts.BrandID)
	}
	if opts.InStock == nil || !*opts.InStock {
		t.Fatalf("in_stock filter not parsed: %v", opts.InStock)
	}
	if opts.MinPrice == nil || *opts.MinPrice != 1000 {
		t.Fatalf("min_price not parsed: %v", opts.MinPrice)
	}
	if opts.MaxPrice == nil || *opts.MaxPrice != 20000 {
		t.Fatalf("max_price not parsed: %v", opts.MaxPrice)
	}
	if opts.SortBy != "price" || opts.SortDirection != "DESC" {
		t.Fatalf("sorting not parsed: %q %q", opts.SortBy, opts.SortDirection)
	}
	if !opts.IncludeImages {
		t.Fatal("include_images not parsed")
	}
}

func TestParseProductListOptionsRejectsBadValues(t *testing.T) {
	for _, target := range []string{
		"/products?page=abc",
		"/products?page_size=x",
		"/products?brand_id=not-a-uuid",
		"/products?category_id=123",
		"/products?in_stock=maybe",
		"/products?min_price=-5",
		"/products?max_price=lots",
		"/products?include_images=yes-please",
	} {
		r := httptest.NewRequest("GET", target, nil)
		if _, err := ParseProductListOptions(r); err == nil {
			t.Fatalf("expected error for %s", target)
		}
	}
}
