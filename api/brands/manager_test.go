package brands

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubLister struct {
	brands []tables.Brand
	err    error
}

func (sl *stubLister) GetBrands(ctx context.Context) ([]tables.Brand, error) {
	return sl.brands, sl.err
}

func testRouter(sl *stubLister) chi.Router {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	r := chi.NewRouter()
	NewBrandRoutesManager(logger, sl).RegisterRoutes(r)
	return r
}

func TestFetchAllBrandsServesList(t *testing.T) {
	brand := tables.Brand{ID: uuid.New(), Name: "Maison Lumière"}
	r := testRouter(&stubLister{brands: []tables.Brand{brand}})

	req := httptest.NewRequest("GET", "/brands", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, brand.ID.String()) {
		t.Fatalf("response missing brand %s:\n%s", brand.ID, body)
	}
}

func TestFetchAllBrandsDegradesToEmptyOnReadFailure(t *testing.T) {
	r := testRouter(&stubLister{err: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/brands", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"brands":[]`) || !strings.Contains(body, `"count":0`) {
		t.Fatalf("expected an empty brand list:\n%s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Fatalf("raw error leaked to the client:\n%s", body)
	}
}
