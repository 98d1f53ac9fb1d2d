package categories

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
	categories []tables.Category
	err        error
}

func (sl *stubLister) GetCategories(ctx context.Context) ([]tables.Category, error) {
	return sl.categories, sl.err
}

func testRouter(sl *stubLister) chi.Router {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	r := chi.NewRouter()
	NewCategoryRoutesManager(logger, sl).RegisterRoutes(r)
	return r
}

func TestFetchAllCategoriesServesList(t *testing.T) {
	category := tables.Category{ID: uuid.New(), Name: "Eau de Parfum"}
	r := testRouter(&stubLister{categories: []tables.Category{category}})

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, category.ID.String()) {
		t.Fatalf("response missing category %s:\n%s", category.ID, body)
	}
}

func TestFetchAllCategoriesDegradesToEmptyOnReadFailure(t *testing.T) {
	r := testRouter(&stubLister{err: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"categories":[]`) || !strings.Contains(body, `"count":0`) {
		t.Fatalf("expected an empty category list:\n%s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Fatalf("raw error leaked to the client:\n%s", body)
	}
}
