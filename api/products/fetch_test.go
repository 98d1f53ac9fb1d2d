package products

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luxehaven_server/database"
	"luxehaven_server/services"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubCatalog struct {
	list    *services.ProductListResult
	listErr error
	product *tables.Product
	getErr  error
}

func (sc *stubCatalog) GetAllProducts(ctx context.Context, opts *services.ProductListOptions) (*services.ProductListResult, error) {
	if sc.listErr != nil {
		return nil, sc.listErr
	}
	return sc.list, nil
}

func (sc *stubCatalog) GetProductByID(ctx context.Context, id uuid.UUID, includeImages bool) (*tables.Product, error) {
	return sc.product, sc.getErr
}

func testRouter(sc *stubCatalog) chi.Router {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	r := chi.NewRouter()
	NewProductRoutesManager(logger, sc).RegisterRoutes(r)
	return r
}

func TestFetchAllProductsServesList(t *testing.T) {
	product := tables.Product{ID: uuid.New(), Title: "Amber Noir", Price: 15000}
	sc := &stubCatalog{list: &services.ProductListResult{
		Products:   []tables.Product{product},
		Pagination: database.Pagination{Page: 1, PageSize: 20, Total: 1, TotalPages: 1},
	}}
	r := testRouter(sc)

	req := httptest.NewRequest("GET", "/products", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, product.ID.String()) {
		t.Fatalf("response missing product %s:\n%s", product.ID, body)
	}
}

func TestFetchAllProductsDegradesToEmptyOnReadFailure(t *testing.T) {
	sc := &stubCatalog{listErr: errors.New("connection refused")}
	r := testRouter(sc)

	req := httptest.NewRequest("GET", "/products?page=2&page_size=10", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"products":[]`) {
		t.Fatalf("expected an empty product list:\n%s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Fatalf("raw error leaked to the client:\n%s", body)
	}
}

func TestFetchProductByIDHidesInternalError(t *testing.T) {
	sc := &stubCatalog{getErr: errors.New("connection refused")}
	r := testRouter(sc)

	req := httptest.NewRequest("GET", "/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "error.products.failedToFetchOne") {
		t.Fatalf("expected the client-safe message:\n%s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Fatalf("raw error leaked to the client:\n%s", body)
	}
}

func TestFetchProductByIDMissingIsNotFound(t *testing.T) {
	r := testRouter(&stubCatalog{})

	req := httptest.NewRequest("GET", "/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestFetchProductByIDRejectsBadID(t *testing.T) {
	r := testRouter(&stubCatalog{})

	req := httptest.NewRequest("GET", "/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
