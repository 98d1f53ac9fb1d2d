package trending

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
	entries []tables.TrendingPerfume
	err     error
}

func (sl *stubLister) GetActive(ctx context.Context) ([]tables.TrendingPerfume, error) {
	return sl.entries, sl.err
}

func testRouter(sl *stubLister) chi.Router {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	r := chi.NewRouter()
	NewTrendingRoutesManager(logger, sl).RegisterRoutes(r)
	return r
}

func TestFetchActiveTrendingServesEntries(t *testing.T) {
	productID := uuid.New()
	sl := &stubLister{entries: []tables.TrendingPerfume{
		{ID: uuid.New(), ProductID: productID, OrderIndex: 1, IsActive: true,
			Product: &tables.Product{ID: productID, Title: "Midnight Oud", Price: 12500}},
	}}
	r := testRouter(sl)

	req := httptest.NewRequest("GET", "/trending", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, productID.String()) {
		t.Fatalf("response missing trending product %s:\n%s", productID, body)
	}
}

func TestFetchActiveTrendingDegradesToEmptyOnReadFailure(t *testing.T) {
	r := testRouter(&stubLister{err: errors.New("connection refused")})

	req := httptest.NewRequest("GET", "/trending", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"trending":[]`) || !strings.Contains(body, `"count":0`) {
		t.Fatalf("expected an empty trending list:\n%s", body)
	}
	if strings.Contains(body, "connection refused") {
		t.Fatalf("raw error leaked to the client:\n%s", body)
	}
}
