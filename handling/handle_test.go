package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MonkyMars/gecho"
)

func TestHandleErrorRepliesWithSafeMessage(t *testing.T) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	rec := httptest.NewRecorder()

	HandleError(errors.New("dial tcp: connection refused"), "error.products.failedToFetchOne", logger, rec)

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
