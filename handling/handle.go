package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs an internal failure and replies with a 500 carrying a
// client-safe message. The underlying error stays in the log and never
// reaches the response body.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}
