package contact

import (
	"net/http"

	"luxehaven_server/lib"
	"luxehaven_server/services"
	"luxehaven_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContactRoutesManager struct {
	logger       *gecho.Logger
	emailService *services.EmailService
}

func NewContactRoutesManager(
	logger *gecho.Logger,
	emailService *services.EmailService,
) *ContactRoutesManager {
	return &ContactRoutesManager{
		logger:       logger,
		emailService: emailService,
	}
}

func (crm *ContactRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/contact", crm.SubmitContactMessage)
}

// SubmitContactMessage handles POST /contact, forwarding the message to the
// shop inbox.
func (crm *ContactRoutesManager) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ContactRequest](r)
	if err != nil {
		crm.logger.Warn("Invalid contact request", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.contact.invalidRequest"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	if err := crm.emailService.SendContactMessage(body); err != nil {
		crm.logger.Error("Failed to send contact message", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.contact.failedToSend"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Message sent"),
		gecho.Send(),
	)
}
