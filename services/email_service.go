package services

import (
	"fmt"
	"html"
	"luxehaven_server/structs"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

// EmailService relays contact-form submissions to the shop inbox
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Shop.ResendAPIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Shop.ContactSender,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendContactMessage forwards a visitor's message to the shop inbox with the
// visitor's address as the reply target shown in the body.
func (es *EmailService) SendContactMessage(req *structs.ContactRequest) error {
	subject := fmt.Sprintf("Contact form: %s", req.Subject)

	var b strings.Builder
	b.WriteString("<h2>New contact form message</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(req.Name), html.EscapeString(req.Email)))
	b.WriteString(fmt.Sprintf("<p><strong>Subject:</strong> %s</p>", html.EscapeString(req.Subject)))
	b.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(req.Message)))

	return es.SendEmail([]string{es.cfg.Shop.ContactInbox}, subject, b.String())
}
