package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resendlabs/resend-go"

	"github.com/bestmoments/bestmoments-backend/internal/config"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.Resend.APIKey),
		from:     cfg.Resend.FromAddress,
		fromName: cfg.Resend.FromName,
	}
}

const eventReadyTemplate = `
<h2>Your event is ready, {{.HostName}}!</h2>
<p><strong>{{.EventName}}</strong> is set up and waiting for photos.</p>
<p>Event code: <strong>{{.EventCode}}</strong></p>
<p>Guests can upload photos at <a href="{{.GuestURL}}">{{.GuestURL}}</a>
or by scanning the <a href="{{.QRCodeURL}}">QR code</a>.</p>
<p>Your printable template: <a href="{{.TemplateURL}}">download</a>.</p>
`

type EventReadyData struct {
	HostName    string
	EventName   string
	EventCode   string
	GuestURL    string
	QRCodeURL   string
	TemplateURL string
}

// SendEventReadyEmail notifies the host that their event, QR code and template
// are ready.
func (s *EmailService) SendEventReadyEmail(to string, data EventReadyData) error {
	tmpl, err := template.New("event_ready").Parse(eventReadyTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: fmt.Sprintf("%s is ready for photos", data.EventName),
		Html:    html.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send event ready email: %w", err)
	}
	return nil
}
