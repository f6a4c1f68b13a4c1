package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"lonelywalls-events/internal/config"
)

// Service sends the email copy of high-value notifications. It is always
// best-effort; the durable notification record is written regardless.
type Service interface {
	SendNotificationEmail(ctx context.Context, toEmail, recipientName, subject, body string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var notificationTemplate = template.Must(template.New("notification").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>{{.Subject}}</h2>
  <p>Hi {{.Name}},</p>
  <p>{{.Body}}</p>
  <p style="color: #888; font-size: 12px;">You received this email because of activity on your Lonely Walls account.</p>
</div>`))

func (s *service) SendNotificationEmail(ctx context.Context, toEmail, recipientName, subject, body string) error {
	data := struct {
		Subject string
		Name    string
		Body    string
	}{
		Subject: subject,
		Name:    recipientName,
		Body:    body,
	}

	var html bytes.Buffer
	if err := notificationTemplate.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to render notification email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Lonely Walls <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
