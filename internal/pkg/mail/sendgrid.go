package mail

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	// ErrSendGridAPIKeyRequired is returned when the API key is missing.
	ErrSendGridAPIKeyRequired = errors.New("sendgrid api key is required")
	// ErrSendGridNoRecipients is returned when To is empty.
	ErrSendGridNoRecipients = errors.New("no recipients provided")
	// ErrSendGridNoSender is returned when both Message.From and the configured default From are empty.
	ErrSendGridNoSender = errors.New("no sender provided")
)

// SendGrid is a Mail implementation backed by the SendGrid v3 API.
type SendGrid struct {
	client      *sendgrid.Client
	defaultFrom string
}

// SendGridConfig configures the SendGrid implementation.
type SendGridConfig struct {
	// APIKey is the SendGrid API key.
	APIKey string
	// From is the default sender when Message.From is empty.
	From string
}

// NewSendGrid constructs a SendGrid mail sender.
func NewSendGrid(cfg SendGridConfig) (*SendGrid, error) {
	if cfg.APIKey == "" {
		return nil, ErrSendGridAPIKeyRequired
	}

	return &SendGrid{
		client:      sendgrid.NewSendClient(cfg.APIKey),
		defaultFrom: cfg.From,
	}, nil
}

// Send delivers a message through the SendGrid API.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(msg.To) == 0 {
		return ErrSendGridNoRecipients
	}

	from := msg.From
	if from == "" {
		from = s.defaultFrom
	}
	if from == "" {
		return ErrSendGridNoSender
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail("", from))
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}
	for _, cc := range msg.Cc {
		p.AddCCs(sgmail.NewEmail("", cc))
	}
	for _, bcc := range msg.Bcc {
		p.AddBCCs(sgmail.NewEmail("", bcc))
	}
	m.AddPersonalizations(p)

	if msg.TextBody != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send failed with status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (s *SendGrid) Close() error {
	return nil
}
