package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	gomail "github.com/wneessen/go-mail"

	"github.com/fitsched/booking-platform/internal/config"
)

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) (Result, error) {
	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return Result{}, fmt.Errorf("set from: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return Result{}, fmt.Errorf("set to: %w", err)
	}

	messageID := uuid.NewString()
	out.SetMessageIDWithValue(messageID)
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	// A refused delivery is an expected outcome, reported in the result.
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return Result{Success: false, Error: err.Error()}, nil
	}

	return Result{Success: true, MessageID: messageID}, nil
}

func (m *SMTPMailer) SendBookingReminder(ctx context.Context, rem Reminder) (Result, error) {
	subject := fmt.Sprintf("Reminder: session with %s tomorrow", rem.TrainerName)
	return m.Send(ctx, Message{
		To:      rem.ClientEmail,
		Subject: subject,
		HTML:    ReminderHTML(rem),
	})
}
