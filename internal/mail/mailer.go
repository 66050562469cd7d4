package mail

import (
	"context"
	"fmt"
)

// Message is an arbitrary outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Reminder carries the details of one booking reminder.
type Reminder struct {
	BookingID   string
	ClientName  string
	ClientEmail string
	TrainerName string
	Date        string
	StartTime   string
	EndTime     string
	TenantName  string
}

// Result reports the delivery outcome. Expected provider failures land in
// Success/Error; only transport-level faults surface as Go errors.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) (Result, error)
	SendBookingReminder(ctx context.Context, rem Reminder) (Result, error)
}

// WrapHTML puts a body into the fixed outer template used for all
// API-triggered mail.
func WrapHTML(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 16px;">
      %s
    </div>
  </body>
</html>`, body)
}

// ReminderHTML renders the body of a booking reminder email.
func ReminderHTML(rem Reminder) string {
	when := rem.Date
	if rem.StartTime != "" || rem.EndTime != "" {
		when = fmt.Sprintf("%s, %s–%s", rem.Date, rem.StartTime, rem.EndTime)
	}
	body := fmt.Sprintf(`<h2>Reminder: your session tomorrow</h2>
      <p>Hi %s,</p>
      <p>This is a reminder of your upcoming session with <strong>%s</strong>.</p>
      <p><strong>When:</strong> %s</p>
      <p>See you there!<br>%s</p>`,
		rem.ClientName, rem.TrainerName, when, rem.TenantName)
	return WrapHTML(body)
}
