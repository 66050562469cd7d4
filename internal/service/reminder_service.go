package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitsched/booking-platform/internal/mail"
	"github.com/fitsched/booking-platform/internal/repository"
	"github.com/fitsched/booking-platform/internal/timeutil"
)

// ReminderSummary tallies one batch run.
type ReminderSummary struct {
	Total   int
	Success int
	Failure int
}

// ReminderService sends next-day booking reminders. Re-running before the
// cutoff simply resends; there is no idempotency guard.
type ReminderService struct {
	bookings repository.BookingRepository
	mailer   mail.Mailer
	log      *slog.Logger
}

func NewReminderService(bookings repository.BookingRepository, mailer mail.Mailer, log *slog.Logger) *ReminderService {
	return &ReminderService{bookings: bookings, mailer: mailer, log: log}
}

// Run processes tomorrow's confirmed bookings sequentially. Per-item
// failures are counted and skipped; only the batch query itself is fatal.
func (s *ReminderService) Run(ctx context.Context, now time.Time) (ReminderSummary, error) {
	window := timeutil.TomorrowWindowUTC(now)

	bookings, err := s.bookings.ListConfirmedByDateWindow(ctx, window.Start, window.End)
	if err != nil {
		return ReminderSummary{}, fmt.Errorf("list confirmed bookings: %w", err)
	}

	summary := ReminderSummary{Total: len(bookings)}

	for _, b := range bookings {
		if b.Trainer == nil || b.Tenant == nil {
			summary.Failure++
			s.log.Warn("skipping booking with missing relation", "booking_id", b.ID)
			continue
		}

		rem := mail.Reminder{
			BookingID:   b.ID.String(),
			ClientName:  b.ClientName,
			ClientEmail: b.ClientEmail,
			TrainerName: b.Trainer.Name,
			TenantName:  b.Tenant.Name,
		}
		if b.Availability != nil {
			rem.Date = timeutil.FormatDate(time.Time(b.Availability.Date))
			rem.StartTime = b.Availability.StartTime
			rem.EndTime = b.Availability.EndTime
		}

		res, err := s.mailer.SendBookingReminder(ctx, rem)
		if err != nil || !res.Success {
			summary.Failure++
			detail := res.Error
			if err != nil {
				detail = err.Error()
			}
			s.log.Warn("reminder failed", "booking_id", b.ID, "error", detail)
			continue
		}

		when := ""
		if b.Availability != nil {
			when = timeutil.FormatSlotForUser(time.Time(b.Availability.Date), b.Availability.StartTime, b.Availability.EndTime)
		}

		summary.Success++
		s.log.Info("reminder sent", "booking_id", b.ID, "message_id", res.MessageID, "when", when)
	}

	return summary, nil
}
