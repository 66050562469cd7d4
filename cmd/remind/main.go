// cmd/remind sends next-day booking reminders. It is meant to run as a
// nightly scheduled job; per-booking failures are counted but never abort
// the run. Exit code is non-zero only on a fatal top-level fault.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fitsched/booking-platform/internal/config"
	"github.com/fitsched/booking-platform/internal/db"
	"github.com/fitsched/booking-platform/internal/mail"
	"github.com/fitsched/booking-platform/internal/repository"
	"github.com/fitsched/booking-platform/internal/service"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	gormDB, err := db.NewGormDB(cfg.DB)
	if err != nil {
		log.Error("init db", "error", err)
		os.Exit(1)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Error("sql DB", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	mailer, err := mail.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		log.Error("smtp mailer", "error", err)
		os.Exit(1)
	}

	reminders := service.NewReminderService(
		repository.NewGormBookingRepository(gormDB),
		mailer,
		log,
	)

	summary, err := reminders.Run(context.Background(), time.Now())
	if err != nil {
		log.Error("reminder run failed", "error", err)
		os.Exit(1)
	}

	log.Info("reminder run complete",
		"total", summary.Total,
		"success", summary.Success,
		"failure", summary.Failure,
	)
}
