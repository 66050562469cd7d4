package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitsched/booking-platform/internal/config"
	"github.com/fitsched/booking-platform/internal/db"
	"github.com/fitsched/booking-platform/internal/handler"
	"github.com/fitsched/booking-platform/internal/mail"
	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
	"github.com/fitsched/booking-platform/internal/service"
)

func main() {
	log := newLogger("info")

	// 1. Load config from env.
	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	log = newLogger(cfg.LogLevel)

	// 2. Connect to the database through GORM.
	gormDB, err := db.NewGormDB(cfg.DB)
	if err != nil {
		log.Error("init db", "error", err)
		os.Exit(1)
	}

	// 3. Model migrations.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Error("auto migrate", "error", err)
		os.Exit(1)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Error("sql DB", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// 4. Repositories (GORM implementations).
	tenantRepo := repository.NewGormTenantRepository(gormDB)
	providerTypeRepo := repository.NewGormProviderTypeRepository(gormDB)
	trainerRepo := repository.NewGormTrainerRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	clientRepo := repository.NewGormClientRepository(gormDB)

	// 5. Outbound email.
	mailer, err := mail.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		log.Error("smtp mailer", "error", err)
		os.Exit(1)
	}

	// 6. Services and router.
	router := handler.NewRouter(handler.Deps{
		Tenants:       tenantRepo,
		ProviderTypes: service.NewProviderTypeService(providerTypeRepo),
		Bookings:      service.NewBookingService(bookingRepo),
		Trainers:      service.NewTrainerService(trainerRepo),
		Pricing:       service.NewPricingService(clientRepo),
		Mailer:        mailer,
		JWTSecret:     cfg.JWTSecret,
		Log:           log,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 7. Run the server in a goroutine.
	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 8. Graceful shutdown on signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

