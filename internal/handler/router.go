package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fitsched/booking-platform/internal/mail"
	"github.com/fitsched/booking-platform/internal/repository"
	"github.com/fitsched/booking-platform/internal/service"
)

// Deps carries everything the router wires together.
type Deps struct {
	Tenants       repository.TenantRepository
	ProviderTypes *service.ProviderTypeService
	Bookings      *service.BookingService
	Trainers      *service.TrainerService
	Pricing       *service.PricingService
	Mailer        mail.Mailer
	JWTSecret     string
	Log           *slog.Logger
}

// NewRouter builds the API router. All /api routes run behind tenant
// resolution and the optional session middleware.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(d.Log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	providerTypes := NewProviderTypeHandler(d.ProviderTypes)
	bookings := NewBookingHandler(d.Bookings)
	trainers := NewTrainerHandler(d.Trainers)
	pricing := NewPricingHandler(d.Pricing)
	testEmail := NewTestEmailHandler(d.Mailer)

	r.Route("/api", func(r chi.Router) {
		r.Use(ResolveTenant(d.Tenants))
		r.Use(Session(d.JWTSecret))

		r.Route("/provider-types/{id}", func(r chi.Router) {
			r.Get("/", providerTypes.Get)
			r.Patch("/", providerTypes.Patch)
			r.Delete("/", providerTypes.Delete)
		})

		r.Route("/bookings/{id}", func(r chi.Router) {
			r.Get("/", bookings.Get)
			r.Patch("/", bookings.Patch)
			r.Delete("/", bookings.Delete)
		})

		r.Get("/clients/check-pricing", pricing.Check)

		r.Post("/test-email", testEmail.Send)

		r.Route("/trainers", func(r chi.Router) {
			r.Get("/", trainers.List)
			r.Post("/", trainers.Create)
			r.Get("/{id}", trainers.Get)
			r.Patch("/{id}", trainers.Patch)
			r.Delete("/{id}", trainers.Delete)
		})
	})

	return r
}
