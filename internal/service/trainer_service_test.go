package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
)

func TestTrainerService_CreateDefaultsRateCard(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	svc := NewTrainerService(repository.NewGormTrainerRepository(db))

	trainer, err := svc.Create(context.Background(), tenantID, CreateTrainerInput{
		Name:  "Alice",
		Email: "a@x.com",
		Bio:   "bio",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if trainer.TenantID != tenantID {
		t.Fatalf("tenant id = %s, want %s", trainer.TenantID, tenantID)
	}
	if string(trainer.RateCard) != `{}` {
		t.Fatalf("rate card = %s, want empty object", trainer.RateCard)
	}
}

func TestTrainerService_CreateRejectsBadEmail(t *testing.T) {
	db := newTestDB(t)

	svc := NewTrainerService(repository.NewGormTrainerRepository(db))

	_, err := svc.Create(context.Background(), uuid.New(), CreateTrainerInput{
		Name:  "Alice",
		Email: "not-an-email",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Create = %v, want ErrValidation", err)
	}
}

func TestTrainerService_GetOrdersAvailabilityByDate(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()

	if err := db.Create(&model.Trainer{ID: trainerID, TenantID: tenantID, Name: "Alice", Email: "a@x.com"}).Error; err != nil {
		t.Fatalf("seed trainer: %v", err)
	}

	later := uuid.New()
	earlier := uuid.New()
	if err := db.Create(&model.Availability{
		ID:        later,
		TrainerID: trainerID,
		Date:      datatypes.Date(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)),
		StartTime: "09:00",
		EndTime:   "10:00",
	}).Error; err != nil {
		t.Fatalf("seed later slot: %v", err)
	}
	if err := db.Create(&model.Availability{
		ID:        earlier,
		TrainerID: trainerID,
		Date:      datatypes.Date(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime: "11:00",
		EndTime:   "12:00",
	}).Error; err != nil {
		t.Fatalf("seed earlier slot: %v", err)
	}
	if err := db.Create(&model.Booking{
		ID:             uuid.New(),
		TenantID:       tenantID,
		TrainerID:      trainerID,
		AvailabilityID: earlier,
		ClientName:     "Jane",
		ClientEmail:    "jane@x.com",
		Status:         model.BookingStatusConfirmed,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	svc := NewTrainerService(repository.NewGormTrainerRepository(db))

	trainer, err := svc.Get(context.Background(), tenantID, trainerID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if len(trainer.Availability) != 2 {
		t.Fatalf("availability len = %d, want 2", len(trainer.Availability))
	}
	if trainer.Availability[0].ID != earlier || trainer.Availability[1].ID != later {
		t.Fatalf("availability not in date order: %s, %s", trainer.Availability[0].ID, trainer.Availability[1].ID)
	}
	if len(trainer.Bookings) != 1 {
		t.Fatalf("bookings len = %d, want 1", len(trainer.Bookings))
	}
	if trainer.Bookings[0].Availability == nil || trainer.Bookings[0].Availability.ID != earlier {
		t.Fatalf("booking availability not loaded")
	}
}

func TestTrainerService_UpdateAppliesSuppliedFields(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()

	if err := db.Create(&model.Trainer{
		ID:       trainerID,
		TenantID: tenantID,
		Name:     "Alice",
		Email:    "a@x.com",
		Bio:      "original",
	}).Error; err != nil {
		t.Fatalf("seed trainer: %v", err)
	}

	svc := NewTrainerService(repository.NewGormTrainerRepository(db))

	name := "Alicia"
	trainer, err := svc.Update(context.Background(), tenantID, trainerID, TrainerPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if trainer.Name != "Alicia" {
		t.Fatalf("name = %q, want %q", trainer.Name, "Alicia")
	}
	if trainer.Email != "a@x.com" || trainer.Bio != "original" {
		t.Fatalf("unsupplied fields changed: %q / %q", trainer.Email, trainer.Bio)
	}
}

func TestTrainerService_DeleteIsUnconditional(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()

	if err := db.Create(&model.Trainer{ID: trainerID, TenantID: tenantID, Name: "Alice", Email: "a@x.com"}).Error; err != nil {
		t.Fatalf("seed trainer: %v", err)
	}
	if err := db.Create(&model.Availability{
		ID:        uuid.New(),
		TrainerID: trainerID,
		Date:      datatypes.Date(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime: "09:00",
		EndTime:   "10:00",
	}).Error; err != nil {
		t.Fatalf("seed availability: %v", err)
	}

	svc := NewTrainerService(repository.NewGormTrainerRepository(db))

	if err := svc.Delete(context.Background(), tenantID, trainerID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), tenantID, trainerID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}
