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

func TestBookingService_CancelDecrementsCounterOnce(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()
	slotID := uuid.New()
	bookingID := uuid.New()

	if err := db.Create(&model.Availability{
		ID:              slotID,
		TrainerID:       trainerID,
		Date:            datatypes.Date(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime:       "09:00",
		EndTime:         "10:00",
		CurrentBookings: 2,
	}).Error; err != nil {
		t.Fatalf("seed availability: %v", err)
	}
	if err := db.Create(&model.Booking{
		ID:             bookingID,
		TenantID:       tenantID,
		TrainerID:      trainerID,
		AvailabilityID: slotID,
		ClientName:     "Jane",
		ClientEmail:    "jane@x.com",
		Status:         model.BookingStatusConfirmed,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	svc := NewBookingService(repository.NewGormBookingRepository(db))

	if err := svc.Cancel(context.Background(), tenantID, bookingID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// Booking gone, counter down by exactly one.
	var count int64
	if err := db.Model(&model.Booking{}).Where("id = ?", bookingID).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 0 {
		t.Fatalf("booking still present")
	}

	var slot model.Availability
	if err := db.First(&slot, "id = ?", slotID).Error; err != nil {
		t.Fatalf("load availability: %v", err)
	}
	if slot.CurrentBookings != 1 {
		t.Fatalf("current_bookings = %d, want 1", slot.CurrentBookings)
	}

	// A second cancel observes nothing and must not decrement again.
	if err := svc.Cancel(context.Background(), tenantID, bookingID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Cancel = %v, want ErrNotFound", err)
	}
	if err := db.First(&slot, "id = ?", slotID).Error; err != nil {
		t.Fatalf("reload availability: %v", err)
	}
	if slot.CurrentBookings != 1 {
		t.Fatalf("current_bookings after second cancel = %d, want 1", slot.CurrentBookings)
	}
}

func TestBookingService_CancelMissing(t *testing.T) {
	db := newTestDB(t)

	svc := NewBookingService(repository.NewGormBookingRepository(db))

	if err := svc.Cancel(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Cancel missing = %v, want ErrNotFound", err)
	}
}

func TestBookingService_UpdateDropsEmptyClientName(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()
	slotID := uuid.New()
	bookingID := uuid.New()

	if err := db.Create(&model.Availability{
		ID:        slotID,
		TrainerID: trainerID,
		Date:      datatypes.Date(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime: "09:00",
		EndTime:   "10:00",
	}).Error; err != nil {
		t.Fatalf("seed availability: %v", err)
	}
	if err := db.Create(&model.Booking{
		ID:             bookingID,
		TenantID:       tenantID,
		TrainerID:      trainerID,
		AvailabilityID: slotID,
		ClientName:     "Jane",
		ClientEmail:    "jane@x.com",
		Notes:          "bring mat",
		Status:         model.BookingStatusConfirmed,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	svc := NewBookingService(repository.NewGormBookingRepository(db))

	empty := ""
	cleared := "cleared"
	b, err := svc.Update(context.Background(), tenantID, bookingID, BookingPatch{
		ClientName: &empty,
		Notes:      &cleared,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if b.ClientName != "Jane" {
		t.Fatalf("clientName = %q, want unchanged %q", b.ClientName, "Jane")
	}
	if b.Notes != "cleared" {
		t.Fatalf("notes = %q, want %q", b.Notes, "cleared")
	}
}

func TestBookingService_GetLoadsRelations(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()
	slotID := uuid.New()
	bookingID := uuid.New()

	if err := db.Create(&model.Trainer{ID: trainerID, TenantID: tenantID, Name: "Alice", Email: "a@x.com"}).Error; err != nil {
		t.Fatalf("seed trainer: %v", err)
	}
	if err := db.Create(&model.Availability{
		ID:        slotID,
		TrainerID: trainerID,
		Date:      datatypes.Date(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime: "09:00",
		EndTime:   "10:00",
	}).Error; err != nil {
		t.Fatalf("seed availability: %v", err)
	}
	if err := db.Create(&model.Booking{
		ID:             bookingID,
		TenantID:       tenantID,
		TrainerID:      trainerID,
		AvailabilityID: slotID,
		ClientName:     "Jane",
		ClientEmail:    "jane@x.com",
		Status:         model.BookingStatusConfirmed,
	}).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	svc := NewBookingService(repository.NewGormBookingRepository(db))

	b, err := svc.Get(context.Background(), tenantID, bookingID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.Trainer == nil || b.Trainer.Name != "Alice" {
		t.Fatalf("trainer relation not loaded: %+v", b.Trainer)
	}
	if b.Availability == nil || b.Availability.StartTime != "09:00" {
		t.Fatalf("availability relation not loaded: %+v", b.Availability)
	}
}
