package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
)

type BookingRepository interface {
	// Fetch a booking with its trainer and availability slot.
	GetWithRelations(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Apply a partial field update.
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// Cancel removes the booking and decrements its availability counter
	// in one transaction. Returns gorm.ErrRecordNotFound when the booking
	// is already gone; nothing is written in that case.
	Cancel(ctx context.Context, id uuid.UUID) error
	// Confirmed bookings whose availability date falls in [from, to),
	// with trainer, availability and tenant loaded.
	ListConfirmedByDateWindow(ctx context.Context, from, to time.Time) ([]model.Booking, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("Trainer").
		Preload("Availability").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *GormBookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-fetch inside the transaction; a concurrent cancel of the same
		// booking makes exactly one of the two fail here.
		var b model.Booking
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Booking{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&model.Availability{}).
			Where("id = ?", b.AvailabilityID).
			UpdateColumn("current_bookings", gorm.Expr("current_bookings - 1")).
			Error
	})
}

func (r *GormBookingRepository) ListConfirmedByDateWindow(ctx context.Context, from, to time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN availability ON availability.id = bookings.availability_id").
		Where("bookings.status = ?", model.BookingStatusConfirmed).
		Where("availability.date >= ? AND availability.date < ?", from, to).
		Preload("Trainer").
		Preload("Availability").
		Preload("Tenant").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
