package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
)

// BookingPatch enumerates the client-editable booking fields. Empty
// ClientName/ClientEmail values are dropped rather than applied; Notes is
// applied whenever the key is present, so it can be cleared.
type BookingPatch struct {
	ClientName  *string `json:"clientName" validate:"omitempty,max=255"`
	ClientEmail *string `json:"clientEmail" validate:"omitempty,email"`
	Notes       *string `json:"notes"`
}

type BookingService struct {
	bookings repository.BookingRepository
}

func NewBookingService(bookings repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

func (s *BookingService) getOwned(ctx context.Context, tenantID, id uuid.UUID) (*model.Booking, error) {
	b, err := s.bookings.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.TenantID != tenantID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *BookingService) Get(ctx context.Context, tenantID, id uuid.UUID) (*model.Booking, error) {
	return s.getOwned(ctx, tenantID, id)
}

func (s *BookingService) Update(ctx context.Context, tenantID, id uuid.UUID, patch BookingPatch) (*model.Booking, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if _, err := s.getOwned(ctx, tenantID, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.ClientName != nil && *patch.ClientName != "" {
		fields["client_name"] = *patch.ClientName
	}
	if patch.ClientEmail != nil && *patch.ClientEmail != "" {
		fields["client_email"] = *patch.ClientEmail
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		if err := s.bookings.Updates(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update booking: %w", err)
		}
	}

	b, err := s.bookings.GetWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	return b, nil
}

// Cancel removes the booking and decrements its slot counter atomically.
func (s *BookingService) Cancel(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, tenantID, id); err != nil {
		return err
	}

	if err := s.bookings.Cancel(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Gone between the ownership check and the transaction.
			return ErrNotFound
		}
		return fmt.Errorf("cancel booking: %w", err)
	}
	return nil
}
