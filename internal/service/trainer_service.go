package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
)

type CreateTrainerInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
	Bio   string `json:"bio"`
}

// TrainerPatch enumerates the updatable trainer fields; only supplied
// keys are written.
type TrainerPatch struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
	Bio   *string `json:"bio"`
}

type TrainerService struct {
	trainers repository.TrainerRepository
}

func NewTrainerService(trainers repository.TrainerRepository) *TrainerService {
	return &TrainerService{trainers: trainers}
}

func (s *TrainerService) List(ctx context.Context, tenantID uuid.UUID) ([]model.Trainer, error) {
	trainers, err := s.trainers.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return trainers, nil
}

func (s *TrainerService) Create(ctx context.Context, tenantID uuid.UUID, in CreateTrainerInput) (*model.Trainer, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	t := model.Trainer{
		TenantID: tenantID,
		Name:     in.Name,
		Email:    in.Email,
		Bio:      in.Bio,
		RateCard: datatypes.JSON([]byte(`{}`)),
	}
	if err := s.trainers.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("create trainer: %w", err)
	}
	return &t, nil
}

func (s *TrainerService) getOwned(ctx context.Context, tenantID, id uuid.UUID) (*model.Trainer, error) {
	t, err := s.trainers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get trainer: %w", err)
	}
	if t.TenantID != tenantID {
		return nil, ErrNotFound
	}
	return t, nil
}

// Get returns the trainer with availability in date order and bookings,
// each booking carrying its slot.
func (s *TrainerService) Get(ctx context.Context, tenantID, id uuid.UUID) (*model.Trainer, error) {
	if _, err := s.getOwned(ctx, tenantID, id); err != nil {
		return nil, err
	}

	t, err := s.trainers.GetWithSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get trainer schedule: %w", err)
	}
	return t, nil
}

func (s *TrainerService) Update(ctx context.Context, tenantID, id uuid.UUID, patch TrainerPatch) (*model.Trainer, error) {
	if err := validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if _, err := s.getOwned(ctx, tenantID, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}

	if len(fields) > 0 {
		if err := s.trainers.Updates(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update trainer: %w", err)
		}
	}

	return s.trainers.GetByID(ctx, id)
}

// Delete is unconditional: no dependents guard, the FK constraints take
// care of availability and bookings.
func (s *TrainerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, tenantID, id); err != nil {
		return err
	}

	if err := s.trainers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}
	return nil
}
