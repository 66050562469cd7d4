package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
)

// ProviderTypePatch enumerates the updatable fields; only supplied keys
// are written.
type ProviderTypePatch struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Attributes  *json.RawMessage `json:"attributes" validate:"omitempty,json"`
}

// ProviderTypeWithCount is a provider type plus its live trainer count.
type ProviderTypeWithCount struct {
	model.ProviderType
	TrainerCount int64 `json:"trainerCount"`
}

type ProviderTypeService struct {
	types repository.ProviderTypeRepository
}

func NewProviderTypeService(types repository.ProviderTypeRepository) *ProviderTypeService {
	return &ProviderTypeService{types: types}
}

// getOwned fetches the record and enforces tenant ownership. A foreign
// tenant's record answers exactly like an absent one.
func (s *ProviderTypeService) getOwned(ctx context.Context, tenantID, id uuid.UUID) (*model.ProviderType, error) {
	pt, err := s.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get provider type: %w", err)
	}
	if pt.TenantID != tenantID {
		return nil, ErrNotFound
	}
	return pt, nil
}

func (s *ProviderTypeService) Get(ctx context.Context, tenantID, id uuid.UUID) (*ProviderTypeWithCount, error) {
	pt, err := s.getOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	count, err := s.types.CountTrainers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count trainers: %w", err)
	}

	return &ProviderTypeWithCount{ProviderType: *pt, TrainerCount: count}, nil
}

func (s *ProviderTypeService) Update(ctx context.Context, tenantID, id uuid.UUID, patch ProviderTypePatch) (*model.ProviderType, error) {
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
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Attributes != nil {
		fields["attributes"] = []byte(*patch.Attributes)
	}

	if len(fields) > 0 {
		if err := s.types.Updates(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update provider type: %w", err)
		}
	}

	pt, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload provider type: %w", err)
	}
	return pt, nil
}

func (s *ProviderTypeService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, tenantID, id); err != nil {
		return err
	}

	count, err := s.types.CountTrainers(ctx, id)
	if err != nil {
		return fmt.Errorf("count trainers: %w", err)
	}
	if count > 0 {
		return &DependentsError{Count: count}
	}

	if err := s.types.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete provider type: %w", err)
	}
	return nil
}
