package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
)

type ProviderTypeRepository interface {
	// Fetch a provider type by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProviderType, error)
	// Number of trainers assigned to the provider type.
	CountTrainers(ctx context.Context, id uuid.UUID) (int64, error)
	// Apply a partial field update.
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// Delete by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormProviderTypeRepository struct {
	db *gorm.DB
}

func NewGormProviderTypeRepository(db *gorm.DB) *GormProviderTypeRepository {
	return &GormProviderTypeRepository{db: db}
}

func (r *GormProviderTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProviderType, error) {
	var pt model.ProviderType
	if err := r.db.WithContext(ctx).First(&pt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *GormProviderTypeRepository) CountTrainers(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Trainer{}).
		Where("provider_type_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProviderTypeRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.ProviderType{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *GormProviderTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProviderType{}, "id = ?", id).Error
}
