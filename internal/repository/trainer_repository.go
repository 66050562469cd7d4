package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
)

type TrainerRepository interface {
	// All trainers of a tenant, no pagination.
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Trainer, error)
	// Create a trainer.
	Create(ctx context.Context, trainer *model.Trainer) error
	// Fetch a trainer by ID, relations not loaded.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	// Fetch a trainer with availability (date ASC) and bookings, each
	// booking carrying its availability slot.
	GetWithSchedule(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	// Apply a partial field update.
	Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error
	// Delete by ID; dependent rows follow the FK constraints.
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormTrainerRepository struct {
	db *gorm.DB
}

func NewGormTrainerRepository(db *gorm.DB) *GormTrainerRepository {
	return &GormTrainerRepository{db: db}
}

func (r *GormTrainerRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Trainer, error) {
	var trainers []model.Trainer
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *GormTrainerRepository) Create(ctx context.Context, trainer *model.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

func (r *GormTrainerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	var t model.Trainer
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTrainerRepository) GetWithSchedule(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	var t model.Trainer
	err := r.db.WithContext(ctx).
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Preload("Bookings.Availability").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTrainerRepository) Updates(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Trainer{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *GormTrainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Trainer{}, "id = ?", id).Error
}
