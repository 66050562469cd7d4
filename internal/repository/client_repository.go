package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
)

type ClientRepository interface {
	// The one active custom-pricing record for an email/trainer pair
	// within a tenant. Email is expected to be lower-cased already.
	FindActive(ctx context.Context, tenantID, trainerID uuid.UUID, email string) (*model.Client, error)
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) FindActive(ctx context.Context, tenantID, trainerID uuid.UUID, email string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("trainer_id = ?", trainerID).
		Where("email = ?", email).
		Where("is_active = ?", true).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
