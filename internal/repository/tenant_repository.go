package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/model"
)

type TenantRepository interface {
	// Resolve a tenant by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*model.Tenant, error)
}

type GormTenantRepository struct {
	db *gorm.DB
}

func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

func (r *GormTenantRepository) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	var t model.Tenant
	if err := r.db.WithContext(ctx).First(&t, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
