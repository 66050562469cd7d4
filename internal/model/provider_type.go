package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// provider_types — a tenant-scoped category of trainers (e.g. "yoga", "pt").
type ProviderType struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	TenantID uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Free-form presentation attributes (icons, colors, ordering hints).
	// Stored as JSONB in Postgres.
	Attributes datatypes.JSON `gorm:"type:jsonb" json:"attributes,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Tenant   *Tenant   `gorm:"foreignKey:TenantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Trainers []Trainer `gorm:"foreignKey:ProviderTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
