package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// clients — a per-trainer custom-pricing relationship for an end user.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index" json:"trainerId"`

	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Stored lower-cased; lookups normalize the session email the same way.
	Email string `gorm:"type:varchar(255);not null;index" json:"email"`

	// No column default: gorm skips zero-value fields that have one, so an
	// explicit false would never reach the insert.
	IsActive bool `gorm:"not null;index" json:"isActive"`

	PricingTable datatypes.JSON `gorm:"type:jsonb" json:"pricingTable,omitempty"`
	PricingNotes string         `gorm:"type:text" json:"pricingNotes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Tenant  *Tenant  `gorm:"foreignKey:TenantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Trainer *Trainer `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
