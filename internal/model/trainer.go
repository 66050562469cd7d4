package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// trainers — the bookable service provider.
type Trainer struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	TenantID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenantId"`
	ProviderTypeID *uuid.UUID `gorm:"type:uuid;index" json:"providerTypeId,omitempty"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);not null" json:"email"`
	Bio   string `gorm:"type:text" json:"bio"`

	// Per-trainer pricing matrix; empty object for new trainers.
	RateCard datatypes.JSON `gorm:"type:jsonb" json:"rateCard,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Tenant       *Tenant       `gorm:"foreignKey:TenantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProviderType *ProviderType `gorm:"foreignKey:ProviderTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	Availability []Availability `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"availability,omitempty"`
	Bookings     []Booking      `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"bookings,omitempty"`
}
