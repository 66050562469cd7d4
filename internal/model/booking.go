package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookings
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	TenantID       uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	TrainerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"trainerId"`
	AvailabilityID uuid.UUID `gorm:"type:uuid;not null;index" json:"availabilityId"`

	ClientName  string `gorm:"type:varchar(255);not null" json:"clientName"`
	ClientEmail string `gorm:"type:varchar(255);not null" json:"clientEmail"`
	Notes       string `gorm:"type:text" json:"notes"`

	Status BookingStatus `gorm:"type:varchar(32);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Tenant       *Tenant       `gorm:"foreignKey:TenantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Trainer      *Trainer      `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"trainer,omitempty"`
	Availability *Availability `gorm:"foreignKey:AvailabilityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"availability,omitempty"`
}
