package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// availability — a bookable time slot with a live-booking counter.
type Availability struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	TrainerID uuid.UUID `gorm:"type:uuid;not null;index" json:"trainerId"`

	// Calendar date of the slot, no time component.
	Date datatypes.Date `gorm:"type:date;not null;index" json:"date"`

	// Wall-clock "HH:MM" in the tenant's timezone.
	StartTime string `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"endTime"`

	// Must equal the number of live bookings referencing this slot;
	// decremented exactly once per cancellation.
	CurrentBookings int `gorm:"not null;default:0" json:"currentBookings"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Trainer *Trainer `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Availability) TableName() string {
	return "availability"
}
