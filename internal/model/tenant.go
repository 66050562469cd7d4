package model

import (
	"time"

	"github.com/google/uuid"
)

// tenants — the isolation boundary; every other entity belongs to exactly one.
// Never mutated by the API handlers.
type Tenant struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"slug"`
	Name string    `gorm:"type:varchar(255);not null" json:"name"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}
