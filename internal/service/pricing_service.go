package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitsched/booking-platform/internal/repository"
)

// PricingCheck is the response of the custom-pricing lookup.
type PricingCheck struct {
	HasCustomPricing bool        `json:"hasCustomPricing"`
	ClientInfo       *ClientInfo `json:"clientInfo,omitempty"`
}

type ClientInfo struct {
	Name         string         `json:"name"`
	PricingTable datatypes.JSON `json:"pricingTable,omitempty"`
	PricingNotes string         `json:"pricingNotes"`
}

type PricingService struct {
	clients repository.ClientRepository
}

func NewPricingService(clients repository.ClientRepository) *PricingService {
	return &PricingService{clients: clients}
}

// Check looks up the active custom-pricing record for the caller's email
// and the given trainer. Email matching is case-insensitive; stored
// records are normalized on write.
func (s *PricingService) Check(ctx context.Context, tenantID, trainerID uuid.UUID, email string) (PricingCheck, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	c, err := s.clients.FindActive(ctx, tenantID, trainerID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PricingCheck{HasCustomPricing: false}, nil
		}
		return PricingCheck{}, fmt.Errorf("find client: %w", err)
	}

	return PricingCheck{
		HasCustomPricing: hasPricingTable(c.PricingTable),
		ClientInfo: &ClientInfo{
			Name:         c.Name,
			PricingTable: c.PricingTable,
			PricingNotes: c.PricingNotes,
		},
	}, nil
}

func hasPricingTable(table datatypes.JSON) bool {
	s := strings.TrimSpace(string(table))
	return s != "" && s != "null"
}
