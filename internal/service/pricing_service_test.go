package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/fitsched/booking-platform/internal/model"
	"github.com/fitsched/booking-platform/internal/repository"
)

func TestPricingService_NoMatch(t *testing.T) {
	db := newTestDB(t)

	svc := NewPricingService(repository.NewGormClientRepository(db))

	check, err := svc.Check(context.Background(), uuid.New(), uuid.New(), "nobody@x.com")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if check.HasCustomPricing {
		t.Fatalf("hasCustomPricing = true, want false")
	}
	if check.ClientInfo != nil {
		t.Fatalf("clientInfo = %+v, want nil", check.ClientInfo)
	}
}

func TestPricingService_InactiveRecordIgnored(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()

	if err := db.Create(&model.Client{
		ID:           uuid.New(),
		TenantID:     tenantID,
		TrainerID:    trainerID,
		Name:         "Jane",
		Email:        "jane@x.com",
		IsActive:     false,
		PricingTable: datatypes.JSON([]byte(`{"session":40}`)),
	}).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := NewPricingService(repository.NewGormClientRepository(db))

	check, err := svc.Check(context.Background(), tenantID, trainerID, "jane@x.com")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if check.HasCustomPricing {
		t.Fatalf("inactive record produced custom pricing")
	}
}

func TestPricingService_MatchWithPricingTable(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()

	if err := db.Create(&model.Client{
		ID:           uuid.New(),
		TenantID:     tenantID,
		TrainerID:    trainerID,
		Name:         "Jane",
		Email:        "jane@x.com",
		IsActive:     true,
		PricingTable: datatypes.JSON([]byte(`{"session":40}`)),
		PricingNotes: "loyalty rate",
	}).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := NewPricingService(repository.NewGormClientRepository(db))

	// Session email in mixed case; lookup must normalize.
	check, err := svc.Check(context.Background(), tenantID, trainerID, "Jane@X.com")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !check.HasCustomPricing {
		t.Fatalf("hasCustomPricing = false, want true")
	}
	if check.ClientInfo == nil {
		t.Fatalf("clientInfo missing")
	}
	if check.ClientInfo.Name != "Jane" {
		t.Fatalf("name = %q, want %q", check.ClientInfo.Name, "Jane")
	}
	if check.ClientInfo.PricingNotes != "loyalty rate" {
		t.Fatalf("pricingNotes = %q", check.ClientInfo.PricingNotes)
	}
	if string(check.ClientInfo.PricingTable) != `{"session":40}` {
		t.Fatalf("pricingTable = %s", check.ClientInfo.PricingTable)
	}
}

func TestPricingService_MatchWithoutPricingTable(t *testing.T) {
	db := newTestDB(t)

	tenantID := uuid.New()
	trainerID := uuid.New()

	if err := db.Create(&model.Client{
		ID:        uuid.New(),
		TenantID:  tenantID,
		TrainerID: trainerID,
		Name:      "Jane",
		Email:     "jane@x.com",
		IsActive:  true,
	}).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := NewPricingService(repository.NewGormClientRepository(db))

	check, err := svc.Check(context.Background(), tenantID, trainerID, "jane@x.com")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if check.HasCustomPricing {
		t.Fatalf("hasCustomPricing = true for empty pricing table")
	}
	if check.ClientInfo == nil || check.ClientInfo.Name != "Jane" {
		t.Fatalf("clientInfo not echoed for matched record")
	}
}
