package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory sqlite database with a hand-written,
// sqlite-friendly schema (uuid defaults and timestamptz columns from the
// Postgres models do not translate).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	schema := []string{
		`CREATE TABLE tenants (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE provider_types (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			attributes TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE trainers (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			provider_type_id TEXT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			bio TEXT,
			rate_card TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE availability (
			id TEXT PRIMARY KEY,
			trainer_id TEXT NOT NULL,
			date DATETIME NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			current_bookings INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			trainer_id TEXT NOT NULL,
			availability_id TEXT NOT NULL,
			client_name TEXT NOT NULL,
			client_email TEXT NOT NULL,
			notes TEXT,
			status TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE clients (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			trainer_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			pricing_table TEXT,
			pricing_notes TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}
