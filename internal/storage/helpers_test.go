// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and addRecord for isolated database instances.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/bmi/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "bmi.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func addRecord(t *testing.T, db *DB, heightCm, weightKg float64, name string) *models.Record {
	t.Helper()
	r := models.NewRecord(heightCm, weightKg, name)
	if err := db.CreateRecord(r); err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}
	return r
}
