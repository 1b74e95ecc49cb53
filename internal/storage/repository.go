// ABOUTME: Repository interface for BMI record storage.
// ABOUTME: Defines the contract for inserting, listing, and aggregating records.
package storage

import (
	"github.com/harperreed/bmi/internal/models"
)

// Repository defines the storage interface for BMI records.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Record operations
	CreateRecord(r *models.Record) error
	GetRecord(id int64) (*models.Record, error)
	ListRecords(limit int) ([]*models.Record, error)

	// Aggregates
	Stats() (*models.Stats, error)

	// Export
	GetAllData() (*ExportData, error)

	// Lifecycle
	Close() error
}
