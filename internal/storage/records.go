// ABOUTME: Record insert and lookup operations for SQLite storage.
// ABOUTME: All statements are parameterized; records are never updated or deleted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/bmi/internal/models"
)

// ErrNotFound is returned when a record lookup matches nothing.
var ErrNotFound = errors.New("not found")

// CreateRecord stores a new record and assigns its ID.
func (d *DB) CreateRecord(r *models.Record) error {
	query := `
		INSERT INTO BmiRecords (Name, HeightCm, WeightKg, Bmi)
		VALUES (?, ?, ?, ?)
	`
	result, err := d.db.Exec(query, r.Name, r.HeightCm, r.WeightKg, r.BMI)
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	r.ID = id
	return nil
}

// GetRecord retrieves a record by ID.
func (d *DB) GetRecord(id int64) (*models.Record, error) {
	query := `
		SELECT Id, Name, HeightCm, WeightKg, Bmi
		FROM BmiRecords
		WHERE Id = ?
	`
	r, err := scanRecord(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

// ListRecords returns records newest first. A limit of zero or less returns
// every record.
func (d *DB) ListRecords(limit int) ([]*models.Record, error) {
	query := `
		SELECT Id, Name, HeightCm, WeightKg, Bmi
		FROM BmiRecords
		ORDER BY Id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var r models.Record
	var name sql.NullString

	if err := row.Scan(&r.ID, &name, &r.HeightCm, &r.WeightKg, &r.BMI); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}

	r.Name = models.DefaultName
	if name.Valid {
		r.Name = name.String
	}
	return &r, nil
}
