// ABOUTME: Aggregate statistics over all BMI records.
// ABOUTME: Computes category counts and tallest/heaviest clients in one query.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/harperreed/bmi/internal/models"
)

// statsQuery counts categories in a single pass and picks the tallest and
// heaviest client with scalar subqueries. Ties go to the lowest Id.
// The normal bucket stops at 24.9 and overweight starts at 25.
const statsQuery = `
	SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN Bmi < 18.5 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN Bmi >= 18.5 AND Bmi <= 24.9 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN Bmi >= 25 THEN 1 ELSE 0 END), 0),
		(SELECT Name FROM BmiRecords ORDER BY HeightCm DESC, Id ASC LIMIT 1),
		(SELECT HeightCm FROM BmiRecords ORDER BY HeightCm DESC, Id ASC LIMIT 1),
		(SELECT Name FROM BmiRecords ORDER BY WeightKg DESC, Id ASC LIMIT 1),
		(SELECT WeightKg FROM BmiRecords ORDER BY WeightKg DESC, Id ASC LIMIT 1)
	FROM BmiRecords
`

// Stats runs the aggregate report query. An empty table yields zero counts
// and nil Tallest/Heaviest.
func (d *DB) Stats() (*models.Stats, error) {
	var s models.Stats
	var tallestName, heaviestName sql.NullString
	var tallestHeight, heaviestWeight sql.NullFloat64

	err := d.db.QueryRow(statsQuery).Scan(
		&s.TotalRecords,
		&s.Underweight,
		&s.Normal,
		&s.Overweight,
		&tallestName,
		&tallestHeight,
		&heaviestName,
		&heaviestWeight,
	)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	s.Tallest = extreme(tallestName, tallestHeight)
	s.Heaviest = extreme(heaviestName, heaviestWeight)
	return &s, nil
}

func extreme(name sql.NullString, value sql.NullFloat64) *models.Extreme {
	if !value.Valid {
		return nil
	}
	e := &models.Extreme{Name: models.DefaultName, Value: value.Float64}
	if name.Valid {
		e.Name = name.String
	}
	return e
}
