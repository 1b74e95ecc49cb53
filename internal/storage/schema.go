// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the BmiRecords table.
package storage

// initSchema creates the BmiRecords table if it is missing.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS BmiRecords (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT,
		HeightCm REAL NOT NULL,
		WeightKg REAL NOT NULL,
		Bmi REAL NOT NULL
	);
	`

	_, err := d.db.Exec(schema)
	return err
}
