// ABOUTME: Export functionality for BMI records.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/bmi/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for BMI data.
type ExportData struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at"`
	Tool       string           `json:"tool" yaml:"tool"`
	Stats      *models.Stats    `json:"stats" yaml:"stats"`
	Records    []*models.Record `json:"records" yaml:"records"`
}

// GetAllData retrieves every record plus the aggregate report, oldest first.
func (d *DB) GetAllData() (*ExportData, error) {
	records, err := d.ListRecords(0)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	// ListRecords is newest first; exports read chronologically.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	stats, err := d.Stats()
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "bmi",
		Stats:      stats,
		Records:    records,
	}, nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	if data.Records == nil {
		data.Records = []*models.Record{}
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with records grouped by category.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                  `yaml:"version"`
		ExportedAt string                  `yaml:"exported_at"`
		Tool       string                  `yaml:"tool"`
		Stats      *models.Stats           `yaml:"stats"`
		Records    map[string][]yamlRecord `yaml:"records"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Stats:      data.Stats,
		Records:    make(map[string][]yamlRecord),
	}

	for _, r := range data.Records {
		c := string(r.Category())
		yamlData.Records[c] = append(yamlData.Records[c], yamlRecord{
			ID:       r.ID,
			Name:     r.Name,
			HeightCm: r.HeightCm,
			WeightKg: r.WeightKg,
			BMI:      roundBMI(r.BMI),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlRecord struct {
	ID       int64   `yaml:"id"`
	Name     string  `yaml:"name"`
	HeightCm float64 `yaml:"height_cm"`
	WeightKg float64 `yaml:"weight_kg"`
	BMI      string  `yaml:"bmi"`
}

func roundBMI(bmi float64) string {
	return fmt.Sprintf("%.2f", bmi)
}

// ExportMarkdown exports records as a Markdown table followed by a summary.
func ExportMarkdown(repo Repository) (string, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# BMI Export - %s\n\n", data.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	sb.WriteString("## Records\n\n")
	sb.WriteString("| ID | Name | Height (cm) | Weight (kg) | BMI | Category |\n")
	sb.WriteString("|----|------|-------------|-------------|-----|----------|\n")
	for _, r := range data.Records {
		sb.WriteString(fmt.Sprintf("| %d | %s | %g | %g | %.2f | %s |\n",
			r.ID, markdownCell(r.Name), r.HeightCm, r.WeightKg, r.BMI, r.Category()))
	}

	s := data.Stats
	sb.WriteString("\n## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Total records: %d\n", s.TotalRecords))
	sb.WriteString(fmt.Sprintf("- Underweight: %d\n", s.Underweight))
	sb.WriteString(fmt.Sprintf("- Normal: %d\n", s.Normal))
	sb.WriteString(fmt.Sprintf("- Overweight: %d\n", s.Overweight))
	sb.WriteString(fmt.Sprintf("- Tallest client: %s\n", s.Tallest))
	sb.WriteString(fmt.Sprintf("- Heaviest client: %s\n", s.Heaviest))

	return sb.String(), nil
}

var markdownCellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// markdownCell escapes pipes and flattens line breaks so a value stays in
// one table cell.
func markdownCell(s string) string {
	return markdownCellReplacer.Replace(s)
}
