// ABOUTME: Tests for export functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGetAllDataOrdering(t *testing.T) {
	db := setupTestDB(t)

	addRecord(t, db, 170, 70, "first")
	addRecord(t, db, 180, 80, "second")

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(data.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(data.Records))
	}
	if data.Records[0].Name != "first" {
		t.Errorf("expected oldest first, got %s", data.Records[0].Name)
	}
	if data.Stats == nil || data.Stats.TotalRecords != 2 {
		t.Errorf("expected stats with 2 records, got %+v", data.Stats)
	}
}

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	addRecord(t, db, 170, 70, "Alice")

	out, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(out, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if export.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", export.Version)
	}
	if export.Tool != "bmi" {
		t.Errorf("Expected tool bmi, got %s", export.Tool)
	}
	if len(export.Records) != 1 || export.Records[0].Name != "Alice" {
		t.Errorf("unexpected records: %+v", export.Records)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	db := setupTestDB(t)

	out, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(out), `"records": []`) {
		t.Errorf("expected empty records array, got:\n%s", out)
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	addRecord(t, db, 100, 17, "thin")
	addRecord(t, db, 170, 70, "Alice")

	out, err := ExportYAML(db)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	records, ok := parsed["records"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected records map, got %T", parsed["records"])
	}
	for _, c := range []string{"underweight", "normal"} {
		if _, ok := records[c]; !ok {
			t.Errorf("expected %s group in YAML export", c)
		}
	}
	if !strings.Contains(string(out), "bmi: \"24.22\"") {
		t.Errorf("expected rounded BMI in YAML, got:\n%s", out)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	addRecord(t, db, 170, 70, "Alice")

	md, err := ExportMarkdown(db)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	for _, want := range []string{
		"# BMI Export",
		"| 1 | Alice | 170 | 70 | 24.22 | normal |",
		"- Total records: 1",
		"- Tallest client: Alice, 170",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in markdown:\n%s", want, md)
		}
	}
}

func TestExportMarkdownEmpty(t *testing.T) {
	db := setupTestDB(t)

	md, err := ExportMarkdown(db)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(md, "- Tallest client: -") {
		t.Errorf("expected placeholder for missing tallest client:\n%s", md)
	}
}

func TestExportZeroHeightRecord(t *testing.T) {
	db := setupTestDB(t)
	addRecord(t, db, 170, 70, "Alice")
	addRecord(t, db, 0, 70, "Zero")

	out, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	var raw struct {
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if len(raw.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(raw.Records))
	}
	if _, ok := raw.Records[0]["bmi"].(float64); !ok {
		t.Errorf("expected numeric bmi for Alice, got %v", raw.Records[0]["bmi"])
	}
	if v, ok := raw.Records[1]["bmi"]; !ok || v != nil {
		t.Errorf("expected null bmi for zero height, got %v", v)
	}

	if _, err := ExportYAML(db); err != nil {
		t.Errorf("ExportYAML failed: %v", err)
	}
	md, err := ExportMarkdown(db)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(md, "| 2 | Zero | 0 | 70 | +Inf | overweight |") {
		t.Errorf("expected zero-height row in markdown:\n%s", md)
	}
}

func TestExportMarkdownEscapesName(t *testing.T) {
	db := setupTestDB(t)
	addRecord(t, db, 170, 70, "A|B\nC\r\nD")

	md, err := ExportMarkdown(db)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(md, `| 1 | A\|B C D | 170 | 70 | 24.22 | normal |`) {
		t.Errorf("expected escaped name cell in markdown:\n%s", md)
	}
}

func TestMarkdownCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alice", "Alice"},
		{"a|b", `a\|b`},
		{"line1\nline2", "line1 line2"},
		{"crlf\r\nend", "crlf end"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := markdownCell(tt.input); got != tt.want {
			t.Errorf("markdownCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
