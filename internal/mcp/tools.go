// ABOUTME: MCP tool implementations for BMI records.
// ABOUTME: Provides add, list, and aggregate statistics tools.
package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/harperreed/bmi/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_record",
		Description: "Record a height and weight measurement and compute its BMI",
	}, s.handleAddRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List recent BMI records, newest first",
	}, s.handleListRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get BMI category counts plus the tallest and heaviest client",
	}, s.handleGetStats)
}

// Tool input/output types

type addRecordInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimetres"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	Name     string  `json:"name,omitempty" jsonschema:"Client name, defaults to unknown"`
}

type recordOutput struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Message  string  `json:"message"`
}

type listRecordsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type getStatsInput struct{}

type statsOutput struct {
	TotalRecords   int64  `json:"total_records"`
	Underweight    int64  `json:"underweight"`
	Normal         int64  `json:"normal"`
	Overweight     int64  `json:"overweight"`
	TallestClient  string `json:"tallest_client"`
	HeaviestClient string `json:"heaviest_client"`
}

// Tool handlers

func (s *Server) handleAddRecord(ctx context.Context, req *mcp.CallToolRequest, input addRecordInput) (*mcp.CallToolResult, recordOutput, error) {
	r := models.NewRecord(input.HeightCm, input.WeightKg, input.Name)

	// JSON cannot carry an infinite BMI back to the caller.
	if math.IsInf(r.BMI, 0) || math.IsNaN(r.BMI) {
		return nil, recordOutput{}, fmt.Errorf("height must be non-zero: %v", input.HeightCm)
	}

	if err := s.repo.CreateRecord(r); err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to save record: %w", err)
	}

	return nil, recordOutput{
		ID:       r.ID,
		Name:     r.Name,
		HeightCm: r.HeightCm,
		WeightKg: r.WeightKg,
		BMI:      r.BMI,
		Category: string(r.Category()),
		Message: fmt.Sprintf("Added %s: height %g cm, weight %g kg, BMI: %.2f",
			r.Name, r.HeightCm, r.WeightKg, r.BMI),
	}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	records, err := s.repo.ListRecords(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No records found."}, nil
	}

	return nil, map[string]interface{}{"records": records}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, statsOutput, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, statsOutput{}, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return nil, toStatsOutput(stats), nil
}

func toStatsOutput(st *models.Stats) statsOutput {
	out := statsOutput{
		TotalRecords: st.TotalRecords,
		Underweight:  st.Underweight,
		Normal:       st.Normal,
		Overweight:   st.Overweight,
	}
	if st.Tallest != nil {
		out.TallestClient = st.Tallest.String()
	}
	if st.Heaviest != nil {
		out.HeaviestClient = st.Heaviest.String()
	}
	return out
}
