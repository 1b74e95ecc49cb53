// ABOUTME: MCP resource implementations for BMI records.
// ABOUTME: Provides bmi://stats and bmi://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	statsURI  = "bmi://stats"
	recentURI = "bmi://recent"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "BMI Statistics",
		Description: "Category counts plus tallest and heaviest client",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent BMI Records",
		Description: "Last 10 BMI records",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return jsonResource(statsURI, toStatsOutput(stats))
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.ListRecords(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	type recentRecord struct {
		ID       int64    `json:"id"`
		Name     string   `json:"name"`
		HeightCm float64  `json:"height_cm"`
		WeightKg float64  `json:"weight_kg"`
		BMI      *float64 `json:"bmi"`
		Category string   `json:"category"`
	}
	result := make([]recentRecord, 0, len(records))
	for _, r := range records {
		result = append(result, recentRecord{
			ID:       r.ID,
			Name:     r.Name,
			HeightCm: r.HeightCm,
			WeightKg: r.WeightKg,
			BMI:      r.FiniteBMI(),
			Category: string(r.Category()),
		})
	}

	return jsonResource(recentURI, map[string]interface{}{
		"records": result,
		"count":   len(result),
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
