package engine

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/qwipolabs/marketgraph/internal/engine/model"
)

// BuildExport renders a recommendation set into the portable export document.
func BuildExport(recommendations map[string][]model.Recommendation, retailerID string) model.Export {
	export := model.Export{
		RetailerID:          retailerID,
		GenerationTimestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: model.ExportSummary{
			CollaborativeCount:     len(recommendations[StrategyCollaborative]),
			CategoryExpansionCount: len(recommendations[StrategyCategoryExpansion]),
			BrandLoyaltyCount:      len(recommendations[StrategyBrandLoyalty]),
		},
		Recommendations: make(map[string][]model.Recommendation, len(recommendations)),
	}

	for recType, recs := range recommendations {
		if recs == nil {
			recs = []model.Recommendation{}
		}
		export.Recommendations[recType] = recs
		export.Summary.TotalRecommendations += len(recs)
	}

	return export
}

// WriteExport persists an export document as indented JSON. An empty
// outputFile derives a timestamped filename from the retailer id.
func WriteExport(export model.Export, outputFile string) (string, error) {
	if outputFile == "" {
		outputFile = fmt.Sprintf("recommendations_%s_%s.json",
			export.RetailerID, time.Now().Format("20060102_150405"))
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	log.Printf("Recommendations exported to %s", outputFile)
	return outputFile, nil
}
