package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine/model"
)

// GetBrandLoyaltyRecommendations suggests unpurchased products from brands the
// retailer already stocks, ranked by how many other retailers carry them.
func (e *Engine) GetBrandLoyaltyRecommendations(ctx context.Context, retailerID string, limit int) ([]model.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, e.queryTimeout())
	defer cancel()

	result, err := e.Driver.ExecuteQuery(ctx, driver.BrandLoyaltyQuery, map[string]interface{}{
		"retailer_id": retailerID,
	})
	if err != nil {
		return nil, err
	}

	type candidate struct {
		rec        model.Recommendation
		popularity int64
	}

	var candidates []candidate
	for _, record := range result.Records {
		productName := recString(record, "product_name")
		if productName == "" {
			continue
		}

		brand := recString(record, "brand")
		popularity := recInt(record, "product_popularity")
		confidence := brandLoyaltyLadder.Evaluate(popularity, 0)

		reasoning := []string{
			fmt.Sprintf("From your preferred brand: %s", brand),
			fmt.Sprintf("Popular with %d other retailers", popularity),
			"Leverages existing supplier relationships",
		}

		avgMargin, hasMargin := recFloat(record, "avg_margin")
		if hasMargin && avgMargin > 20 {
			reasoning = append(reasoning, fmt.Sprintf("Good profit margin: %.1f%%", avgMargin))
		}

		rec := model.Recommendation{
			ProductName:        productName,
			Brand:              brand,
			Category:           recString(record, "category"),
			Supplier:           recString(record, "supplier"),
			ConfidenceScore:    confidence,
			Reasoning:          reasoning,
			RecommendationType: "Brand Loyalty",
			GraphEvidence: map[string]interface{}{
				"product_popularity":     popularity,
				"brand_loyalty":          "High",
				"supplier_synergy":       "Existing relationship",
				"confidence_calculation": "Based on brand preference and product popularity",
			},
		}
		if price, ok := recFloat(record, "avg_price"); ok {
			rec.Price = &price
		}
		if hasMargin {
			rec.ProfitMargin = &avgMargin
		}

		candidates = append(candidates, candidate{rec: rec, popularity: popularity})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].rec.ConfidenceScore != candidates[j].rec.ConfidenceScore {
			return candidates[i].rec.ConfidenceScore > candidates[j].rec.ConfidenceScore
		}
		return candidates[i].popularity > candidates[j].popularity
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recommendations := make([]model.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recommendations = append(recommendations, c.rec)
	}

	return recommendations, nil
}
