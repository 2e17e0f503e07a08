package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine/model"
)

// GetCategoryExpansionRecommendations suggests popular products from
// categories the retailer has not bought into yet. Unlike collaborative
// filtering there is no post-hoc confidence cutoff; the popularity >= 3 gate
// in the query is the only filter.
func (e *Engine) GetCategoryExpansionRecommendations(ctx context.Context, retailerID string, limit int) ([]model.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, e.queryTimeout())
	defer cancel()

	result, err := e.Driver.ExecuteQuery(ctx, driver.CategoryExpansionQuery, map[string]interface{}{
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

		popularity := recInt(record, "popularity_score")
		businessType := recString(record, "business_type")
		confidence := categoryExpansionLadder.Evaluate(popularity, 0)

		reasoning := []string{
			fmt.Sprintf("New category opportunity: %s", recString(record, "category")),
			fmt.Sprintf("Popular with %d other retailers", popularity),
			fmt.Sprintf("Suitable for %s businesses", businessType),
		}

		avgMargin, hasMargin := recFloat(record, "avg_margin")
		if hasMargin && avgMargin > 25 {
			reasoning = append(reasoning, fmt.Sprintf("Attractive margin potential: %.1f%%", avgMargin))
		}

		rec := model.Recommendation{
			ProductName:        productName,
			Brand:              recString(record, "brand"),
			Category:           recString(record, "category"),
			Supplier:           recString(record, "supplier"),
			ConfidenceScore:    confidence,
			Reasoning:          reasoning,
			RecommendationType: "Category Expansion",
			GraphEvidence: map[string]interface{}{
				"category_popularity":    popularity,
				"business_type_match":    businessType,
				"retailer_size":          recString(record, "retailer_size"),
				"confidence_calculation": "Based on category adoption by similar businesses",
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
