package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine/model"
)

// Candidates below this confidence are dropped; it is the strategy's
// precision gate.
const collaborativeConfidenceFloor = 0.3

// GetCollaborativeRecommendations finds products purchased by retailers whose
// purchase history overlaps the target's by at least two products, excluding
// anything the target already buys.
func (e *Engine) GetCollaborativeRecommendations(ctx context.Context, retailerID string, limit int) ([]model.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, e.queryTimeout())
	defer cancel()

	result, err := e.Driver.ExecuteQuery(ctx, driver.CollaborativeRecommendationsQuery, map[string]interface{}{
		"retailer_id": retailerID,
	})
	if err != nil {
		return nil, err
	}

	type candidate struct {
		rec   model.Recommendation
		count int64
	}

	var candidates []candidate
	for _, record := range result.Records {
		productName := recString(record, "product_name")
		if productName == "" {
			continue
		}

		similarCount := recInt(record, "similar_retailer_count")
		avgSimilarity, _ := recFloat(record, "avg_similarity")

		confidence := collaborativeLadder.Evaluate(similarCount, avgSimilarity)
		if confidence <= collaborativeConfidenceFloor {
			continue
		}
		if confidence > 1.0 {
			confidence = 1.0
		}

		reasoning := []string{
			fmt.Sprintf("%d similar retailers have purchased this product", similarCount),
			fmt.Sprintf("Average similarity score: %.1f common products", avgSimilarity),
		}

		avgMargin, hasMargin := recFloat(record, "avg_margin")
		if hasMargin && avgMargin > 20 {
			reasoning = append(reasoning, fmt.Sprintf("Higher profit margin: %.1f%%", avgMargin))
		}

		rec := model.Recommendation{
			ProductName:        productName,
			Brand:              recString(record, "brand"),
			Category:           recString(record, "category"),
			Supplier:           recString(record, "supplier"),
			ConfidenceScore:    confidence,
			Reasoning:          reasoning,
			RecommendationType: "Collaborative Filtering",
			GraphEvidence: map[string]interface{}{
				"similar_retailers_count": similarCount,
				"avg_similarity_score":    avgSimilarity,
				"confidence_calculation":  "Based on retailer similarity and purchase overlap",
			},
		}
		if price, ok := recFloat(record, "avg_price"); ok {
			rec.Price = &price
		}
		if hasMargin {
			rec.ProfitMargin = &avgMargin
		}

		candidates = append(candidates, candidate{rec: rec, count: similarCount})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].rec.ConfidenceScore != candidates[j].rec.ConfidenceScore {
			return candidates[i].rec.ConfidenceScore > candidates[j].rec.ConfidenceScore
		}
		return candidates[i].count > candidates[j].count
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
