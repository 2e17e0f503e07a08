package engine

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwipolabs/marketgraph/internal/driver"
)

func collaborativeDriver(records ...*neo4j.Record) *MockDriver {
	return &MockDriver{
		Results: map[string]neo4j.EagerResult{
			driver.CollaborativeRecommendationsQuery: {Records: records},
		},
	}
}

func TestCollaborative_ConfidenceFloor(t *testing.T) {
	// 1 similar retailer, avg similarity 2: 0.2 + 2/25 = 0.28 <= 0.3, dropped.
	mockDriver := collaborativeDriver(
		collaborativeRecord("Maggi Soup Mixes", 1, 2, 10),
	)

	e := New(mockDriver, nil)

	recs, err := e.GetCollaborativeRecommendations(context.Background(), "retailer_001", 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCollaborative_ScoresAndClamp(t *testing.T) {
	mockDriver := collaborativeDriver(
		// 5 retailers, similarity 3: 0.8 + 0.3 = 1.1 clamped to 1.0
		collaborativeRecord("Maggi Tomato Ketchup", 5, 3, 28),
		// 3 retailers, similarity 2.5: 0.6 + 2.5/15
		collaborativeRecord("Maggi Hot & Sweet Sauce", 3, 2.5, 10),
		// 2 retailers, similarity 2: 0.4 + 0.1 = 0.5
		collaborativeRecord("Maggi Chicken Noodles", 2, 2, 10),
	)

	e := New(mockDriver, nil)

	recs, err := e.GetCollaborativeRecommendations(context.Background(), "retailer_001", 10)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Maggi Tomato Ketchup", recs[0].ProductName)
	assert.Equal(t, 1.0, recs[0].ConfidenceScore)
	assert.InDelta(t, 0.6+2.5/15, recs[1].ConfidenceScore, 1e-9)
	assert.InDelta(t, 0.5, recs[2].ConfidenceScore, 1e-9)

	for _, rec := range recs {
		assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, rec.ConfidenceScore, 1.0)
		assert.Equal(t, "Collaborative Filtering", rec.RecommendationType)
	}
}

func TestCollaborative_SortedByConfidenceThenCount(t *testing.T) {
	mockDriver := collaborativeDriver(
		// Same tier (>=5), higher similarity wins; confidence ties break on count.
		collaborativeRecord("Product A", 5, 1.0, 10), // 0.8 + 0.1 = 0.9
		collaborativeRecord("Product B", 6, 1.0, 10), // 0.9, higher count
		collaborativeRecord("Product C", 5, 0.5, 10), // 0.85
	)

	e := New(mockDriver, nil)

	recs, err := e.GetCollaborativeRecommendations(context.Background(), "retailer_001", 10)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Product B", recs[0].ProductName)
	assert.Equal(t, "Product A", recs[1].ProductName)
	assert.Equal(t, "Product C", recs[2].ProductName)
}

func TestCollaborative_LimitTruncation(t *testing.T) {
	mockDriver := collaborativeDriver(
		collaborativeRecord("Product A", 6, 2, 10),
		collaborativeRecord("Product B", 5, 2, 10),
		collaborativeRecord("Product C", 4, 2, 10),
	)

	e := New(mockDriver, nil)

	recs, err := e.GetCollaborativeRecommendations(context.Background(), "retailer_001", 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestCollaborative_ReasoningAndEvidence(t *testing.T) {
	mockDriver := collaborativeDriver(
		collaborativeRecord("Maggi Tomato Ketchup", 4, 2.5, 28),
	)

	e := New(mockDriver, nil)

	recs, err := e.GetCollaborativeRecommendations(context.Background(), "retailer_001", 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Contains(t, rec.Reasoning[0], "4 similar retailers")
	assert.Contains(t, rec.Reasoning[1], "2.5 common products")
	// Margin over 20 earns the margin note.
	assert.Contains(t, rec.Reasoning[2], "28.0%")

	assert.Equal(t, int64(4), rec.GraphEvidence["similar_retailers_count"])
	assert.Equal(t, 2.5, rec.GraphEvidence["avg_similarity_score"])

	require.NotNil(t, rec.Price)
	assert.Equal(t, 45.0, *rec.Price)
	require.NotNil(t, rec.ProfitMargin)
	assert.Equal(t, 28.0, *rec.ProfitMargin)
}

func TestCollaborative_NoMarginNoteAtOrBelow20(t *testing.T) {
	mockDriver := collaborativeDriver(
		collaborativeRecord("Marie Gold", 4, 2.5, 20),
	)

	e := New(mockDriver, nil)

	recs, err := e.GetCollaborativeRecommendations(context.Background(), "retailer_001", 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].Reasoning, 2)
}
