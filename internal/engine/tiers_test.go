package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollaborativeLadder(t *testing.T) {
	// One similar retailer with average overlap 2: 0.2 + 2/25 = 0.28,
	// under the 0.3 floor applied by the strategy.
	assert.InDelta(t, 0.28, collaborativeLadder.Evaluate(1, 2), 1e-9)

	assert.InDelta(t, 0.4+2.0/20, collaborativeLadder.Evaluate(2, 2), 1e-9)
	assert.InDelta(t, 0.6+2.5/15, collaborativeLadder.Evaluate(3, 2.5), 1e-9)
	assert.InDelta(t, 0.6+3.0/15, collaborativeLadder.Evaluate(4, 3), 1e-9)
	assert.InDelta(t, 0.8+3.0/10, collaborativeLadder.Evaluate(5, 3), 1e-9)
	assert.InDelta(t, 0.8+4.0/10, collaborativeLadder.Evaluate(12, 4), 1e-9)
}

func TestCategoryExpansionLadder(t *testing.T) {
	assert.Equal(t, 0.4, categoryExpansionLadder.Evaluate(3, 0))
	assert.Equal(t, 0.4, categoryExpansionLadder.Evaluate(4, 0))
	assert.Equal(t, 0.5, categoryExpansionLadder.Evaluate(5, 0))
	assert.Equal(t, 0.6, categoryExpansionLadder.Evaluate(7, 0))
	assert.Equal(t, 0.6, categoryExpansionLadder.Evaluate(9, 0))
	assert.Equal(t, 0.7, categoryExpansionLadder.Evaluate(10, 0))
	assert.Equal(t, 0.7, categoryExpansionLadder.Evaluate(50, 0))
}

func TestBrandLoyaltyLadder(t *testing.T) {
	assert.Equal(t, 0.5, brandLoyaltyLadder.Evaluate(2, 0))
	assert.Equal(t, 0.6, brandLoyaltyLadder.Evaluate(3, 0))
	assert.Equal(t, 0.7, brandLoyaltyLadder.Evaluate(5, 0))
	assert.Equal(t, 0.7, brandLoyaltyLadder.Evaluate(7, 0))
	assert.Equal(t, 0.8, brandLoyaltyLadder.Evaluate(8, 0))
}

func TestLadderEvaluatesTopDown(t *testing.T) {
	// A count matching several rungs takes the highest one.
	ladder := confidenceLadder{
		{Threshold: 10, Score: fixedScore(0.9)},
		{Threshold: 5, Score: fixedScore(0.5)},
		{Threshold: 0, Score: fixedScore(0.1)},
	}
	assert.Equal(t, 0.9, ladder.Evaluate(15, 0))
	assert.Equal(t, 0.5, ladder.Evaluate(5, 0))
	assert.Equal(t, 0.1, ladder.Evaluate(1, 0))
}
