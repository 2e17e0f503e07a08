package engine

// confidenceTier is one rung of a strategy's scoring ladder. Ladders are
// evaluated top-down: the first rung whose threshold the evidence count meets
// decides the score.
type confidenceTier struct {
	Threshold int64
	Score     func(avgSimilarity float64) float64
}

type confidenceLadder []confidenceTier

// Evaluate returns the score of the first matching rung. Ladders must end with
// a Threshold of 0 so every count matches some rung.
func (l confidenceLadder) Evaluate(count int64, avgSimilarity float64) float64 {
	for _, tier := range l {
		if count >= tier.Threshold {
			return tier.Score(avgSimilarity)
		}
	}
	return 0
}

func fixedScore(score float64) func(float64) float64 {
	return func(float64) float64 { return score }
}

// More similar retailers and higher average overlap both push the score up.
var collaborativeLadder = confidenceLadder{
	{Threshold: 5, Score: func(s float64) float64 { return 0.8 + s/10.0 }},
	{Threshold: 3, Score: func(s float64) float64 { return 0.6 + s/15.0 }},
	{Threshold: 2, Score: func(s float64) float64 { return 0.4 + s/20.0 }},
	{Threshold: 0, Score: func(s float64) float64 { return 0.2 + s/25.0 }},
}

var categoryExpansionLadder = confidenceLadder{
	{Threshold: 10, Score: fixedScore(0.7)},
	{Threshold: 7, Score: fixedScore(0.6)},
	{Threshold: 5, Score: fixedScore(0.5)},
	{Threshold: 0, Score: fixedScore(0.4)},
}

var brandLoyaltyLadder = confidenceLadder{
	{Threshold: 8, Score: fixedScore(0.8)},
	{Threshold: 5, Score: fixedScore(0.7)},
	{Threshold: 3, Score: fixedScore(0.6)},
	{Threshold: 0, Score: fixedScore(0.5)},
}
