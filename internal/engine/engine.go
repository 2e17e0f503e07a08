package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/qwipolabs/marketgraph/internal/config"
	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine/model"
)

var (
	ErrRetailerNotFound = errors.New("retailer not found")
	ErrUnknownStrategy  = errors.New("unknown recommendation type")
)

// Strategy keys, also the keys of the comprehensive result map.
const (
	StrategyCollaborative     = "collaborative"
	StrategyCategoryExpansion = "category_expansion"
	StrategyBrandLoyalty      = "brand_loyalty"
)

func StrategyNames() []string {
	return []string{StrategyCollaborative, StrategyCategoryExpansion, StrategyBrandLoyalty}
}

// Engine runs the recommendation strategies against the graph store. All
// operations are read-only; Engine carries no mutable state, so a single
// instance serves concurrent requests.
type Engine struct {
	Driver driver.GraphDriver
	Config *config.Config
}

func New(d driver.GraphDriver, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{Driver: d, Config: cfg}
}

func (e *Engine) queryTimeout() time.Duration {
	return time.Duration(e.Config.Engine.QueryTimeoutSeconds) * time.Second
}

type strategyResult struct {
	key  string
	recs []model.Recommendation
	err  error
}

// GetComprehensiveRecommendations runs all three strategies for a retailer.
// The retailer must exist; strategies run concurrently since they share no
// state beyond the driver. A failed or timed-out strategy query fails the
// whole call rather than masquerading as an empty list.
func (e *Engine) GetComprehensiveRecommendations(ctx context.Context, retailerID string, limitPerType int) (map[string][]model.Recommendation, error) {
	if limitPerType <= 0 {
		limitPerType = e.Config.Engine.DefaultLimitPerType
	}

	profile, err := e.GetRetailerProfile(ctx, retailerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrRetailerNotFound, retailerID)
	}

	log.Printf("Generating comprehensive recommendations for retailer %s (%s, %d products)",
		retailerID, profile.BusinessType, profile.ProductsBought)

	strategies := map[string]func(context.Context, string, int) ([]model.Recommendation, error){
		StrategyCollaborative:     e.GetCollaborativeRecommendations,
		StrategyCategoryExpansion: e.GetCategoryExpansionRecommendations,
		StrategyBrandLoyalty:      e.GetBrandLoyaltyRecommendations,
	}

	results := make(chan strategyResult, len(strategies))
	for key, run := range strategies {
		go func(key string, run func(context.Context, string, int) ([]model.Recommendation, error)) {
			recs, err := run(ctx, retailerID, limitPerType)
			results <- strategyResult{key: key, recs: recs, err: err}
		}(key, run)
	}

	recommendations := make(map[string][]model.Recommendation, len(strategies))
	for range strategies {
		res := <-results
		if res.err != nil {
			return nil, fmt.Errorf("%s recommendations for retailer %s: %w", res.key, retailerID, res.err)
		}
		recommendations[res.key] = res.recs
	}

	total := 0
	for _, recs := range recommendations {
		total += len(recs)
	}
	log.Printf("Generated %d recommendations for retailer %s", total, retailerID)

	return recommendations, nil
}

// GetRecommendationsByType runs a single strategy, validating the retailer
// exists first.
func (e *Engine) GetRecommendationsByType(ctx context.Context, retailerID, recType string, limit int) ([]model.Recommendation, error) {
	var run func(context.Context, string, int) ([]model.Recommendation, error)
	switch recType {
	case StrategyCollaborative:
		run = e.GetCollaborativeRecommendations
	case StrategyCategoryExpansion:
		run = e.GetCategoryExpansionRecommendations
	case StrategyBrandLoyalty:
		run = e.GetBrandLoyaltyRecommendations
	default:
		return nil, fmt.Errorf("%w: %s (valid: %v)", ErrUnknownStrategy, recType, StrategyNames())
	}

	if limit <= 0 {
		limit = e.Config.Engine.DefaultLimitPerType
	}

	profile, err := e.GetRetailerProfile(ctx, retailerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrRetailerNotFound, retailerID)
	}

	return run(ctx, retailerID, limit)
}
