package engine

import (
	"context"

	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine/model"
)

// GetRetailerProfile aggregates a retailer's purchase footprint in a single
// traversal. Returns nil (not an error) when no retailer node matches the id;
// a retailer with zero purchases still yields a profile with zero counts.
func (e *Engine) GetRetailerProfile(ctx context.Context, retailerID string) (*model.RetailerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, e.queryTimeout())
	defer cancel()

	result, err := e.Driver.ExecuteQuery(ctx, driver.GetRetailerProfileQuery, map[string]interface{}{
		"retailer_id": retailerID,
	})
	if err != nil {
		return nil, err
	}

	if len(result.Records) == 0 {
		return nil, nil
	}

	rec := result.Records[0]
	profile := &model.RetailerProfile{
		RetailerName:        recString(rec, "retailer_name"),
		Location:            recString(rec, "location"),
		BusinessType:        recString(rec, "business_type"),
		Size:                recString(rec, "size"),
		Segment:             recString(rec, "segment"),
		ProductsBought:      recInt(rec, "products_bought"),
		BrandsUsed:          recInt(rec, "brands_used"),
		CategoriesExplored:  recInt(rec, "categories_explored"),
		PreferredCategories: recStringSlice(rec, "preferred_categories"),
		PreferredBrands:     recStringSlice(rec, "preferred_brands"),
	}
	if profile.PreferredCategories == nil {
		profile.PreferredCategories = []string{}
	}
	if profile.PreferredBrands == nil {
		profile.PreferredBrands = []string{}
	}

	return profile, nil
}

// ListRetailers returns up to limit retailers ordered by name.
func (e *Engine) ListRetailers(ctx context.Context, limit int) ([]model.RetailerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, e.queryTimeout())
	defer cancel()

	result, err := e.Driver.ExecuteQuery(ctx, driver.ListRetailersQuery, map[string]interface{}{
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	retailers := make([]model.RetailerInfo, 0, len(result.Records))
	for _, rec := range result.Records {
		retailers = append(retailers, model.RetailerInfo{
			RetailerID:   recString(rec, "retailer_id"),
			RetailerName: recString(rec, "retailer_name"),
			Location:     recString(rec, "location"),
			BusinessType: recString(rec, "business_type"),
			Size:         recString(rec, "size"),
		})
	}

	return retailers, nil
}
