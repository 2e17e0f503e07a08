package model

// Recommendation is a single scored product suggestion backed by graph evidence.
// Immutable once a strategy returns it.
type Recommendation struct {
	ProductName        string                 `json:"product_name"`
	Brand              string                 `json:"brand"`
	Category           string                 `json:"category"`
	ConfidenceScore    float64                `json:"confidence_score"`
	Reasoning          []string               `json:"reasoning"`
	RecommendationType string                 `json:"recommendation_type"`
	GraphEvidence      map[string]interface{} `json:"graph_evidence"`
	Price              *float64               `json:"price,omitempty"`
	ProfitMargin       *float64               `json:"profit_margin,omitempty"`
	Supplier           string                 `json:"supplier,omitempty"`
}

// RetailerProfile summarizes a retailer's purchase footprint. Computed on
// demand, never persisted.
type RetailerProfile struct {
	RetailerName        string   `json:"retailer_name"`
	Location            string   `json:"location"`
	BusinessType        string   `json:"business_type"`
	Size                string   `json:"size"`
	Segment             string   `json:"segment"`
	ProductsBought      int64    `json:"products_bought"`
	BrandsUsed          int64    `json:"brands_used"`
	CategoriesExplored  int64    `json:"categories_explored"`
	PreferredCategories []string `json:"preferred_categories"`
	PreferredBrands     []string `json:"preferred_brands"`
}

type RetailerInfo struct {
	RetailerID   string `json:"retailer_id"`
	RetailerName string `json:"retailer_name"`
	Location     string `json:"location"`
	BusinessType string `json:"business_type"`
	Size         string `json:"size"`
}

type ExportSummary struct {
	CollaborativeCount     int `json:"collaborative_count"`
	CategoryExpansionCount int `json:"category_expansion_count"`
	BrandLoyaltyCount      int `json:"brand_loyalty_count"`
	TotalRecommendations   int `json:"total_recommendations"`
}

// Export is the portable document shape for persisted recommendation sets.
type Export struct {
	RetailerID          string                      `json:"retailer_id"`
	GenerationTimestamp string                      `json:"generation_timestamp"`
	Summary             ExportSummary               `json:"recommendation_summary"`
	Recommendations     map[string][]Recommendation `json:"recommendations"`
}
