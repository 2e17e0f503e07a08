package ingestion

// Node labels the extraction schema allows.
const (
	NodeRetailer      = "Retailer"
	NodeProduct       = "Product"
	NodeCategory      = "Category"
	NodeSupplier      = "Supplier"
	NodeBrand         = "Brand"
	NodeLocation      = "Location"
	NodePurchaseOrder = "PurchaseOrder"
)

// Relationship types the extraction schema allows.
const (
	RelPurchases            = "PURCHASES"
	RelSupplies             = "SUPPLIES"
	RelBelongsTo            = "BELONGS_TO"
	RelLocatedIn            = "LOCATED_IN"
	RelCompetesWith         = "COMPETES_WITH"
	RelFrequentlyBoughtWith = "FREQUENTLY_BOUGHT_WITH"
	RelSubstitutes          = "SUBSTITUTES"
	RelSeasonalWith         = "SEASONAL_WITH"
)

func AllowedNodeTypes() []string {
	return []string{
		NodeRetailer, NodeProduct, NodeCategory, NodeSupplier,
		NodeBrand, NodeLocation, NodePurchaseOrder,
	}
}

func AllowedRelationshipTypes() []string {
	return []string{
		RelPurchases, RelSupplies, RelBelongsTo, RelLocatedIn,
		RelCompetesWith, RelFrequentlyBoughtWith, RelSubstitutes, RelSeasonalWith,
	}
}

// Node properties the extractor is asked to pull from narratives.
func AllowedNodeProperties() []string {
	return []string{
		"name", "business_type", "location", "size", "annual_revenue",
		"customer_segment", "price", "category", "brand", "quantity",
		"total_amount", "margin",
	}
}

func isAllowedNodeType(t string) bool {
	for _, allowed := range AllowedNodeTypes() {
		if t == allowed {
			return true
		}
	}
	return false
}

func isAllowedRelationshipType(t string) bool {
	for _, allowed := range AllowedRelationshipTypes() {
		if t == allowed {
			return true
		}
	}
	return false
}
