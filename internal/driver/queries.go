package driver

const (
	GetRetailerProfileQuery = `
		MATCH (r:Retailer {id: $retailer_id})
		OPTIONAL MATCH (r)-[p:PURCHASES]->(prod:Product)
		OPTIONAL MATCH (prod)-[:BELONGS_TO]->(brand:Brand)
		OPTIONAL MATCH (prod)-[:BELONGS_TO]->(cat:Category)
		WITH r,
			COUNT(DISTINCT prod) AS products_bought,
			COUNT(DISTINCT brand) AS brands_used,
			COUNT(DISTINCT cat) AS categories_explored,
			COLLECT(DISTINCT cat.name) AS preferred_categories,
			COLLECT(DISTINCT brand.name) AS preferred_brands
		RETURN r.name AS retailer_name,
			r.location AS location,
			r.business_type AS business_type,
			r.size AS size,
			r.customer_segment AS segment,
			products_bought,
			brands_used,
			categories_explored,
			preferred_categories,
			preferred_brands
	`

	ListRetailersQuery = `
		MATCH (r:Retailer)
		RETURN r.id AS retailer_id, r.name AS retailer_name,
			r.location AS location, r.business_type AS business_type,
			r.size AS size
		ORDER BY r.name
		LIMIT $limit
	`

	// Collaborative filtering: retailers sharing at least two purchased products
	// with the target vote for products the target has not bought yet.
	CollaborativeRecommendationsQuery = `
		MATCH (target:Retailer {id: $retailer_id})
		MATCH (target)-[:PURCHASES]->(purchased:Product)
		MATCH (similar:Retailer)-[:PURCHASES]->(purchased)
		WHERE similar <> target
		WITH target, similar, COUNT(DISTINCT purchased) AS common_purchases
		WHERE common_purchases >= 2
		MATCH (similar)-[:PURCHASES]->(recommended:Product)
		WHERE NOT (target)-[:PURCHASES]->(recommended)
		OPTIONAL MATCH (recommended)-[:BELONGS_TO]->(brand:Brand)
		OPTIONAL MATCH (recommended)-[:BELONGS_TO]->(category:Category)
		OPTIONAL MATCH (supplier:Supplier)-[:SUPPLIES]->(recommended)
		WITH recommended, brand, category, supplier,
			COUNT(DISTINCT similar) AS similar_retailer_count,
			AVG(common_purchases) AS avg_similarity,
			AVG(CASE WHEN recommended.price IS NOT NULL THEN toFloat(recommended.price) END) AS avg_price,
			AVG(CASE WHEN recommended.margin IS NOT NULL THEN toFloat(recommended.margin) END) AS avg_margin
		RETURN recommended.name AS product_name,
			COALESCE(brand.name, recommended.brand, 'Unknown') AS brand,
			COALESCE(category.name, recommended.category, 'Unknown') AS category,
			COALESCE(supplier.name, recommended.supplier, 'Unknown') AS supplier,
			similar_retailer_count,
			avg_similarity,
			avg_price,
			avg_margin
		ORDER BY similar_retailer_count DESC, avg_similarity DESC
	`

	// Category expansion: popular products whose effective category is outside
	// the target's current category set. The purchase traversal is required, so
	// a retailer without history gets no expansion candidates. Effective
	// category prefers the BELONGS_TO relationship and falls back to the flat
	// node property.
	CategoryExpansionQuery = `
		MATCH (target:Retailer {id: $retailer_id})-[:PURCHASES]->(purchased:Product)
		OPTIONAL MATCH (purchased)-[:BELONGS_TO]->(purchased_cat:Category)
		WITH target, COLLECT(DISTINCT COALESCE(purchased_cat.name, purchased.category)) AS current_categories
		MATCH (other:Retailer)-[:PURCHASES]->(popular:Product)
		WHERE other <> target
		OPTIONAL MATCH (popular)-[:BELONGS_TO]->(new_cat:Category)
		WITH target, current_categories, popular,
			COALESCE(new_cat.name, popular.category) AS category_name,
			COUNT(DISTINCT other) AS popularity_score
		WHERE category_name IS NOT NULL
			AND NOT category_name IN current_categories
			AND popularity_score >= 3
		OPTIONAL MATCH (popular)-[:BELONGS_TO]->(brand:Brand)
		OPTIONAL MATCH (supplier:Supplier)-[:SUPPLIES]->(popular)
		WITH popular, brand, supplier, category_name, popularity_score,
			target.business_type AS business_type,
			target.size AS retailer_size,
			AVG(CASE WHEN popular.price IS NOT NULL THEN toFloat(popular.price) END) AS avg_price,
			AVG(CASE WHEN popular.margin IS NOT NULL THEN toFloat(popular.margin) END) AS avg_margin
		RETURN popular.name AS product_name,
			COALESCE(brand.name, popular.brand, 'Unknown') AS brand,
			category_name AS category,
			COALESCE(supplier.name, popular.supplier, 'Unknown') AS supplier,
			popularity_score,
			business_type,
			retailer_size,
			avg_price,
			avg_margin
		ORDER BY popularity_score DESC
	`

	// Brand loyalty: unpurchased products of brands the target already buys,
	// kept only when at least two other retailers purchase them.
	BrandLoyaltyQuery = `
		MATCH (target:Retailer {id: $retailer_id})-[:PURCHASES]->(purchased:Product)
		OPTIONAL MATCH (purchased)-[:BELONGS_TO]->(preferred_brand:Brand)
		WITH target, COLLECT(DISTINCT COALESCE(preferred_brand.name, purchased.brand)) AS preferred_brands
		UNWIND preferred_brands AS brand_name
		MATCH (brand_product:Product)
		WHERE brand_name IS NOT NULL
			AND (brand_product.brand = brand_name OR EXISTS((brand_product)-[:BELONGS_TO]->(:Brand {name: brand_name})))
			AND NOT (target)-[:PURCHASES]->(brand_product)
		MATCH (other:Retailer)-[:PURCHASES]->(brand_product)
		WHERE other <> target
		OPTIONAL MATCH (brand_product)-[:BELONGS_TO]->(category:Category)
		OPTIONAL MATCH (supplier:Supplier)-[:SUPPLIES]->(brand_product)
		WITH brand_name, brand_product, category, supplier,
			COUNT(DISTINCT other) AS product_popularity,
			AVG(CASE WHEN brand_product.price IS NOT NULL THEN toFloat(brand_product.price) END) AS avg_price,
			AVG(CASE WHEN brand_product.margin IS NOT NULL THEN toFloat(brand_product.margin) END) AS avg_margin
		WHERE product_popularity >= 2
		RETURN brand_product.name AS product_name,
			brand_name AS brand,
			COALESCE(category.name, brand_product.category, 'Unknown') AS category,
			COALESCE(supplier.name, brand_product.supplier, 'Unknown') AS supplier,
			product_popularity,
			avg_price,
			avg_margin
		ORDER BY product_popularity DESC
	`

	CountNodesQuery = `
		MATCH (n) RETURN count(n) AS total
	`

	MergeNodeQuery = `
		MERGE (n:%s {id: $id})
		SET n.name = $name
		SET n += $properties
	`

	MergeRelationshipQuery = `
		MATCH (source:%s {id: $source_id})
		MATCH (target:%s {id: $target_id})
		MERGE (source)-[r:%s]->(target)
		SET r += $properties
	`
)
