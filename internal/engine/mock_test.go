package engine

import (
	"context"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// MockDriver serves canned results keyed by query text. Safe for the
// concurrent strategy fan-out.
type MockDriver struct {
	mu       sync.Mutex
	Results  map[string]neo4j.EagerResult
	Errs     map[string]error
	Executed []string
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.mu.Lock()
	m.Executed = append(m.Executed, query)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return neo4j.EagerResult{}, err
	}
	if err, ok := m.Errs[query]; ok {
		return neo4j.EagerResult{}, err
	}
	if result, ok := m.Results[query]; ok {
		return result, nil
	}
	return neo4j.EagerResult{Records: []*neo4j.Record{}}, nil
}

func (m *MockDriver) SetupConstraints(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func (m *MockDriver) ExecutedQueries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Executed))
	copy(out, m.Executed)
	return out
}

func makeRecord(keys []string, values []interface{}) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

var profileKeys = []string{
	"retailer_name", "location", "business_type", "size", "segment",
	"products_bought", "brands_used", "categories_explored",
	"preferred_categories", "preferred_brands",
}

func profileRecord() *neo4j.Record {
	return makeRecord(profileKeys, []interface{}{
		"Raj General Store", "Mumbai", "Grocery Store", "Small", "Budget",
		int64(12), int64(4), int64(3),
		[]interface{}{"Food", "Beverages"},
		[]interface{}{"Maggi", "Parle"},
	})
}

func emptyProfileRecord() *neo4j.Record {
	return makeRecord(profileKeys, []interface{}{
		"Fresh Start Mart", "Pune", "Mini Mart", "Small", "Budget",
		int64(0), int64(0), int64(0),
		[]interface{}{}, []interface{}{},
	})
}

var collaborativeKeys = []string{
	"product_name", "brand", "category", "supplier",
	"similar_retailer_count", "avg_similarity", "avg_price", "avg_margin",
}

func collaborativeRecord(name string, count int64, similarity, margin float64) *neo4j.Record {
	return makeRecord(collaborativeKeys, []interface{}{
		name, "Maggi", "Food", "Nestle",
		count, similarity, 45.0, margin,
	})
}

var categoryKeys = []string{
	"product_name", "brand", "category", "supplier",
	"popularity_score", "business_type", "retailer_size", "avg_price", "avg_margin",
}

func categoryRecord(name, category string, popularity int64, margin float64) *neo4j.Record {
	return makeRecord(categoryKeys, []interface{}{
		name, "Colgate", category, "Colgate-Palmolive",
		popularity, "Grocery Store", "Small", 85.0, margin,
	})
}

var brandKeys = []string{
	"product_name", "brand", "category", "supplier",
	"product_popularity", "avg_price", "avg_margin",
}

func brandRecord(name, brand string, popularity int64, margin float64) *neo4j.Record {
	return makeRecord(brandKeys, []interface{}{
		name, brand, "Food", "Nestle",
		popularity, 16.0, margin,
	})
}
