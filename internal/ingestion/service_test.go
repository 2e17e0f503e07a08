package ingestion

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwipolabs/marketgraph/internal/config"
	"github.com/qwipolabs/marketgraph/internal/mockdata"
)

func testConfig() config.IngestionConfig {
	return config.IngestionConfig{
		BatchSize:             2,
		MaxTransactionsPerDoc: 3,
		BatchDelaySeconds:     0,
	}
}

func TestPrepareDocuments(t *testing.T) {
	retailers := []mockdata.Retailer{
		{ID: "retailer_001", Name: "City Mart", BusinessType: "Supermarket",
			Location: "Delhi", Size: "Medium", AnnualRevenue: 2000000, CustomerSegment: "Mid-range"},
	}
	transactions := []mockdata.Transaction{
		{RetailerID: "retailer_001", ProductName: "Parle-G", Brand: "Parle", Category: "Food",
			Supplier: "Parle Products", Quantity: 40, TotalAmount: 1000, PurchaseDate: "2026-03-14T10:00:00Z"},
		{RetailerID: "retailer_001", ProductName: "Monaco", Brand: "Parle", Category: "Food",
			Supplier: "Parle Products", Quantity: 20, TotalAmount: 600, PurchaseDate: "2026-04-02T10:00:00Z"},
	}

	docs := PrepareDocuments(retailers, transactions, 3)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "retailer_001", doc.RetailerID)
	assert.Equal(t, 2, doc.TransactionCount)
	assert.Contains(t, doc.Content, "City Mart")
	assert.Contains(t, doc.Content, "Supermarket in Delhi")
	assert.Contains(t, doc.Content, "Parle-G (Parle) - Food")
	assert.Contains(t, doc.Content, "Date: 2026-04-02")
}

func TestPrepareDocuments_CapsTransactions(t *testing.T) {
	retailers := []mockdata.Retailer{{ID: "retailer_001", Name: "City Mart"}}
	var transactions []mockdata.Transaction
	for i := 0; i < 10; i++ {
		transactions = append(transactions, mockdata.Transaction{
			RetailerID:  "retailer_001",
			ProductName: fmt.Sprintf("Product %d", i),
		})
	}

	docs := PrepareDocuments(retailers, transactions, 3)
	require.Len(t, docs, 1)
	assert.Equal(t, 3, docs[0].TransactionCount)
	assert.NotContains(t, docs[0].Content, "Product 3")
}

func TestExtractBatches_ContinuesOnFailure(t *testing.T) {
	good := `{"nodes": [{"id": "Maggi", "type": "Brand"}], "relationships": []}`
	mockLLM := &MockLLMClient{
		// Second document fails, run continues.
		ResponseQueue: []string{good, "", good},
	}

	service := NewService(&MockGraphDriver{}, NewExtractor(mockLLM), testConfig())

	docs := []Document{
		{RetailerID: "retailer_001", Content: "a"},
		{RetailerID: "retailer_002", Content: "b"},
		{RetailerID: "retailer_003", Content: "c"},
	}

	graphDocs, failed := service.ExtractBatches(context.Background(), docs)
	assert.Len(t, graphDocs, 2)
	assert.Equal(t, 1, failed)
}

func TestIngestGraphDocuments(t *testing.T) {
	mockDriver := &MockGraphDriver{}
	service := NewService(mockDriver, NewExtractor(&MockLLMClient{}), testConfig())

	graphDocs := []GraphDocument{
		{
			Nodes: []GraphNode{
				{ID: "retailer_001", Type: "Retailer", Properties: map[string]interface{}{"location": "Mumbai"}},
				{ID: "Parle-G", Type: "Product"},
			},
			Relationships: []GraphRelationship{
				{SourceID: "retailer_001", SourceType: "Retailer", TargetID: "Parle-G", TargetType: "Product",
					Type: "PURCHASES", Properties: map[string]interface{}{"quantity": 40}},
			},
		},
	}

	stats, err := service.IngestGraphDocuments(context.Background(), graphDocs)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 1, stats.Relationships)
	require.Len(t, mockDriver.Executed, 3)

	// Node merge interpolates the label and passes id/name/properties.
	first := mockDriver.Executed[0]
	assert.Contains(t, first.Query, "MERGE (n:Retailer {id: $id})")
	assert.Equal(t, "retailer_001", first.Params["id"])
	assert.Equal(t, "retailer_001", first.Params["name"])

	// Relationship merge binds both endpoints and the relationship type.
	rel := mockDriver.Executed[2]
	assert.Contains(t, rel.Query, "MERGE (source)-[r:PURCHASES]->(target)")
	assert.True(t, strings.Contains(rel.Query, "(source:Retailer") && strings.Contains(rel.Query, "(target:Product"))
	assert.Equal(t, "retailer_001", rel.Params["source_id"])
	assert.Equal(t, "Parle-G", rel.Params["target_id"])
}

func TestIngestGraphDocuments_DriverFailure(t *testing.T) {
	mockDriver := &MockGraphDriver{Err: fmt.Errorf("connection refused")}
	service := NewService(mockDriver, NewExtractor(&MockLLMClient{}), testConfig())

	graphDocs := []GraphDocument{
		{Nodes: []GraphNode{{ID: "x", Type: "Brand"}}},
	}

	_, err := service.IngestGraphDocuments(context.Background(), graphDocs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to merge node Brand:x")
}
