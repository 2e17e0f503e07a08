package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRetailers(t *testing.T) {
	g := NewGenerator(42)
	retailers := g.GenerateRetailers(30)

	require.Len(t, retailers, 30)

	seen := make(map[string]bool)
	for _, r := range retailers {
		assert.NotEmpty(t, r.Name)
		assert.Contains(t, []string{"Small", "Medium", "Large"}, r.Size)
		assert.Contains(t, []string{"Budget", "Mid-range", "Premium"}, r.CustomerSegment)
		assert.Greater(t, r.AnnualRevenue, 0)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Equal(t, "retailer_001", retailers[0].ID)
	assert.Equal(t, "retailer_030", retailers[29].ID)
}

func TestGenerateTransactions(t *testing.T) {
	g := NewGenerator(42)
	retailers := g.GenerateRetailers(10)
	transactions := g.GenerateTransactions(retailers, 200)

	require.Len(t, transactions, 200)

	retailerIDs := make(map[string]bool)
	for _, r := range retailers {
		retailerIDs[r.ID] = true
	}

	for _, txn := range transactions {
		assert.True(t, retailerIDs[txn.RetailerID])
		assert.NotEmpty(t, txn.TransactionID)
		assert.NotEmpty(t, txn.ProductName)
		assert.NotEmpty(t, txn.Brand)
		assert.NotEmpty(t, txn.Category)
		assert.NotEmpty(t, txn.Supplier)
		assert.Greater(t, txn.Quantity, 0)
		assert.InDelta(t, txn.UnitPrice*float64(txn.Quantity), txn.TotalAmount, 1e-9)
		assert.Contains(t, []string{"Cash", "Credit_15", "Credit_30", "Credit_45"}, txn.PaymentTerms)
	}
}

func TestGeneratorDeterministicForSeed(t *testing.T) {
	first := NewGenerator(7).GenerateRetailers(20)
	second := NewGenerator(7).GenerateRetailers(20)

	assert.Equal(t, first, second)
}

func TestBudgetRetailersSkipNicheBrands(t *testing.T) {
	g := NewGenerator(1)
	budget := Retailer{ID: "retailer_001", Size: "Small", CustomerSegment: "Budget"}

	catalog := productCatalog()
	for i := 0; i < 200; i++ {
		brand := g.brandForRetailer(budget)
		assert.Greater(t, catalog[brand].MarketShare, 20,
			"budget retailer picked niche brand %s", brand)
	}
}
