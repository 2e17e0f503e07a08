package ingestion

import (
	"fmt"
	"strings"

	"github.com/qwipolabs/marketgraph/internal/mockdata"
)

// Document is one retailer's purchase narrative prepared for extraction.
type Document struct {
	RetailerID       string
	RetailerName     string
	Content          string
	TransactionCount int
}

// PrepareDocuments builds one compact narrative per retailer, capped at
// maxTransactions purchases to keep extraction calls small.
func PrepareDocuments(retailers []mockdata.Retailer, transactions []mockdata.Transaction, maxTransactions int) []Document {
	byRetailer := make(map[string][]mockdata.Transaction)
	for _, t := range transactions {
		byRetailer[t.RetailerID] = append(byRetailer[t.RetailerID], t)
	}

	documents := make([]Document, 0, len(retailers))
	for _, r := range retailers {
		txns := byRetailer[r.ID]
		if len(txns) > maxTransactions {
			txns = txns[:maxTransactions]
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Retailer: %s (ID: %s)\n", r.Name, r.ID)
		fmt.Fprintf(&b, "Type: %s in %s\n", r.BusinessType, r.Location)
		fmt.Fprintf(&b, "Size: %s, Revenue: %d\n", r.Size, r.AnnualRevenue)
		fmt.Fprintf(&b, "Customer Segment: %s\n\nRecent Purchases:", r.CustomerSegment)

		for i, t := range txns {
			date := t.PurchaseDate
			if len(date) > 10 {
				date = date[:10]
			}
			fmt.Fprintf(&b, "\n%d. %s (%s) - %s\n   Qty: %d, Amount: %.0f\n   Supplier: %s, Date: %s",
				i+1, t.ProductName, t.Brand, t.Category, t.Quantity, t.TotalAmount, t.Supplier, date)
		}

		documents = append(documents, Document{
			RetailerID:       r.ID,
			RetailerName:     r.Name,
			Content:          b.String(),
			TransactionCount: len(txns),
		})
	}

	return documents
}
