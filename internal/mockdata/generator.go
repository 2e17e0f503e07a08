package mockdata

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
)

// Retailer is the fixture shape consumed by the ingestion pipeline.
type Retailer struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BusinessType    string `json:"business_type"`
	Location        string `json:"location"`
	Size            string `json:"size"`
	AnnualRevenue   int    `json:"annual_revenue"`
	CustomerSegment string `json:"customer_segment"`
}

type Transaction struct {
	TransactionID string  `json:"transaction_id"`
	RetailerID    string  `json:"retailer_id"`
	ProductName   string  `json:"product_name"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Supplier      string  `json:"supplier"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	TotalAmount   float64 `json:"total_amount"`
	MarginPercent float64 `json:"margin_percent"`
	PurchaseDate  string  `json:"purchase_date"`
	PaymentTerms  string  `json:"payment_terms"`
}

type catalogProduct struct {
	Name       string
	Price      float64
	Margin     float64
	Popularity int
}

type catalogBrand struct {
	Company     string
	Category    string
	MarketShare int
	Products    []catalogProduct
}

// Generator produces plausible retailer and transaction fixtures using
// weighted random choice. Deterministic for a fixed seed.
type Generator struct {
	rng           *rand.Rand
	catalog       map[string]catalogBrand
	brandNames    []string
	locations     []string
	businessTypes []string
	paymentTerms  []string
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		catalog:    productCatalog(),
		brandNames: catalogBrandNames(),
		locations: []string{
			"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata",
			"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
		},
		businessTypes: []string{
			"Grocery Store", "Supermarket", "Convenience Store",
			"Wholesale Distributor", "Mini Mart", "Departmental Store",
		},
		paymentTerms: []string{"Cash", "Credit_15", "Credit_30", "Credit_45"},
	}
}

func (g *Generator) GenerateRetailers(count int) []Retailer {
	baseNames := []string{
		"Raj General Store", "City Mart", "Fresh Bazaar", "Quick Stop", "Mega Mart",
		"Local Grocery", "Super Saver", "Corner Shop", "Smart Store", "Daily Needs",
		"Wholesale Hub", "Metro Store", "Family Mart", "Express Store", "Prime Shop",
	}

	retailers := make([]Retailer, 0, count)
	for i := 0; i < count; i++ {
		name := baseNames[i%len(baseNames)]
		location := g.locations[g.rng.Intn(len(g.locations))]
		if i >= len(baseNames) {
			name = fmt.Sprintf("%s - %s", name, location)
		}

		size := g.weightedChoice([]string{"Small", "Medium", "Large"}, []int{50, 35, 15})

		retailers = append(retailers, Retailer{
			ID:              fmt.Sprintf("retailer_%03d", i+1),
			Name:            name,
			BusinessType:    g.businessTypes[g.rng.Intn(len(g.businessTypes))],
			Location:        location,
			Size:            size,
			AnnualRevenue:   g.revenueBySize(size),
			CustomerSegment: g.weightedChoice([]string{"Budget", "Mid-range", "Premium"}, []int{40, 45, 15}),
		})
	}

	return retailers
}

func (g *Generator) GenerateTransactions(retailers []Retailer, count int) []Transaction {
	transactions := make([]Transaction, 0, count)
	for i := 0; i < count; i++ {
		retailer := retailers[g.rng.Intn(len(retailers))]

		brandName := g.brandForRetailer(retailer)
		brand := g.catalog[brandName]
		product := g.productByPopularity(brand.Products)

		quantity := g.baseQuantity(retailer, product)
		total := product.Price * float64(quantity)

		transactions = append(transactions, Transaction{
			TransactionID: uuid.New().String(),
			RetailerID:    retailer.ID,
			ProductName:   product.Name,
			Brand:         brandName,
			Category:      brand.Category,
			Supplier:      brand.Company,
			UnitPrice:     product.Price,
			Quantity:      quantity,
			TotalAmount:   total,
			MarginPercent: product.Margin,
			PurchaseDate:  g.purchaseDate().Format(time.RFC3339),
			PaymentTerms:  g.paymentTermsFor(retailer, total),
		})
	}

	return transactions
}

// brandForRetailer filters the catalog by retailer segment: budget stores
// stick to high market-share brands, everyone else carries the full range.
func (g *Generator) brandForRetailer(retailer Retailer) string {
	var suitable []string
	for _, name := range g.brandNames {
		if retailer.CustomerSegment == "Budget" && g.catalog[name].MarketShare <= 20 {
			continue
		}
		suitable = append(suitable, name)
	}
	if len(suitable) == 0 {
		suitable = g.brandNames
	}
	return suitable[g.rng.Intn(len(suitable))]
}

func (g *Generator) productByPopularity(products []catalogProduct) catalogProduct {
	total := 0
	for _, p := range products {
		total += p.Popularity
	}
	pick := g.rng.Intn(total)
	for _, p := range products {
		pick -= p.Popularity
		if pick < 0 {
			return p
		}
	}
	return products[len(products)-1]
}

func (g *Generator) baseQuantity(retailer Retailer, product catalogProduct) int {
	var qty int
	switch retailer.Size {
	case "Large":
		qty = 100 + g.rng.Intn(400)
	case "Medium":
		qty = 25 + g.rng.Intn(75)
	default:
		qty = 5 + g.rng.Intn(20)
	}

	// Expensive items move in smaller quantities, cheap staples in larger.
	switch {
	case product.Price > 200:
		qty = max(1, qty/3)
	case product.Price > 100:
		qty = max(1, qty/2)
	case product.Price < 30:
		qty *= 2
	}

	return qty
}

func (g *Generator) paymentTermsFor(retailer Retailer, total float64) string {
	switch {
	case retailer.Size == "Large" && total > 10000:
		return g.weightedChoice(g.paymentTerms, []int{10, 30, 40, 20})
	case retailer.Size == "Medium" && total > 5000:
		return g.weightedChoice(g.paymentTerms, []int{20, 40, 30, 10})
	default:
		return g.weightedChoice(g.paymentTerms, []int{60, 30, 10, 0})
	}
}

// purchaseDate biases towards recent months.
func (g *Generator) purchaseDate() time.Time {
	var daysBack int
	switch r := g.rng.Float64(); {
	case r < 0.4:
		daysBack = g.rng.Intn(90)
	case r < 0.7:
		daysBack = 90 + g.rng.Intn(90)
	default:
		daysBack = 180 + g.rng.Intn(185)
	}
	return time.Now().AddDate(0, 0, -daysBack)
}

func (g *Generator) revenueBySize(size string) int {
	switch size {
	case "Large":
		return 5000000 + g.rng.Intn(15000000)
	case "Medium":
		return 1200000 + g.rng.Intn(3800000)
	default:
		return 300000 + g.rng.Intn(900000)
	}
}

func (g *Generator) weightedChoice(choices []string, weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := g.rng.Intn(total)
	for i, w := range weights {
		pick -= w
		if pick < 0 {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

// WriteFixtures persists retailers and transactions as indented JSON files.
func WriteFixtures(retailers []Retailer, transactions []Transaction, retailersFile, transactionsFile string) error {
	retailerData, err := json.MarshalIndent(retailers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal retailers: %w", err)
	}
	if err := os.WriteFile(retailersFile, retailerData, 0o644); err != nil {
		return fmt.Errorf("failed to write retailers file: %w", err)
	}

	transactionData, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	if err := os.WriteFile(transactionsFile, transactionData, 0o644); err != nil {
		return fmt.Errorf("failed to write transactions file: %w", err)
	}

	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
