package main

import (
	"flag"
	"log"
	"time"

	"github.com/qwipolabs/marketgraph/internal/mockdata"
)

func main() {
	retailerCount := flag.Int("retailers", 50, "number of retailers to generate")
	transactionCount := flag.Int("transactions", 2000, "number of transactions to generate")
	retailersFile := flag.String("retailers-out", "fixtures/retailers.json", "retailers output file")
	transactionsFile := flag.String("transactions-out", "fixtures/transactions.json", "transactions output file")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := mockdata.NewGenerator(*seed)

	retailers := g.GenerateRetailers(*retailerCount)
	transactions := g.GenerateTransactions(retailers, *transactionCount)

	if err := mockdata.WriteFixtures(retailers, transactions, *retailersFile, *transactionsFile); err != nil {
		log.Fatalf("Failed to write fixtures: %v", err)
	}

	log.Printf("Generated %d retailers and %d transactions", len(retailers), len(transactions))
}
