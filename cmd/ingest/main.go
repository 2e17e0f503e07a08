package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/qwipolabs/marketgraph/internal/config"
	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/ingestion"
	"github.com/qwipolabs/marketgraph/internal/llm"
)

func main() {
	retailersFile := flag.String("retailers", "fixtures/retailers.json", "retailers fixture file")
	transactionsFile := flag.String("transactions", "fixtures/transactions.json", "transactions fixture file")
	configPath := flag.String("config", "config/config.toml", "config file path")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to defaults and env vars", *configPath, err)
		cfg = config.Default()
	}

	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		cfg.Neo4j.URI = uri
	}
	if user := os.Getenv("NEO4J_USERNAME"); user != "" {
		cfg.Neo4j.User = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		cfg.Neo4j.Password = pass
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.LLM.Model = model
	}
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}

	ctx := context.Background()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	defer d.Close(ctx)

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	service := ingestion.NewService(d, ingestion.NewExtractor(llmClient), cfg.Ingestion)

	stats, err := service.Run(ctx, *retailersFile, *transactionsFile)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	log.Printf("Done: %d nodes, %d relationships from %d documents",
		stats.Nodes, stats.Relationships, stats.Documents)
}
