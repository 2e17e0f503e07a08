package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/qwipolabs/marketgraph/internal/config"
	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine"
)

func main() {
	retailerID := flag.String("retailer", "", "retailer id to export recommendations for")
	limitPerType := flag.Int("limit", 0, "recommendations per strategy (0 = config default)")
	output := flag.String("out", "", "output file (default: timestamped name in the working directory)")
	configPath := flag.String("config", "config/config.toml", "config file path")
	flag.Parse()

	if *retailerID == "" {
		log.Fatal("Usage: export -retailer <retailer_id> [-limit N] [-out file.json]")
	}

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

	ctx := context.Background()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	defer d.Close(ctx)

	eng := engine.New(d, cfg)

	recommendations, err := eng.GetComprehensiveRecommendations(ctx, *retailerID, *limitPerType)
	if err != nil {
		log.Fatalf("Failed to generate recommendations for retailer %s: %v", *retailerID, err)
	}

	export := engine.BuildExport(recommendations, *retailerID)
	path, err := engine.WriteExport(export, *output)
	if err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}

	log.Printf("Exported %d recommendations for retailer %s to %s",
		export.Summary.TotalRecommendations, *retailerID, path)
}
