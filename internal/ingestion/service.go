package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/qwipolabs/marketgraph/internal/config"
	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/mockdata"
)

// Service runs the batch ingestion pipeline: fixture files -> narrative
// documents -> LLM extraction -> graph merge.
type Service struct {
	Driver    driver.GraphDriver
	Extractor *Extractor
	Config    config.IngestionConfig
}

func NewService(d driver.GraphDriver, extractor *Extractor, cfg config.IngestionConfig) *Service {
	return &Service{
		Driver:    d,
		Extractor: extractor,
		Config:    cfg,
	}
}

type Stats struct {
	Documents     int `json:"documents"`
	FailedBatches int `json:"failed_batches"`
	Nodes         int `json:"nodes"`
	Relationships int `json:"relationships"`
}

// ExtractBatches processes documents in fixed-size batches. A failed document
// is logged and skipped so one bad extraction does not sink the run; a short
// pause between batches keeps the provider's rate limiter happy.
func (s *Service) ExtractBatches(ctx context.Context, documents []Document) ([]GraphDocument, int) {
	batchSize := s.Config.BatchSize
	if batchSize <= 0 {
		batchSize = 5
	}

	var graphDocs []GraphDocument
	failed := 0
	totalBatches := (len(documents) + batchSize - 1) / batchSize

	for i := 0; i < len(documents); i += batchSize {
		end := i + batchSize
		if end > len(documents) {
			end = len(documents)
		}
		batch := documents[i:end]
		batchNum := i/batchSize + 1

		log.Printf("Processing batch %d/%d (%d documents)", batchNum, totalBatches, len(batch))

		for _, doc := range batch {
			gd, err := s.Extractor.ExtractGraph(ctx, doc)
			if err != nil {
				log.Printf("Extraction failed for retailer %s: %v", doc.RetailerID, err)
				failed++
				continue
			}
			graphDocs = append(graphDocs, gd)
		}

		if end < len(documents) && s.Config.BatchDelaySeconds > 0 {
			time.Sleep(time.Duration(s.Config.BatchDelaySeconds) * time.Second)
		}
	}

	return graphDocs, failed
}

// IngestGraphDocuments merges extracted nodes and relationships into the
// graph. Nodes merge on (label, id); relationships merge on the endpoint pair,
// so a repeat PURCHASES between the same retailer and product overwrites the
// edge properties instead of accumulating transaction history.
func (s *Service) IngestGraphDocuments(ctx context.Context, graphDocs []GraphDocument) (Stats, error) {
	var stats Stats
	stats.Documents = len(graphDocs)

	for _, gd := range graphDocs {
		for _, node := range gd.Nodes {
			query := fmt.Sprintf(driver.MergeNodeQuery, node.Type)
			props := node.Properties
			if props == nil {
				props = map[string]interface{}{}
			}
			_, err := s.Driver.ExecuteQuery(ctx, query, map[string]interface{}{
				"id":         node.ID,
				"name":       node.ID,
				"properties": props,
			})
			if err != nil {
				return stats, fmt.Errorf("failed to merge node %s:%s: %w", node.Type, node.ID, err)
			}
			stats.Nodes++
		}

		for _, rel := range gd.Relationships {
			query := fmt.Sprintf(driver.MergeRelationshipQuery, rel.SourceType, rel.TargetType, rel.Type)
			props := rel.Properties
			if props == nil {
				props = map[string]interface{}{}
			}
			_, err := s.Driver.ExecuteQuery(ctx, query, map[string]interface{}{
				"source_id":  rel.SourceID,
				"target_id":  rel.TargetID,
				"properties": props,
			})
			if err != nil {
				return stats, fmt.Errorf("failed to merge relationship %s-[%s]->%s: %w",
					rel.SourceID, rel.Type, rel.TargetID, err)
			}
			stats.Relationships++
		}
	}

	return stats, nil
}

// Run executes the full pipeline from fixture files.
func (s *Service) Run(ctx context.Context, retailersFile, transactionsFile string) (Stats, error) {
	retailers, transactions, err := loadFixtures(retailersFile, transactionsFile)
	if err != nil {
		return Stats{}, err
	}
	log.Printf("Loaded %d retailers and %d transactions", len(retailers), len(transactions))

	if err := s.Driver.SetupConstraints(ctx); err != nil {
		return Stats{}, fmt.Errorf("failed to set up constraints: %w", err)
	}

	documents := PrepareDocuments(retailers, transactions, s.Config.MaxTransactionsPerDoc)
	log.Printf("Prepared %d documents", len(documents))

	graphDocs, failed := s.ExtractBatches(ctx, documents)

	stats, err := s.IngestGraphDocuments(ctx, graphDocs)
	if err != nil {
		return stats, err
	}
	stats.FailedBatches = failed

	log.Printf("Ingestion complete: %d nodes, %d relationships (%d documents failed extraction)",
		stats.Nodes, stats.Relationships, failed)

	return stats, nil
}

func loadFixtures(retailersFile, transactionsFile string) ([]mockdata.Retailer, []mockdata.Transaction, error) {
	retailerData, err := os.ReadFile(retailersFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read retailers file: %w", err)
	}
	var retailers []mockdata.Retailer
	if err := json.Unmarshal(retailerData, &retailers); err != nil {
		return nil, nil, fmt.Errorf("failed to parse retailers file: %w", err)
	}

	transactionData, err := os.ReadFile(transactionsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read transactions file: %w", err)
	}
	var transactions []mockdata.Transaction
	if err := json.Unmarshal(transactionData, &transactions); err != nil {
		return nil, nil, fmt.Errorf("failed to parse transactions file: %w", err)
	}

	return retailers, transactions, nil
}
