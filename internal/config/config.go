package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type EngineConfig struct {
	DefaultLimitPerType int `toml:"default_limit_per_type"`
	QueryTimeoutSeconds int `toml:"query_timeout_seconds"`
}

type IngestionConfig struct {
	BatchSize             int `toml:"batch_size"`
	MaxTransactionsPerDoc int `toml:"max_transactions_per_doc"`
	BatchDelaySeconds     int `toml:"batch_delay_seconds"`
}

type Config struct {
	Neo4j     Neo4jConfig     `toml:"neo4j"`
	LLM       LLMConfig       `toml:"llm"`
	Engine    EngineConfig    `toml:"engine"`
	Ingestion IngestionConfig `toml:"ingestion"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config usable without a config file, relying on env overrides.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Neo4j.URI == "" {
		c.Neo4j.URI = "bolt://localhost:7687"
	}
	if c.Neo4j.User == "" {
		c.Neo4j.User = "neo4j"
	}
	if c.Engine.DefaultLimitPerType == 0 {
		c.Engine.DefaultLimitPerType = 5
	}
	if c.Engine.QueryTimeoutSeconds == 0 {
		c.Engine.QueryTimeoutSeconds = 30
	}
	if c.Ingestion.BatchSize == 0 {
		c.Ingestion.BatchSize = 5
	}
	if c.Ingestion.MaxTransactionsPerDoc == 0 {
		c.Ingestion.MaxTransactionsPerDoc = 3
	}
	if c.Ingestion.BatchDelaySeconds == 0 {
		c.Ingestion.BatchDelaySeconds = 1
	}
}
