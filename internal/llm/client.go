package llm

import (
	"context"
)

// LLMClient is the single capability the ingestion pipeline needs from a
// language model provider.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
