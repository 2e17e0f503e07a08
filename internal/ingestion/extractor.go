package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/qwipolabs/marketgraph/internal/llm"
)

type GraphNode struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type GraphRelationship struct {
	SourceID   string                 `json:"source_id"`
	SourceType string                 `json:"source_type"`
	TargetID   string                 `json:"target_id"`
	TargetType string                 `json:"target_type"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// GraphDocument is the extraction result for one narrative document.
type GraphDocument struct {
	Nodes         []GraphNode         `json:"nodes"`
	Relationships []GraphRelationship `json:"relationships"`
}

// Extractor turns purchase narratives into schema-constrained graph documents
// via the configured language model.
type Extractor struct {
	LLM llm.LLMClient
}

func NewExtractor(llmClient llm.LLMClient) *Extractor {
	return &Extractor{LLM: llmClient}
}

const extractionPromptTemplate = `You are a business knowledge-graph extractor.
Extract nodes and relationships from the business transaction narrative below.

Allowed node types: %s
Allowed relationship types: %s
Node properties to capture when present: %s

Rules:
- Use the entity's natural name as its id (retailer ids look like "retailer_001"; keep them).
- Every relationship's source and target must appear in the nodes list.
- PURCHASES relationships carry quantity, total_amount, purchase_date and payment_terms when stated.
- Respond with ONLY a JSON object: {"nodes": [{"id", "type", "properties"}], "relationships": [{"source_id", "source_type", "target_id", "target_type", "type", "properties"}]}

Narrative:
%s`

// ExtractGraph runs a single narrative through the LLM and filters the result
// down to the allowed schema.
func (e *Extractor) ExtractGraph(ctx context.Context, doc Document) (GraphDocument, error) {
	prompt := fmt.Sprintf(extractionPromptTemplate,
		strings.Join(AllowedNodeTypes(), ", "),
		strings.Join(AllowedRelationshipTypes(), ", "),
		strings.Join(AllowedNodeProperties(), ", "),
		doc.Content,
	)

	response, err := e.LLM.Generate(ctx, prompt)
	if err != nil {
		return GraphDocument{}, fmt.Errorf("failed to generate graph document: %w", err)
	}

	result, err := parseJSON[GraphDocument](response)
	if err != nil {
		return GraphDocument{}, fmt.Errorf("failed to parse graph document: %w", err)
	}

	return filterToSchema(result), nil
}

// filterToSchema drops nodes and relationships outside the allowed schema,
// along with relationships whose endpoints were dropped.
func filterToSchema(doc GraphDocument) GraphDocument {
	kept := make(map[string]bool)
	var filtered GraphDocument

	for _, n := range doc.Nodes {
		if n.ID == "" || !isAllowedNodeType(n.Type) {
			continue
		}
		filtered.Nodes = append(filtered.Nodes, n)
		kept[n.Type+"/"+n.ID] = true
	}

	for _, r := range doc.Relationships {
		if !isAllowedRelationshipType(r.Type) {
			continue
		}
		if !kept[r.SourceType+"/"+r.SourceID] || !kept[r.TargetType+"/"+r.TargetID] {
			continue
		}
		filtered.Relationships = append(filtered.Relationships, r)
	}

	return filtered
}
