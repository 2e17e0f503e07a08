package ingestion

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MockLLMClient struct {
	Response      string
	ResponseQueue []string
	Err           error
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		if resp == "" {
			return "", fmt.Errorf("mock generation failure")
		}
		return resp, nil
	}
	return m.Response, nil
}

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

type MockGraphDriver struct {
	Executed []executedQuery
	Err      error
}

func (m *MockGraphDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return neo4j.EagerResult{Records: []*neo4j.Record{}}, nil
}

func (m *MockGraphDriver) SetupConstraints(ctx context.Context) error {
	return nil
}

func (m *MockGraphDriver) Close(ctx context.Context) error {
	return nil
}
