package advisor

import (
	"context"

	"fintrack/fintrack/internal/models"
)

// MockClient returns a canned reply for tests.
type MockClient struct {
	Reply string
	Err   error

	// LastQuestion records the most recent question for assertions.
	LastQuestion string
}

func (m *MockClient) Advise(ctx context.Context, question string, ledger []models.Transaction) (string, error) {
	m.LastQuestion = question
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
