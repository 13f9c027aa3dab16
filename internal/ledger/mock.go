package ledger

import (
	"context"
	"fmt"
	"sync"

	"fintrack/fintrack/internal/models"
)

// MockStore is an in-memory Store for tests. Individual Add calls can be
// made to fail by call index to exercise partial-failure paths.
type MockStore struct {
	mu           sync.Mutex
	transactions map[string][]models.Transaction
	addCalls     int
	failOn       map[int]error
	nextID       int
}

// NewMockStore returns an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		transactions: make(map[string][]models.Transaction),
		failOn:       make(map[int]error),
	}
}

// Seed pre-loads transactions for an owner without going through Add.
func (m *MockStore) Seed(ownerID string, txs ...models.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[ownerID] = append(m.transactions[ownerID], txs...)
}

// FailOnCall makes the n-th Add call (1-based) return err.
func (m *MockStore) FailOnCall(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn[n] = err
}

// AddCalls reports how many times Add was invoked.
func (m *MockStore) AddCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addCalls
}

func (m *MockStore) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Transaction, len(m.transactions[ownerID]))
	copy(out, m.transactions[ownerID])
	return out, nil
}

func (m *MockStore) Add(ctx context.Context, ownerID string, tx models.Transaction) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	if err, ok := m.failOn[m.addCalls]; ok {
		return models.Transaction{}, err
	}
	m.nextID++
	tx.ID = fmt.Sprintf("tx-%d", m.nextID)
	m.transactions[ownerID] = append(m.transactions[ownerID], tx)
	return tx, nil
}

func (m *MockStore) Delete(ctx context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	txs := m.transactions[ownerID]
	for i := range txs {
		if txs[i].ID == id {
			m.transactions[ownerID] = append(txs[:i], txs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found", id)
}
