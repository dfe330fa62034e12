// Package mocks provides test doubles for the database package.
package mocks

import (
	"context"
	"testing"
)

// MockTxManager satisfies database.TxManager without a database: the
// transactional function runs directly against the ambient context.
type MockTxManager struct{}

// NewMockTxManager creates a MockTxManager.
func NewMockTxManager(t *testing.T) *MockTxManager {
	t.Helper()
	return &MockTxManager{}
}

// WithTx runs fn with the given context, committing nothing.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
