package queries_test

import (
	"context"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*catalog.Product)
	return products, args.Error(1)
}

func (m *MockProductReader) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

// mockAggregateTracker implements the repositories' aggregate tracker for test purposes.
// It's a no-op implementation since we don't need aggregate tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
