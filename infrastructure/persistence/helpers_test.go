package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
)

func testLogger() logger.Logger {
	return logger.NewStructuredLogger(logger.Config{Level: "panic", ServiceName: "test"})
}

// mockStore injects failures that the in-memory store cannot produce
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Query(ctx context.Context, recordType string, query outbound.Query) ([]outbound.Record, error) {
	args := m.Called(ctx, recordType, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.Record), args.Error(1)
}

func (m *mockStore) Fetch(ctx context.Context, recordType, id string) (*outbound.Record, error) {
	args := m.Called(ctx, recordType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.Record), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, record outbound.Record) (outbound.Record, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(outbound.Record), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, recordType, id string) error {
	args := m.Called(ctx, recordType, id)
	return args.Error(0)
}
