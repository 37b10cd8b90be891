package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// MockWebhookDispatcher is a mock implementation of port.WebhookDispatcher.
type MockWebhookDispatcher struct {
	mock.Mock
}

func (m *MockWebhookDispatcher) TriggerExtraction(ctx context.Context, fileName string, fileID uuid.UUID) error {
	args := m.Called(ctx, fileName, fileID)
	return args.Error(0)
}

func (m *MockWebhookDispatcher) TriggerBulkDispatch(ctx context.Context, payload port.BulkDispatchPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockWebhookDispatcher) TriggerDelete(ctx context.Context, fileName string, fileID uuid.UUID) error {
	args := m.Called(ctx, fileName, fileID)
	return args.Error(0)
}

func (m *MockWebhookDispatcher) TriggerAutomation(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
