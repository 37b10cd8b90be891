package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMessenger is a mock implementation of port.Messenger.
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendText(ctx context.Context, phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}
