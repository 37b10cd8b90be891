package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendExtractionReport(ctx context.Context, toEmail string, report port.ExtractionReport) error {
	args := m.Called(ctx, toEmail, report)
	return args.Error(0)
}
