package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// MockApprovalRepo is a mock implementation of port.ApprovalRepository.
type MockApprovalRepo struct {
	mock.Mock
}

func (m *MockApprovalRepo) Create(ctx context.Context, item *domain.ApprovalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockApprovalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApprovalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalItem), args.Error(1)
}

func (m *MockApprovalRepo) ListPending(ctx context.Context, typ domain.ApprovalType, offset, limit int) ([]domain.ApprovalItem, int, error) {
	args := m.Called(ctx, typ, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ApprovalItem), args.Int(1), args.Error(2)
}

func (m *MockApprovalRepo) Resolve(ctx context.Context, item *domain.ApprovalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
