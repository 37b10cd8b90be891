package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// MockDispatchRepo is a mock implementation of port.DispatchRepository.
type MockDispatchRepo struct {
	mock.Mock
}

func (m *MockDispatchRepo) CreateCampaign(ctx context.Context, campaign *domain.DispatchCampaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockDispatchRepo) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.DispatchCampaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DispatchCampaign), args.Error(1)
}

func (m *MockDispatchRepo) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.DispatchCampaign, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DispatchCampaign), args.Int(1), args.Error(2)
}

func (m *MockDispatchRepo) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDispatchRepo) CreateMessages(ctx context.Context, messages []domain.DispatchMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockDispatchRepo) ListMessages(ctx context.Context, campaignID uuid.UUID) ([]domain.DispatchMessage, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DispatchMessage), args.Error(1)
}

func (m *MockDispatchRepo) UpdateMessageStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus, sendError string) error {
	args := m.Called(ctx, id, status, sendError)
	return args.Error(0)
}
