package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// MockAppointmentRepo is a mock implementation of port.AppointmentRepository.
type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) CreateBatch(ctx context.Context, appointments []domain.Appointment) error {
	args := m.Called(ctx, appointments)
	return args.Error(0)
}

func (m *MockAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) List(ctx context.Context, filter port.AppointmentFilter) ([]domain.Appointment, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepo) Summary(ctx context.Context, day time.Time) (*domain.AgendaSummary, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgendaSummary), args.Error(1)
}

func (m *MockAppointmentRepo) DeleteByFile(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
