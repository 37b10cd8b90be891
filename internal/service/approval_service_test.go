package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/mocks"
)

func pendingItem(typ domain.ApprovalType) *domain.ApprovalItem {
	return &domain.ApprovalItem{
		ID:           uuid.New(),
		Type:         typ,
		Status:       domain.ApprovalPendente,
		PatientName:  "Maria Silva",
		PatientPhone: "+5511999991234",
		Date:         "05/02/2025",
		Time:         "14:00",
	}
}

func TestApprovalCreateRejectsUnknownType(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	svc := NewApprovalService(repo, new(mocks.MockMessenger))

	_, err := svc.Create(context.Background(), CreateApprovalInput{
		Type:        "ferias",
		PatientName: "Maria Silva",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "Create")
}

func TestApproveNotifiesPatient(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	messenger := new(mocks.MockMessenger)
	svc := NewApprovalService(repo, messenger)

	item := pendingItem(domain.ApprovalAgendamento)
	resolvedBy := uuid.New()

	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Resolve", mock.Anything, item).Return(nil)
	messenger.On("SendText", mock.Anything, item.PatientPhone, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(nil)

	got, err := svc.Approve(context.Background(), item.ID, resolvedBy)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalAprovado, got.Status)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, resolvedBy, *got.ResolvedBy)
	assert.NotNil(t, got.ResolvedAt)
	messenger.AssertExpectations(t)
}

func TestApproveAlreadyResolved(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	svc := NewApprovalService(repo, new(mocks.MockMessenger))

	item := pendingItem(domain.ApprovalCarteirinha)
	item.Status = domain.ApprovalCancelado
	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)

	_, err := svc.Approve(context.Background(), item.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	repo.AssertNotCalled(t, "Resolve")
}

func TestCancelSucceedsWhenNotificationFails(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	messenger := new(mocks.MockMessenger)
	svc := NewApprovalService(repo, messenger)

	item := pendingItem(domain.ApprovalCarteirinha)
	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Resolve", mock.Anything, item).Return(nil)
	messenger.On("SendText", mock.Anything, item.PatientPhone, mock.Anything).
		Return(errors.New("delivery timeout"))

	got, err := svc.Cancel(context.Background(), item.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalCancelado, got.Status)
}

func TestCancelSkipsNotifyWithoutPhone(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	messenger := new(mocks.MockMessenger)
	svc := NewApprovalService(repo, messenger)

	item := pendingItem(domain.ApprovalCarteirinha)
	item.PatientPhone = ""
	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Resolve", mock.Anything, item).Return(nil)

	_, err := svc.Cancel(context.Background(), item.ID, uuid.New())
	require.NoError(t, err)
	messenger.AssertNotCalled(t, "SendText")
}

func TestRescheduleUpdatesSchedule(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	messenger := new(mocks.MockMessenger)
	svc := NewApprovalService(repo, messenger)

	item := pendingItem(domain.ApprovalAgendamento)
	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	repo.On("Resolve", mock.Anything, item).Return(nil)
	messenger.On("SendText", mock.Anything, item.PatientPhone, mock.Anything).Return(nil)

	got, err := svc.Reschedule(context.Background(), item.ID, uuid.New(), RescheduleInput{
		NewDate: "10/02/2025",
		NewTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalReagendado, got.Status)
	assert.Equal(t, "10/02/2025", got.NewDate)
	assert.Equal(t, "09:00", got.NewTime)
}

func TestRescheduleRejectsCarteirinha(t *testing.T) {
	repo := new(mocks.MockApprovalRepo)
	svc := NewApprovalService(repo, new(mocks.MockMessenger))

	item := pendingItem(domain.ApprovalCarteirinha)
	repo.On("GetByID", mock.Anything, item.ID).Return(item, nil)

	_, err := svc.Reschedule(context.Background(), item.ID, uuid.New(), RescheduleInput{
		NewDate: "10/02/2025",
		NewTime: "09:00",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Resolve")
}
