package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// CreateApprovalInput is the DTO for enqueueing a pending-approval item. The
// chat automation posts these when a patient sends a carteirinha photo or an
// appointment request.
type CreateApprovalInput struct {
	Type         domain.ApprovalType `json:"type" binding:"required"`
	PatientName  string              `json:"patient_name" binding:"required"`
	PatientPhone string              `json:"patient_phone"`
	Professional string              `json:"professional"`
	Insurance    string              `json:"insurance"`
	CardNumber   string              `json:"card_number"`
	Specialty    string              `json:"specialty"`
	Notes        string              `json:"notes"`
	Date         string              `json:"date"`
	Time         string              `json:"time"`
}

// RescheduleInput is the DTO for rescheduling an appointment request.
type RescheduleInput struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
}

// ApprovalService manages the carteirinha and appointment approval queues.
// All decisions are terminal.
type ApprovalService interface {
	Create(ctx context.Context, input CreateApprovalInput) (*domain.ApprovalItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ApprovalItem, error)
	ListPending(ctx context.Context, typ domain.ApprovalType, offset, limit int) ([]domain.ApprovalItem, int, error)
	Approve(ctx context.Context, id, resolvedBy uuid.UUID) (*domain.ApprovalItem, error)
	Cancel(ctx context.Context, id, resolvedBy uuid.UUID) (*domain.ApprovalItem, error)
	Reschedule(ctx context.Context, id, resolvedBy uuid.UUID, input RescheduleInput) (*domain.ApprovalItem, error)
}

type approvalService struct {
	repo      port.ApprovalRepository
	messenger port.Messenger
}

// NewApprovalService creates a new ApprovalService implementation.
func NewApprovalService(repo port.ApprovalRepository, messenger port.Messenger) ApprovalService {
	return &approvalService{repo: repo, messenger: messenger}
}

func (s *approvalService) Create(ctx context.Context, input CreateApprovalInput) (*domain.ApprovalItem, error) {
	if input.Type != domain.ApprovalCarteirinha && input.Type != domain.ApprovalAgendamento {
		return nil, domain.ErrInvalidStatus
	}

	item := &domain.ApprovalItem{
		Type:         input.Type,
		Status:       domain.ApprovalPendente,
		PatientName:  input.PatientName,
		PatientPhone: input.PatientPhone,
		Professional: input.Professional,
		Insurance:    input.Insurance,
		CardNumber:   input.CardNumber,
		Specialty:    input.Specialty,
		Notes:        input.Notes,
		Date:         input.Date,
		Time:         input.Time,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *approvalService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApprovalItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *approvalService) ListPending(ctx context.Context, typ domain.ApprovalType, offset, limit int) ([]domain.ApprovalItem, int, error) {
	return s.repo.ListPending(ctx, typ, offset, limit)
}

func (s *approvalService) Approve(ctx context.Context, id, resolvedBy uuid.UUID) (*domain.ApprovalItem, error) {
	item, err := s.resolve(ctx, id, resolvedBy, domain.ApprovalAprovado)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, item, s.approvalMessage(item))
	return item, nil
}

func (s *approvalService) Cancel(ctx context.Context, id, resolvedBy uuid.UUID) (*domain.ApprovalItem, error) {
	item, err := s.resolve(ctx, id, resolvedBy, domain.ApprovalCancelado)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, item, s.cancelMessage(item))
	return item, nil
}

func (s *approvalService) Reschedule(ctx context.Context, id, resolvedBy uuid.UUID, input RescheduleInput) (*domain.ApprovalItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Only appointment requests carry a schedule to move.
	if item.Type != domain.ApprovalAgendamento {
		return nil, domain.ErrForbidden
	}
	if item.Status != domain.ApprovalPendente {
		return nil, domain.ErrAlreadyResolved
	}

	now := time.Now()
	item.Status = domain.ApprovalReagendado
	item.NewDate = input.NewDate
	item.NewTime = input.NewTime
	item.ResolvedBy = &resolvedBy
	item.ResolvedAt = &now
	if err := s.repo.Resolve(ctx, item); err != nil {
		return nil, err
	}

	s.notify(ctx, item, fmt.Sprintf(
		"Olá %s! Seu agendamento foi remarcado para %s às %s. Qualquer dúvida, estamos à disposição.",
		item.PatientName, item.NewDate, item.NewTime))
	return item, nil
}

func (s *approvalService) resolve(ctx context.Context, id, resolvedBy uuid.UUID, status domain.ApprovalStatus) (*domain.ApprovalItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ApprovalPendente {
		return nil, domain.ErrAlreadyResolved
	}

	now := time.Now()
	item.Status = status
	item.ResolvedBy = &resolvedBy
	item.ResolvedAt = &now
	if err := s.repo.Resolve(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *approvalService) approvalMessage(item *domain.ApprovalItem) string {
	if item.Type == domain.ApprovalCarteirinha {
		return fmt.Sprintf("Olá %s! Sua carteirinha foi verificada e aprovada.", item.PatientName)
	}
	return fmt.Sprintf("Olá %s! Seu agendamento para %s às %s foi confirmado.",
		item.PatientName, item.Date, item.Time)
}

func (s *approvalService) cancelMessage(item *domain.ApprovalItem) string {
	if item.Type == domain.ApprovalCarteirinha {
		return fmt.Sprintf("Olá %s. Não foi possível validar sua carteirinha. Por favor, envie uma nova foto.", item.PatientName)
	}
	return fmt.Sprintf("Olá %s. Seu agendamento não pôde ser confirmado. Entre em contato para mais detalhes.", item.PatientName)
}

// notify sends the decision to the patient over WhatsApp. Delivery failures
// never roll back the decision.
func (s *approvalService) notify(ctx context.Context, item *domain.ApprovalItem, message string) {
	if item.PatientPhone == "" {
		return
	}
	if err := s.messenger.SendText(ctx, item.PatientPhone, message); err != nil {
		log.Printf("approvalService.notify: item %s: %v", item.ID, err)
	}
}
