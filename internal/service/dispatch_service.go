package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/dispatch"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// CreateCampaignInput is the DTO for creating a bulk-dispatch campaign. The
// contact list comes from an uploaded .xlsx spreadsheet.
type CreateCampaignInput struct {
	Name      string
	Message   string
	CreatedBy uuid.UUID
	Contacts  io.Reader
}

// CampaignDetail bundles a campaign with its per-recipient messages.
type CampaignDetail struct {
	Campaign domain.DispatchCampaign  `json:"campaign"`
	Messages []domain.DispatchMessage `json:"messages"`
}

// CreateCampaignResult reports the created campaign and rows whose phone
// could not be normalized.
type CreateCampaignResult struct {
	Campaign    domain.DispatchCampaign `json:"campaign"`
	Recipients  int                     `json:"recipients"`
	SkippedRows []string                `json:"skipped_rows,omitempty"`
}

// DispatchService manages bulk WhatsApp campaigns.
type DispatchService interface {
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (*CreateCampaignResult, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignDetail, error)
	ListCampaigns(ctx context.Context, offset, limit int) ([]domain.DispatchCampaign, int, error)
	Send(ctx context.Context, id uuid.UUID) (*domain.DispatchCampaign, error)
}

type dispatchService struct {
	repo      port.DispatchRepository
	webhooks  port.WebhookDispatcher
	messenger port.Messenger
	cfg       config.WebhookConfig
}

// NewDispatchService creates a new DispatchService implementation.
func NewDispatchService(
	repo port.DispatchRepository,
	webhooks port.WebhookDispatcher,
	messenger port.Messenger,
	cfg config.WebhookConfig,
) DispatchService {
	return &dispatchService{
		repo:      repo,
		webhooks:  webhooks,
		messenger: messenger,
		cfg:       cfg,
	}
}

func (s *dispatchService) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*CreateCampaignResult, error) {
	contacts, skipped, err := dispatch.LoadContacts(input.Contacts)
	if err != nil {
		return nil, fmt.Errorf("dispatchService.CreateCampaign: %w", err)
	}
	if len(contacts) == 0 {
		return nil, domain.ErrEmptyCampaign
	}

	campaign := &domain.DispatchCampaign{
		Name:      input.Name,
		Message:   input.Message,
		Status:    domain.CampaignRascunho,
		CreatedBy: input.CreatedBy,
	}
	if err := s.repo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	messages := make([]domain.DispatchMessage, 0, len(contacts))
	for _, c := range contacts {
		messages = append(messages, domain.DispatchMessage{
			CampaignID:  campaign.ID,
			ContactName: c.Name,
			Phone:       c.Phone,
			Status:      domain.MessagePendente,
		})
	}
	if err := s.repo.CreateMessages(ctx, messages); err != nil {
		return nil, err
	}

	log.Printf("dispatchService.CreateCampaign: campaign %s with %d recipients (%d rows skipped)",
		campaign.ID, len(messages), len(skipped))

	return &CreateCampaignResult{
		Campaign:    *campaign,
		Recipients:  len(messages),
		SkippedRows: skipped,
	}, nil
}

func (s *dispatchService) GetCampaign(ctx context.Context, id uuid.UUID) (*CampaignDetail, error) {
	campaign, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CampaignDetail{Campaign: *campaign, Messages: messages}, nil
}

func (s *dispatchService) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.DispatchCampaign, int, error) {
	return s.repo.ListCampaigns(ctx, offset, limit)
}

// Send delivers a draft campaign. When the bulk-dispatch automation is
// configured the whole batch is handed to it in one call; otherwise each
// message goes out individually through the messenger.
func (s *dispatchService) Send(ctx context.Context, id uuid.UUID) (*domain.DispatchCampaign, error) {
	campaign, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignRascunho {
		return nil, domain.ErrAlreadyResolved
	}
	messages, err := s.repo.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, domain.ErrEmptyCampaign
	}

	if err := s.repo.UpdateCampaignStatus(ctx, id, domain.CampaignEnviando); err != nil {
		return nil, err
	}
	campaign.Status = domain.CampaignEnviando

	var finalStatus domain.CampaignStatus
	if s.cfg.BulkDispatchURL != "" {
		finalStatus = s.sendViaWebhook(ctx, campaign, messages)
	} else {
		finalStatus = s.sendDirect(ctx, campaign, messages)
	}

	if err := s.repo.UpdateCampaignStatus(ctx, id, finalStatus); err != nil {
		return nil, err
	}
	campaign.Status = finalStatus
	return campaign, nil
}

func (s *dispatchService) sendViaWebhook(ctx context.Context, campaign *domain.DispatchCampaign, messages []domain.DispatchMessage) domain.CampaignStatus {
	payload := port.BulkDispatchPayload{
		CampaignID: campaign.ID,
		Message:    campaign.Message,
		Recipients: make([]port.BulkDispatchRecipient, 0, len(messages)),
	}
	for _, m := range messages {
		payload.Recipients = append(payload.Recipients, port.BulkDispatchRecipient{
			Name:  m.ContactName,
			Phone: m.Phone,
		})
	}

	if err := s.webhooks.TriggerBulkDispatch(ctx, payload); err != nil {
		log.Printf("dispatchService.sendViaWebhook: campaign %s: %v", campaign.ID, err)
		for _, m := range messages {
			s.markMessage(ctx, m.ID, domain.MessageFalhou, err.Error())
		}
		return domain.CampaignFalhou
	}

	for _, m := range messages {
		s.markMessage(ctx, m.ID, domain.MessageEnviado, "")
	}
	return domain.CampaignConcluido
}

func (s *dispatchService) sendDirect(ctx context.Context, campaign *domain.DispatchCampaign, messages []domain.DispatchMessage) domain.CampaignStatus {
	failed := 0
	for _, m := range messages {
		text := personalizeMessage(campaign.Message, m.ContactName)
		if err := s.messenger.SendText(ctx, m.Phone, text); err != nil {
			log.Printf("dispatchService.sendDirect: campaign %s message %s: %v", campaign.ID, m.ID, err)
			s.markMessage(ctx, m.ID, domain.MessageFalhou, err.Error())
			failed++
			continue
		}
		s.markMessage(ctx, m.ID, domain.MessageEnviado, "")
	}
	if failed == len(messages) {
		return domain.CampaignFalhou
	}
	return domain.CampaignConcluido
}

func (s *dispatchService) markMessage(ctx context.Context, id uuid.UUID, status domain.MessageStatus, sendError string) {
	if err := s.repo.UpdateMessageStatus(ctx, id, status, sendError); err != nil {
		log.Printf("dispatchService.markMessage: message %s: %v", id, err)
	}
}

// personalizeMessage substitutes the {nome} placeholder with the contact name.
func personalizeMessage(template, name string) string {
	return strings.ReplaceAll(template, "{nome}", name)
}
