package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// DispatchRepository defines the contract for bulk-dispatch persistence.
type DispatchRepository interface {
	CreateCampaign(ctx context.Context, campaign *domain.DispatchCampaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.DispatchCampaign, error)
	ListCampaigns(ctx context.Context, offset, limit int) ([]domain.DispatchCampaign, int, error)
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) error
	CreateMessages(ctx context.Context, messages []domain.DispatchMessage) error
	ListMessages(ctx context.Context, campaignID uuid.UUID) ([]domain.DispatchMessage, error)
	UpdateMessageStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus, sendError string) error
}
