package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// ApprovalRepository defines the contract for the pending-approval queues.
type ApprovalRepository interface {
	Create(ctx context.Context, item *domain.ApprovalItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ApprovalItem, error)
	ListPending(ctx context.Context, typ domain.ApprovalType, offset, limit int) ([]domain.ApprovalItem, int, error)
	// Resolve persists a terminal decision on the item.
	Resolve(ctx context.Context, item *domain.ApprovalItem) error
}
