package port

import (
	"context"

	"github.com/google/uuid"
)

// BulkDispatchRecipient is one entry of a bulk-dispatch webhook payload.
type BulkDispatchRecipient struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BulkDispatchPayload is the body POSTed to the bulk-dispatch automation.
type BulkDispatchPayload struct {
	CampaignID uuid.UUID               `json:"campaignId"`
	Message    string                  `json:"message"`
	Recipients []BulkDispatchRecipient `json:"recipients"`
}

// WebhookDispatcher triggers the external n8n automations.
type WebhookDispatcher interface {
	TriggerExtraction(ctx context.Context, fileName string, fileID uuid.UUID) error
	TriggerBulkDispatch(ctx context.Context, payload BulkDispatchPayload) error
	TriggerDelete(ctx context.Context, fileName string, fileID uuid.UUID) error
	// TriggerAutomation fires a named parameterless automation
	// (mark-all-as-read, transform-numbers).
	TriggerAutomation(ctx context.Context, name string) error
}
