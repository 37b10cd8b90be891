// Package webhook posts JSON payloads to the n8n automation endpoints that
// run the PDF text extraction and messaging flows.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

type client struct {
	cfg        config.WebhookConfig
	httpClient *http.Client
	dispatchHC *http.Client
}

// NewClient creates a WebhookDispatcher over the configured n8n endpoints.
// Triggers whose URL is empty are no-ops.
func NewClient(cfg config.WebhookConfig) port.WebhookDispatcher {
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		// Bulk dispatch fans out to many recipients on the n8n side and
		// needs a longer deadline.
		dispatchHC: &http.Client{Timeout: cfg.DispatchTimeout},
	}
}

type filePayload struct {
	FileName string `json:"fileName"`
	FileID   string `json:"fileId"`
}

func (c *client) TriggerExtraction(ctx context.Context, fileName string, fileID uuid.UUID) error {
	return c.post(ctx, c.httpClient, "extraction", c.cfg.ExtractURL, filePayload{
		FileName: fileName,
		FileID:   fileID.String(),
	})
}

func (c *client) TriggerDelete(ctx context.Context, fileName string, fileID uuid.UUID) error {
	return c.post(ctx, c.httpClient, "delete", c.cfg.DeleteURL, filePayload{
		FileName: fileName,
		FileID:   fileID.String(),
	})
}

func (c *client) TriggerBulkDispatch(ctx context.Context, payload port.BulkDispatchPayload) error {
	return c.post(ctx, c.dispatchHC, "bulk dispatch", c.cfg.BulkDispatchURL, payload)
}

func (c *client) TriggerAutomation(ctx context.Context, name string) error {
	var url string
	switch name {
	case "mark-all-as-read":
		url = c.cfg.MarkAllAsReadURL
	case "transform-numbers":
		url = c.cfg.TransformNumbersURL
	default:
		return fmt.Errorf("webhook.TriggerAutomation: unknown automation %q", name)
	}
	return c.post(ctx, c.httpClient, name, url, struct{}{})
}

func (c *client) post(ctx context.Context, hc *http.Client, name, url string, payload interface{}) error {
	if url == "" {
		log.Printf("webhook.post: %s webhook not configured, skipping", name)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook.post: marshal %s payload: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook.post: build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("webhook.post: %s: %w: %v", name, domain.ErrWebhookFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook.post: %s returned %d: %s: %w",
			name, resp.StatusCode, string(respBody), domain.ErrWebhookFailed)
	}
	return nil
}
