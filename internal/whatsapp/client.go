// Package whatsapp sends text messages through the WhatsApp Cloud API
// (graph.facebook.com). When no access token is configured the client logs
// and drops messages instead of failing, so local development works without
// Meta credentials.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

type client struct {
	cfg        config.WhatsAppConfig
	httpClient *http.Client
}

// NewClient creates a Messenger backed by the WhatsApp Cloud API.
func NewClient(cfg config.WhatsAppConfig) port.Messenger {
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (c *client) SendText(ctx context.Context, phone, message string) error {
	if c.cfg.AccessToken == "" || c.cfg.PhoneNumberID == "" {
		log.Printf("whatsapp.SendText: not configured, dropping message to %s", phone)
		return nil
	}

	msg := textMessage{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
	}
	msg.Text.Body = message

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("whatsapp.SendText: marshal: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp.SendText: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp.SendText: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp.SendText: API returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
