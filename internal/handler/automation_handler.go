package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// AutomationHandler exposes the parameterless n8n automations the dashboard
// triggers directly (mark all chats as read, transform contact numbers).
type AutomationHandler struct {
	webhooks port.WebhookDispatcher
}

// NewAutomationHandler creates a new AutomationHandler.
func NewAutomationHandler(webhooks port.WebhookDispatcher) *AutomationHandler {
	return &AutomationHandler{webhooks: webhooks}
}

// MarkAllAsRead handles POST /api/v1/automations/mark-all-as-read
func (h *AutomationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.webhooks.TriggerAutomation(c.Request.Context(), "mark-all-as-read"); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "automation triggered"})
}

// TransformNumbers handles POST /api/v1/automations/transform-numbers
func (h *AutomationHandler) TransformNumbers(c *gin.Context) {
	if err := h.webhooks.TriggerAutomation(c.Request.Context(), "transform-numbers"); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "automation triggered"})
}
