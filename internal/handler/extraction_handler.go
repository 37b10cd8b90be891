package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erudieto-brandon/cofrat-app/internal/service"
)

// ExtractionHandler receives the text-extraction callback from the n8n
// automation after it pulls raw text out of an uploaded schedule PDF.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// Callback handles POST /api/v1/extractions/callback
func (h *ExtractionHandler) Callback(c *gin.Context) {
	var input service.ExtractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.extractionService.ProcessText(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
