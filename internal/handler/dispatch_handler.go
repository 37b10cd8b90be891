package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/service"
)

// DispatchHandler handles bulk WhatsApp campaign endpoints.
type DispatchHandler struct {
	dispatchService service.DispatchService
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(dispatchService service.DispatchService) *DispatchHandler {
	return &DispatchHandler{dispatchService: dispatchService}
}

// Create handles POST /api/v1/dispatches. Multipart form: name, message and a
// contacts .xlsx file.
func (h *DispatchHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	message := c.PostForm("message")
	if name == "" || message == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "name and message fields are required")
		return
	}

	file, _, err := c.Request.FormFile("contacts")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "contacts spreadsheet is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.dispatchService.CreateCampaign(c.Request.Context(), service.CreateCampaignInput{
		Name:      name,
		Message:   message,
		CreatedBy: userID,
		Contacts:  file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/dispatches
func (h *DispatchHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	campaigns, total, err := h.dispatchService.ListCampaigns(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, campaigns, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/dispatches/:id
func (h *DispatchHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid campaign ID")
		return
	}

	detail, err := h.dispatchService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Send handles POST /api/v1/dispatches/:id/send
func (h *DispatchHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid campaign ID")
		return
	}

	campaign, err := h.dispatchService.Send(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, campaign)
}
