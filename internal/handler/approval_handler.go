package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/service"
)

// ApprovalHandler handles the carteirinha and appointment approval queues.
type ApprovalHandler struct {
	approvalService service.ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvalService service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// Create handles POST /api/v1/approvals. The chat automation calls this when
// a patient sends a carteirinha photo or requests an appointment.
func (h *ApprovalHandler) Create(c *gin.Context) {
	var input service.CreateApprovalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.approvalService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, item)
}

// ListPending handles GET /api/v1/approvals
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	typ := domain.ApprovalType(c.DefaultQuery("type", string(domain.ApprovalCarteirinha)))
	if typ != domain.ApprovalCarteirinha && typ != domain.ApprovalAgendamento {
		RespondError(c, http.StatusBadRequest, "INVALID_TYPE", "type must be carteirinha or agendamento")
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := h.approvalService.ListPending(c.Request.Context(), typ, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/approvals/:id
func (h *ApprovalHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid approval ID")
		return
	}

	item, err := h.approvalService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Approve handles POST /api/v1/approvals/:id/approve
func (h *ApprovalHandler) Approve(c *gin.Context) {
	id, userID, ok := h.resolveParams(c)
	if !ok {
		return
	}

	item, err := h.approvalService.Approve(c.Request.Context(), id, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Cancel handles POST /api/v1/approvals/:id/cancel
func (h *ApprovalHandler) Cancel(c *gin.Context) {
	id, userID, ok := h.resolveParams(c)
	if !ok {
		return
	}

	item, err := h.approvalService.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Reschedule handles POST /api/v1/approvals/:id/reschedule
func (h *ApprovalHandler) Reschedule(c *gin.Context) {
	id, userID, ok := h.resolveParams(c)
	if !ok {
		return
	}

	var input service.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item, err := h.approvalService.Reschedule(c.Request.Context(), id, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

func (h *ApprovalHandler) resolveParams(c *gin.Context) (id, userID uuid.UUID, ok bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid approval ID")
		return uuid.Nil, uuid.Nil, false
	}
	userID, _, ok = extractAuthContext(c)
	return id, userID, ok
}
