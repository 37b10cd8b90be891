package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/csvexport"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
	"github.com/erudieto-brandon/cofrat-app/internal/service"
)

// AgendaHandler handles agenda (extracted appointment) endpoints.
type AgendaHandler struct {
	agendaService service.AgendaService
}

// NewAgendaHandler creates a new AgendaHandler.
func NewAgendaHandler(agendaService service.AgendaService) *AgendaHandler {
	return &AgendaHandler{agendaService: agendaService}
}

// updateStatusRequest is the body for PATCH /agenda/:id/status.
type updateStatusRequest struct {
	Status domain.AppointmentStatus `json:"status" binding:"required"`
}

// List handles GET /api/v1/agenda
func (h *AgendaHandler) List(c *gin.Context) {
	filter, ok := parseAgendaFilter(c)
	if !ok {
		return
	}

	appointments, total, err := h.agendaService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, appointments, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/agenda/:id
func (h *AgendaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid appointment ID")
		return
	}

	appt, err := h.agendaService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, appt)
}

// UpdateStatus handles PATCH /api/v1/agenda/:id/status
func (h *AgendaHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid appointment ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	appt, err := h.agendaService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, appt)
}

// Summary handles GET /api/v1/agenda/summary
func (h *AgendaHandler) Summary(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	summary, err := h.agendaService.Summary(c.Request.Context(), day)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// ExportCSV handles GET /api/v1/agenda/export
func (h *AgendaHandler) ExportCSV(c *gin.Context) {
	filter, ok := parseAgendaFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.agendaService.ExportCSV(c.Request.Context(), filter, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("agenda")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// parseAgendaFilter builds an AppointmentFilter from query parameters. On a
// malformed parameter it writes the error response and returns false.
func parseAgendaFilter(c *gin.Context) (port.AppointmentFilter, bool) {
	var filter port.AppointmentFilter

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from must be YYYY-MM-DD")
			return filter, false
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "to must be YYYY-MM-DD")
			return filter, false
		}
		filter.To = &to
	}

	if status := c.Query("status"); status != "" {
		s := domain.AppointmentStatus(status)
		if !domain.ValidAppointmentStatuses[s] {
			RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "invalid status value")
			return filter, false
		}
		filter.Status = s
	}

	filter.Specialty = c.Query("specialty")
	filter.Doctor = c.Query("doctor")
	filter.PatientQuery = c.Query("q")

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	filter.Offset = offset
	filter.Limit = limit

	return filter, true
}
