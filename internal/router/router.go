package router

import (
	"github.com/gin-gonic/gin"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/handler"
	"github.com/erudieto-brandon/cofrat-app/internal/middleware"
	"github.com/erudieto-brandon/cofrat-app/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	fileH *handler.FileHandler,
	agendaH *handler.AgendaHandler,
	approvalH *handler.ApprovalHandler,
	dispatchH *handler.DispatchHandler,
	extractionH *handler.ExtractionHandler,
	automationH *handler.AutomationHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Extraction callback, called by the n8n automation after it pulls text
	// out of an uploaded PDF.
	v1.POST("/extractions/callback", extractionH.Callback)

	// Approval intake, called by the chat automation when a patient sends a
	// carteirinha or requests an appointment.
	v1.POST("/approvals", approvalH.Create)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Schedule file routes
	files := protected.Group("/files")
	files.POST("/upload", fileH.Upload)
	files.GET("", fileH.List)
	files.GET("/:id", fileH.GetByID)
	files.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), fileH.Delete)

	// Agenda routes
	agenda := protected.Group("/agenda")
	agenda.GET("", agendaH.List)
	agenda.GET("/summary", agendaH.Summary)
	agenda.GET("/export", agendaH.ExportCSV)
	agenda.GET("/:id", agendaH.GetByID)
	agenda.PATCH("/:id/status", agendaH.UpdateStatus)

	// Approval queue routes
	approvals := protected.Group("/approvals")
	approvals.GET("", approvalH.ListPending)
	approvals.GET("/:id", approvalH.GetByID)
	approvals.POST("/:id/approve", approvalH.Approve)
	approvals.POST("/:id/cancel", approvalH.Cancel)
	approvals.POST("/:id/reschedule", approvalH.Reschedule)

	// Bulk dispatch routes
	dispatches := protected.Group("/dispatches")
	dispatches.POST("", dispatchH.Create)
	dispatches.GET("", dispatchH.List)
	dispatches.GET("/:id", dispatchH.GetByID)
	dispatches.POST("/:id/send", dispatchH.Send)

	// Direct automation triggers
	automations := protected.Group("/automations")
	automations.POST("/mark-all-as-read", automationH.MarkAllAsRead)
	automations.POST("/transform-numbers", automationH.TransformNumbers)

	// User management (admin only except self-access)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	return r
}
