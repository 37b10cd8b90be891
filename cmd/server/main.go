package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/email/noop"
	"github.com/erudieto-brandon/cofrat-app/internal/email/ses"
	"github.com/erudieto-brandon/cofrat-app/internal/handler"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
	"github.com/erudieto-brandon/cofrat-app/internal/repository/postgres"
	"github.com/erudieto-brandon/cofrat-app/internal/router"
	"github.com/erudieto-brandon/cofrat-app/internal/service"
	s3storage "github.com/erudieto-brandon/cofrat-app/internal/storage/s3"
	"github.com/erudieto-brandon/cofrat-app/internal/webhook"
	"github.com/erudieto-brandon/cofrat-app/internal/whatsapp"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	appointmentRepo := postgres.NewAppointmentRepo(db)
	approvalRepo := postgres.NewApprovalRepo(db)
	dispatchRepo := postgres.NewDispatchRepo(db)

	// Initialize storage and outbound clients
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	webhooks := webhook.NewClient(cfg.Webhook)
	messenger := whatsapp.NewClient(cfg.WhatsApp)
	emailSender, err := buildEmailSender(cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	fileSvc := service.NewFileService(fileRepo, appointmentRepo, s3Client, webhooks, &cfg.S3)
	extractionSvc := service.NewExtractionService(fileRepo, appointmentRepo, emailSender, cfg.Parser, cfg.Email)
	agendaSvc := service.NewAgendaService(appointmentRepo)
	approvalSvc := service.NewApprovalService(approvalRepo, messenger)
	dispatchSvc := service.NewDispatchService(dispatchRepo, webhooks, messenger, cfg.Webhook)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	fileH := handler.NewFileHandler(fileSvc)
	agendaH := handler.NewAgendaHandler(agendaSvc)
	approvalH := handler.NewApprovalHandler(approvalSvc)
	dispatchH := handler.NewDispatchHandler(dispatchSvc)
	extractionH := handler.NewExtractionHandler(extractionSvc)
	automationH := handler.NewAutomationHandler(webhooks)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, authSvc, authH, userH, fileH, agendaH, approvalH,
		dispatchH, extractionH, automationH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Extraction retry worker
	worker := service.NewExtractionQueueWorker(fileRepo, webhooks, service.ExtractionQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		MaxRetries:   cfg.Queue.MaxRetries,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		stop()
		<-workerDone
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	<-workerDone

	return nil
}

func buildEmailSender(cfg config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	default:
		return noop.NewNoopSender(), nil
	}
}
