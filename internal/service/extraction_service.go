package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
	"github.com/erudieto-brandon/cofrat-app/internal/schedule"
)

// ExtractionInput is the DTO for the extraction callback: the raw text the
// automation pulled out of an uploaded schedule PDF.
type ExtractionInput struct {
	FileID uuid.UUID `json:"file_id" binding:"required"`
	Text   string    `json:"text"`
}

// ExtractionResult summarizes one processed callback.
type ExtractionResult struct {
	FileID      uuid.UUID `json:"file_id"`
	RecordCount int       `json:"record_count"`
}

// ExtractionService turns extracted schedule text into agenda appointments.
type ExtractionService interface {
	ProcessText(ctx context.Context, input ExtractionInput) (*ExtractionResult, error)
}

type extractionService struct {
	fileRepo        port.FileMetaRepository
	appointmentRepo port.AppointmentRepository
	email           port.EmailSender
	parser          *schedule.Parser
	reportTo        string
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	fileRepo port.FileMetaRepository,
	appointmentRepo port.AppointmentRepository,
	email port.EmailSender,
	parserCfg config.ParserConfig,
	emailCfg config.EmailConfig,
) ExtractionService {
	return &extractionService{
		fileRepo:        fileRepo,
		appointmentRepo: appointmentRepo,
		email:           email,
		parser: schedule.New(schedule.Options{
			Strategy:      schedule.Strategy(parserCfg.Strategy),
			RecordPattern: schedule.RecordPattern(parserCfg.RecordPattern),
		}),
		reportTo: emailCfg.ReportTo,
	}
}

func (s *extractionService) ProcessText(ctx context.Context, input ExtractionInput) (*ExtractionResult, error) {
	meta, err := s.fileRepo.GetByID(ctx, input.FileID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Text) == "" {
		if err := s.fileRepo.SetExtractionResult(ctx, meta.ID, domain.FileStatusFailed, domain.ErrEmptyText.Error()); err != nil {
			log.Printf("extractionService.ProcessText: marking %s failed: %v", meta.ID, err)
		}
		s.sendReport(ctx, meta, 0, domain.ErrEmptyText.Error())
		return nil, domain.ErrEmptyText
	}

	records := s.parser.Parse(input.Text)
	log.Printf("extractionService.ProcessText: file %s yielded %d records", meta.ID, len(records))

	appointments := make([]domain.Appointment, 0, len(records))
	for _, rec := range records {
		appointments = append(appointments, recordToAppointment(meta.ID, rec))
	}

	// Re-delivered callbacks replace earlier results for the same file.
	if err := s.appointmentRepo.DeleteByFile(ctx, meta.ID); err != nil {
		return nil, fmt.Errorf("extractionService.ProcessText: %w", err)
	}
	if err := s.appointmentRepo.CreateBatch(ctx, appointments); err != nil {
		if updErr := s.fileRepo.SetExtractionResult(ctx, meta.ID, domain.FileStatusFailed, err.Error()); updErr != nil {
			log.Printf("extractionService.ProcessText: marking %s failed: %v", meta.ID, updErr)
		}
		s.sendReport(ctx, meta, 0, err.Error())
		return nil, fmt.Errorf("extractionService.ProcessText: %w", err)
	}

	if err := s.fileRepo.SetExtractionResult(ctx, meta.ID, domain.FileStatusExtracted, ""); err != nil {
		return nil, fmt.Errorf("extractionService.ProcessText: %w", err)
	}

	s.sendReport(ctx, meta, len(appointments), "")

	return &ExtractionResult{FileID: meta.ID, RecordCount: len(appointments)}, nil
}

func (s *extractionService) sendReport(ctx context.Context, meta *domain.FileMeta, count int, failedReason string) {
	if s.reportTo == "" {
		return
	}
	err := s.email.SendExtractionReport(ctx, s.reportTo, port.ExtractionReport{
		FileName:     meta.OriginalName,
		RecordCount:  count,
		FailedReason: failedReason,
	})
	if err != nil {
		log.Printf("extractionService.sendReport: file %s: %v", meta.ID, err)
	}
}

func recordToAppointment(fileID uuid.UUID, rec schedule.Record) domain.Appointment {
	a := domain.Appointment{
		FileID:       &fileID,
		RawDate:      rec.Date,
		Time:         rec.Time,
		Specialty:    rec.Specialty,
		Doctor:       rec.Doctor,
		Patient:      rec.Patient,
		PatientPhone: rec.PatientPhone,
		Insurance:    rec.Insurance,
		Event:        rec.Event,
		RecordNumber: rec.RecordNumber,
		Status:       domain.AppointmentAguardando,
	}
	if d, err := time.Parse("02/01/2006", rec.Date); err == nil {
		a.Date = &d
	}
	if len(rec.Sources) > 0 {
		if raw, err := json.Marshal(rec.Sources); err == nil {
			a.Sources = raw
		}
	}
	return a
}
