package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/csvexport"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// AgendaService exposes the extracted appointment agenda.
type AgendaService interface {
	List(ctx context.Context, filter port.AppointmentFilter) ([]domain.Appointment, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error)
	Summary(ctx context.Context, day time.Time) (*domain.AgendaSummary, error)
	ExportCSV(ctx context.Context, filter port.AppointmentFilter, w io.Writer) error
}

type agendaService struct {
	repo port.AppointmentRepository
}

// NewAgendaService creates a new AgendaService implementation.
func NewAgendaService(repo port.AppointmentRepository) AgendaService {
	return &agendaService{repo: repo}
}

func (s *agendaService) List(ctx context.Context, filter port.AppointmentFilter) ([]domain.Appointment, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *agendaService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *agendaService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidAppointmentStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *agendaService) Summary(ctx context.Context, day time.Time) (*domain.AgendaSummary, error) {
	return s.repo.Summary(ctx, day)
}

// ExportCSV streams the filtered agenda as CSV. Pagination in the filter is
// ignored: the export always covers every matching appointment.
func (s *agendaService) ExportCSV(ctx context.Context, filter port.AppointmentFilter, w io.Writer) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("agendaService.ExportCSV: %w", err)
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("agendaService.ExportCSV: %w", err)
	}

	const pageSize = 500
	filter.Offset = 0
	filter.Limit = pageSize
	for {
		appointments, total, err := s.repo.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("agendaService.ExportCSV: %w", err)
		}
		if err := cw.WriteAppointments(appointments); err != nil {
			return fmt.Errorf("agendaService.ExportCSV: %w", err)
		}
		filter.Offset += len(appointments)
		if filter.Offset >= total || len(appointments) == 0 {
			break
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("agendaService.ExportCSV: %w", err)
	}
	return nil
}
