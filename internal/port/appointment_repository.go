package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// AppointmentFilter narrows agenda queries. Zero values mean "no filter".
type AppointmentFilter struct {
	From      *time.Time
	To        *time.Time
	Status    domain.AppointmentStatus
	Specialty string
	Doctor    string
	// PatientQuery is a case-insensitive substring match on the patient name.
	PatientQuery string
	Offset       int
	Limit        int
}

// AppointmentRepository defines the contract for agenda persistence.
type AppointmentRepository interface {
	CreateBatch(ctx context.Context, appointments []domain.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Summary(ctx context.Context, day time.Time) (*domain.AgendaSummary, error)
	DeleteByFile(ctx context.Context, fileID uuid.UUID) error
}
