package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

type appointmentRepo struct {
	db *sqlx.DB
}

// NewAppointmentRepo creates a new PostgreSQL-backed AppointmentRepository.
func NewAppointmentRepo(db *sqlx.DB) port.AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) CreateBatch(ctx context.Context, appointments []domain.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("appointmentRepo.CreateBatch begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO appointments
		(id, file_id, date, raw_date, time, specialty, doctor, patient,
		 patient_phone, insurance, event, record_number, status, sources,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	now := time.Now().UTC()
	for i := range appointments {
		a := &appointments[i]
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		if a.Status == "" {
			a.Status = domain.AppointmentAguardando
		}
		a.CreatedAt = now
		a.UpdatedAt = now
		if _, err := tx.ExecContext(ctx, query,
			a.ID, a.FileID, a.Date, a.RawDate, a.Time, a.Specialty, a.Doctor,
			a.Patient, a.PatientPhone, a.Insurance, a.Event, a.RecordNumber,
			a.Status, a.Sources, a.CreatedAt, a.UpdatedAt); err != nil {
			return fmt.Errorf("appointmentRepo.CreateBatch insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("appointmentRepo.CreateBatch commit: %w", err)
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.GetContext(ctx, &a, "SELECT * FROM appointments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("appointmentRepo.GetByID: %w", err)
	}
	return &a, nil
}

// buildFilter turns an AppointmentFilter into a WHERE clause with positional
// params starting at $1.
func buildFilter(f port.AppointmentFilter) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.From != nil {
		add("date >= $%d", *f.From)
	}
	if f.To != nil {
		add("date <= $%d", *f.To)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Specialty != "" {
		add("specialty = $%d", f.Specialty)
	}
	if f.Doctor != "" {
		add("doctor = $%d", f.Doctor)
	}
	if f.PatientQuery != "" {
		add("patient ILIKE $%d", "%"+f.PatientQuery+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *appointmentRepo) List(ctx context.Context, filter port.AppointmentFilter) ([]domain.Appointment, int, error) {
	where, args := buildFilter(filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM appointments"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("appointmentRepo.List count: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(
		"SELECT * FROM appointments%s ORDER BY date ASC, time ASC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	var appointments []domain.Appointment
	err = r.db.SelectContext(ctx, &appointments, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("appointmentRepo.List: %w", err)
	}
	return appointments, total, nil
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("appointmentRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *appointmentRepo) Summary(ctx context.Context, day time.Time) (*domain.AgendaSummary, error) {
	rows := []struct {
		Status domain.AppointmentStatus `db:"status"`
		Count  int                      `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT status, COUNT(*) AS count FROM appointments WHERE date = $1 GROUP BY status",
		day)
	if err != nil {
		return nil, fmt.Errorf("appointmentRepo.Summary: %w", err)
	}

	summary := &domain.AgendaSummary{Counts: make(map[domain.AppointmentStatus]int)}
	for _, row := range rows {
		summary.Counts[row.Status] = row.Count
		summary.Total += row.Count
	}
	return summary, nil
}

func (r *appointmentRepo) DeleteByFile(ctx context.Context, fileID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM appointments WHERE file_id = $1", fileID)
	if err != nil {
		return fmt.Errorf("appointmentRepo.DeleteByFile: %w", err)
	}
	return nil
}
