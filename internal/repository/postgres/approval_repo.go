package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

type approvalRepo struct {
	db *sqlx.DB
}

// NewApprovalRepo creates a new PostgreSQL-backed ApprovalRepository.
func NewApprovalRepo(db *sqlx.DB) port.ApprovalRepository {
	return &approvalRepo{db: db}
}

func (r *approvalRepo) Create(ctx context.Context, item *domain.ApprovalItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Status == "" {
		item.Status = domain.ApprovalPendente
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO approval_items
		(id, type, status, patient_name, patient_phone, professional, insurance,
		 card_number, specialty, notes, date, time, new_date, new_time,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Type, item.Status, item.PatientName, item.PatientPhone,
		item.Professional, item.Insurance, item.CardNumber, item.Specialty,
		item.Notes, item.Date, item.Time, item.NewDate, item.NewTime,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("approvalRepo.Create: %w", err)
	}
	return nil
}

func (r *approvalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApprovalItem, error) {
	var item domain.ApprovalItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM approval_items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("approvalRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *approvalRepo) ListPending(ctx context.Context, typ domain.ApprovalType, offset, limit int) ([]domain.ApprovalItem, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM approval_items WHERE type = $1 AND status = $2",
		typ, domain.ApprovalPendente)
	if err != nil {
		return nil, 0, fmt.Errorf("approvalRepo.ListPending count: %w", err)
	}

	var items []domain.ApprovalItem
	err = r.db.SelectContext(ctx, &items,
		`SELECT * FROM approval_items
		 WHERE type = $1 AND status = $2
		 ORDER BY created_at ASC LIMIT $3 OFFSET $4`,
		typ, domain.ApprovalPendente, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("approvalRepo.ListPending: %w", err)
	}
	return items, total, nil
}

func (r *approvalRepo) Resolve(ctx context.Context, item *domain.ApprovalItem) error {
	item.UpdatedAt = time.Now().UTC()
	// Guarded on pendente so a second decision never overwrites the first.
	result, err := r.db.ExecContext(ctx,
		`UPDATE approval_items
		 SET status = $1, new_date = $2, new_time = $3, notes = $4,
		     resolved_by = $5, resolved_at = $6, updated_at = $7
		 WHERE id = $8 AND status = $9`,
		item.Status, item.NewDate, item.NewTime, item.Notes,
		item.ResolvedBy, item.ResolvedAt, item.UpdatedAt,
		item.ID, domain.ApprovalPendente)
	if err != nil {
		return fmt.Errorf("approvalRepo.Resolve: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAlreadyResolved
	}
	return nil
}
