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

type dispatchRepo struct {
	db *sqlx.DB
}

// NewDispatchRepo creates a new PostgreSQL-backed DispatchRepository.
func NewDispatchRepo(db *sqlx.DB) port.DispatchRepository {
	return &dispatchRepo{db: db}
}

func (r *dispatchRepo) CreateCampaign(ctx context.Context, campaign *domain.DispatchCampaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	if campaign.Status == "" {
		campaign.Status = domain.CampaignRascunho
	}
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	query := `INSERT INTO dispatch_campaigns
		(id, name, message, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		campaign.ID, campaign.Name, campaign.Message, campaign.Status,
		campaign.CreatedBy, campaign.CreatedAt, campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("dispatchRepo.CreateCampaign: %w", err)
	}
	return nil
}

func (r *dispatchRepo) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.DispatchCampaign, error) {
	var campaign domain.DispatchCampaign
	err := r.db.GetContext(ctx, &campaign,
		"SELECT * FROM dispatch_campaigns WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("dispatchRepo.GetCampaign: %w", err)
	}
	return &campaign, nil
}

func (r *dispatchRepo) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.DispatchCampaign, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM dispatch_campaigns")
	if err != nil {
		return nil, 0, fmt.Errorf("dispatchRepo.ListCampaigns count: %w", err)
	}

	var campaigns []domain.DispatchCampaign
	err = r.db.SelectContext(ctx, &campaigns,
		"SELECT * FROM dispatch_campaigns ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("dispatchRepo.ListCampaigns: %w", err)
	}
	return campaigns, total, nil
}

func (r *dispatchRepo) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE dispatch_campaigns SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("dispatchRepo.UpdateCampaignStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *dispatchRepo) CreateMessages(ctx context.Context, messages []domain.DispatchMessage) error {
	if len(messages) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("dispatchRepo.CreateMessages begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO dispatch_messages
		(id, campaign_id, contact_name, phone, status, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now().UTC()
	for i := range messages {
		m := &messages[i]
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		if m.Status == "" {
			m.Status = domain.MessagePendente
		}
		m.CreatedAt = now
		if _, err := tx.ExecContext(ctx, query,
			m.ID, m.CampaignID, m.ContactName, m.Phone, m.Status, m.Error, m.CreatedAt); err != nil {
			return fmt.Errorf("dispatchRepo.CreateMessages insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("dispatchRepo.CreateMessages commit: %w", err)
	}
	return nil
}

func (r *dispatchRepo) ListMessages(ctx context.Context, campaignID uuid.UUID) ([]domain.DispatchMessage, error) {
	var messages []domain.DispatchMessage
	err := r.db.SelectContext(ctx, &messages,
		"SELECT * FROM dispatch_messages WHERE campaign_id = $1 ORDER BY created_at ASC",
		campaignID)
	if err != nil {
		return nil, fmt.Errorf("dispatchRepo.ListMessages: %w", err)
	}
	return messages, nil
}

func (r *dispatchRepo) UpdateMessageStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus, sendError string) error {
	var sentAt *time.Time
	if status == domain.MessageEnviado {
		now := time.Now().UTC()
		sentAt = &now
	}
	result, err := r.db.ExecContext(ctx,
		"UPDATE dispatch_messages SET status = $1, error = $2, sent_at = $3 WHERE id = $4",
		status, sendError, sentAt, id)
	if err != nil {
		return fmt.Errorf("dispatchRepo.UpdateMessageStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
