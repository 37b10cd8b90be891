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

type fileMetaRepo struct {
	db *sqlx.DB
}

// NewFileMetaRepo creates a new PostgreSQL-backed FileMetaRepository.
func NewFileMetaRepo(db *sqlx.DB) port.FileMetaRepository {
	return &fileMetaRepo{db: db}
}

func (r *fileMetaRepo) Create(ctx context.Context, meta *domain.FileMeta) error {
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query := `INSERT INTO file_metadata
		(id, uploaded_by, file_name, original_name, file_type, file_size,
		 s3_bucket, s3_key, content_type, status, extract_attempts,
		 extraction_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		meta.ID, meta.UploadedBy, meta.FileName, meta.OriginalName,
		meta.FileType, meta.FileSize, meta.S3Bucket, meta.S3Key, meta.ContentType,
		meta.Status, meta.ExtractAttempts, meta.ExtractionError,
		meta.CreatedAt, meta.UpdatedAt)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.Create: %w", err)
	}
	return nil
}

func (r *fileMetaRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error) {
	var meta domain.FileMeta
	err := r.db.GetContext(ctx, &meta,
		"SELECT * FROM file_metadata WHERE id = $1", fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fileMetaRepo.GetByID: %w", err)
	}
	return &meta, nil
}

func (r *fileMetaRepo) List(ctx context.Context, offset, limit int) ([]domain.FileMeta, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM file_metadata WHERE status != $1", domain.FileStatusDeleted)
	if err != nil {
		return nil, 0, fmt.Errorf("fileMetaRepo.List count: %w", err)
	}

	var files []domain.FileMeta
	err = r.db.SelectContext(ctx, &files,
		`SELECT * FROM file_metadata
		 WHERE status != $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		domain.FileStatusDeleted, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("fileMetaRepo.List: %w", err)
	}
	return files, total, nil
}

func (r *fileMetaRepo) UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE file_metadata SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), fileID)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fileMetaRepo) SetExtractionResult(ctx context.Context, fileID uuid.UUID, status domain.FileStatus, extractionError string) error {
	now := time.Now().UTC()
	var extractedAt *time.Time
	if status == domain.FileStatusExtracted {
		extractedAt = &now
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE file_metadata
		 SET status = $1, extraction_error = $2, extracted_at = $3, updated_at = $4
		 WHERE id = $5`,
		status, extractionError, extractedAt, now, fileID)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.SetExtractionResult: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fileMetaRepo) ListStuck(ctx context.Context, cutoff time.Time, maxAttempts, limit int) ([]domain.FileMeta, error) {
	var files []domain.FileMeta
	err := r.db.SelectContext(ctx, &files,
		`SELECT * FROM file_metadata
		 WHERE status IN ($1, $2) AND updated_at < $3 AND extract_attempts < $4
		 ORDER BY updated_at ASC LIMIT $5`,
		domain.FileStatusUploaded, domain.FileStatusExtracting, cutoff, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("fileMetaRepo.ListStuck: %w", err)
	}
	return files, nil
}

func (r *fileMetaRepo) IncrementExtractAttempts(ctx context.Context, fileID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE file_metadata SET extract_attempts = extract_attempts + 1, updated_at = $1 WHERE id = $2",
		time.Now().UTC(), fileID)
	if err != nil {
		return fmt.Errorf("fileMetaRepo.IncrementExtractAttempts: %w", err)
	}
	return nil
}

func (r *fileMetaRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	return r.UpdateStatus(ctx, fileID, domain.FileStatusDeleted)
}
