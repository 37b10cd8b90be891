package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// FileMetaRepository defines the contract for schedule file metadata
// persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error)
	List(ctx context.Context, offset, limit int) ([]domain.FileMeta, int, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error
	SetExtractionResult(ctx context.Context, fileID uuid.UUID, status domain.FileStatus, extractionError string) error
	// ListStuck returns files still waiting on extraction that were last
	// updated before cutoff and have fewer than maxAttempts attempts.
	ListStuck(ctx context.Context, cutoff time.Time, maxAttempts, limit int) ([]domain.FileMeta, error)
	IncrementExtractAttempts(ctx context.Context, fileID uuid.UUID) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}
