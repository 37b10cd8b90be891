package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to store a schedule PDF.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts the S3-compatible object store holding uploaded
// schedule files. Presigned URLs let the extraction automation and the
// dashboard fetch PDFs without proxying bytes through this service.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
