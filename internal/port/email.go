package port

import "context"

// ExtractionReport summarizes one schedule extraction for notification.
type ExtractionReport struct {
	FileName     string
	RecordCount  int
	FailedReason string
}

// EmailSender defines the contract for sending operational emails.
type EmailSender interface {
	SendExtractionReport(ctx context.Context, toEmail string, report ExtractionReport) error
}
