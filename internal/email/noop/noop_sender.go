package noop

import (
	"context"
	"log"

	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs reports to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendExtractionReport(_ context.Context, toEmail string, report port.ExtractionReport) error {
	if report.FailedReason != "" {
		log.Printf("[NOOP EMAIL] Extraction report for %s: file %q failed: %s",
			toEmail, report.FileName, report.FailedReason)
		return nil
	}
	log.Printf("[NOOP EMAIL] Extraction report for %s: file %q produced %d appointments",
		toEmail, report.FileName, report.RecordCount)
	return nil
}
