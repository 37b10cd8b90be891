package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

// ExtractionQueueConfig holds settings for the extraction retry worker.
type ExtractionQueueConfig struct {
	PollInterval time.Duration
	MaxRetries   int
	Concurrency  int
}

// ExtractionQueueWorker polls for schedule files whose extraction trigger was
// lost (still uploaded, no callback) and re-fires the automation. Files that
// exhaust their attempts are marked failed.
type ExtractionQueueWorker struct {
	fileRepo port.FileMetaRepository
	webhooks port.WebhookDispatcher
	cfg      ExtractionQueueConfig
	wg       sync.WaitGroup
}

// NewExtractionQueueWorker creates a new ExtractionQueueWorker.
func NewExtractionQueueWorker(fileRepo port.FileMetaRepository, webhooks port.WebhookDispatcher, cfg ExtractionQueueConfig) *ExtractionQueueWorker {
	return &ExtractionQueueWorker{
		fileRepo: fileRepo,
		webhooks: webhooks,
		cfg:      cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight retries have finished.
func (w *ExtractionQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("extractionQueueWorker: started (poll=%s, concurrency=%d, maxRetries=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency, w.cfg.MaxRetries)

	for {
		select {
		case <-ctx.Done():
			log.Printf("extractionQueueWorker: shutting down, waiting for in-flight retries...")
			w.wg.Wait()
			log.Printf("extractionQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			// Files untouched for two poll intervals are considered stuck.
			cutoff := time.Now().Add(-2 * w.cfg.PollInterval)
			files, err := w.fileRepo.ListStuck(ctx, cutoff, w.cfg.MaxRetries, available)
			if err != nil {
				if ctx.Err() != nil {
					// Context canceled during poll — exit gracefully
					continue
				}
				log.Printf("extractionQueueWorker: ListStuck error: %v", err)
				continue
			}

			for i := range files {
				file := files[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight retries complete even during shutdown.
					retryCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
					defer cancel()

					w.retry(retryCtx, file)
				}()
			}
		}
	}
}

func (w *ExtractionQueueWorker) retry(ctx context.Context, file domain.FileMeta) {
	if err := w.fileRepo.IncrementExtractAttempts(ctx, file.ID); err != nil {
		log.Printf("extractionQueueWorker: incrementing attempts for %s: %v", file.ID, err)
		return
	}
	attempt := file.ExtractAttempts + 1

	log.Printf("extractionQueueWorker: re-firing extraction for file %s (attempt %d)", file.ID, attempt)
	if err := w.webhooks.TriggerExtraction(ctx, file.OriginalName, file.ID); err != nil {
		log.Printf("extractionQueueWorker: trigger failed for file %s: %v", file.ID, err)
		if attempt >= w.cfg.MaxRetries {
			if updErr := w.fileRepo.SetExtractionResult(ctx, file.ID, domain.FileStatusFailed, err.Error()); updErr != nil {
				log.Printf("extractionQueueWorker: marking %s failed: %v", file.ID, updErr)
			}
		}
		return
	}

	if err := w.fileRepo.UpdateStatus(ctx, file.ID, domain.FileStatusExtracting); err != nil {
		log.Printf("extractionQueueWorker: marking %s extracting: %v", file.ID, err)
	}
}
