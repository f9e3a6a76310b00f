package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure LoggingIndexService implements docset.IndexService.
var _ docset.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with debug logging.
type LoggingIndexService struct {
	next   docset.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next docset.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// Reset delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) Reset(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("index reset",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Reset(ctx)
}

// CreateEntry delegates to the wrapped service.
func (s *LoggingIndexService) CreateEntry(ctx context.Context, entry *docset.Entry) error {
	return s.next.CreateEntry(ctx, entry)
}

// CreateEntries delegates to the wrapped service and logs the batch.
func (s *LoggingIndexService) CreateEntries(ctx context.Context, entries []*docset.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("index entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntries(ctx, entries)
}

// CountEntries delegates to the wrapped service.
func (s *LoggingIndexService) CountEntries(ctx context.Context) (int, error) {
	return s.next.CountEntries(ctx)
}
