package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docset"
)

// Ensure the decorators implement their interfaces.
var (
	_ docset.NavService     = (*LoggingNavService)(nil)
	_ docset.VersionService = (*LoggingVersionService)(nil)
)

// LoggingNavService wraps a NavService with debug logging.
type LoggingNavService struct {
	next   docset.NavService
	logger *slog.Logger
}

// NewLoggingNavService creates a new LoggingNavService.
func NewLoggingNavService(next docset.NavService, logger *slog.Logger) *LoggingNavService {
	return &LoggingNavService{next: next, logger: logger}
}

// Pages delegates to the wrapped service and logs the operation.
func (s *LoggingNavService) Pages(ctx context.Context, src *docset.Source, version string) (pages []docset.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("nav pages",
			"source", src.Name,
			"version", version,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Pages(ctx, src, version)
}

// LoggingVersionService wraps a VersionService with debug logging.
type LoggingVersionService struct {
	next   docset.VersionService
	logger *slog.Logger
}

// NewLoggingVersionService creates a new LoggingVersionService.
func NewLoggingVersionService(next docset.VersionService, logger *slog.Logger) *LoggingVersionService {
	return &LoggingVersionService{next: next, logger: logger}
}

// LatestVersion delegates to the wrapped service and logs the result.
func (s *LoggingVersionService) LatestVersion(ctx context.Context, src *docset.Source) (version string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("version lookup",
			"source", src.Name,
			"version", version,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LatestVersion(ctx, src)
}
