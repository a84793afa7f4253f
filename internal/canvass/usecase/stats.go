package usecase

import (
	"context"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

type StatsOutput struct {
	Stats entity.Stats
}

// Stats returns the totals shown on the admin dashboard.
func (s *Usecase) Stats(ctx context.Context) (*StatsOutput, error) {
	ctx, span := s.startSpan(ctx, "Stats")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:stats", "read"); err != nil {
		return nil, err
	}

	stats, err := s.repoDB.GetStats(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get stats", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &StatsOutput{Stats: *stats}, nil
}
