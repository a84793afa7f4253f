package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/canvasslabs/canvassd/internal/audit/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

type EventListInput struct {
	Action string
	Size   int32 `validate:"gte=0,lte=500"`
	Page   int32 `validate:"gte=0"`
}

type EventListOutput struct {
	Events []entity.Event
	Total  int64
}

// EventList returns the audit trail, newest first.
func (s *Usecase) EventList(ctx context.Context, in EventListInput) (*EventListOutput, error) {
	ctx, span := s.startSpan(ctx, "EventList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "audit:events", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("invalid pagination", err)
	}

	filter := entity.EventListFilter{Size: in.Size, Page: in.Page}
	if filter.Size == 0 {
		filter.Size = 50
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if v := strings.TrimSpace(in.Action); v != "" {
		filter.IsFilterByAction = true
		filter.Action = v
	}

	events, total, err := s.repoDB.GetEventList(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get audit event list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EventListOutput{Events: events, Total: total}, nil
}
