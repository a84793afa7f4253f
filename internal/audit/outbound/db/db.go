package db

import (
	"context"
	"errors"

	"github.com/canvasslabs/canvassd/internal/audit/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/valueobject"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("audit.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DB) CreateEvent(ctx context.Context, in entity.Event) (err error) {
	ctx, span := s.startSpan(ctx, "CreateEvent")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO audit_events (id, action, actor_email, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		in.ID, in.Action, in.ActorEmail, in.Payload, in.OccurredAt,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) GetEventList(ctx context.Context, filter entity.EventListFilter) (_ []entity.Event, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetEventList")
	defer func() { s.endSpan(span, err) }()

	where := ``
	args := []any{filter.Size, (filter.Page - 1) * filter.Size}
	if filter.IsFilterByAction {
		where = ` WHERE action = $3`
		args = append(args, filter.Action)
	}

	rows, err := s.conn.Query(ctx, `
		SELECT id, action, actor_email, payload, occurred_at, count(*) OVER()
		FROM audit_events`+where+`
		ORDER BY occurred_at DESC
		LIMIT $1 OFFSET $2`, args...)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}
	defer rows.Close()

	var total int64
	events := make([]entity.Event, 0)
	for rows.Next() {
		var ev entity.Event
		var payload valueobject.JSONMap
		if err = rows.Scan(&ev.ID, &ev.Action, &ev.ActorEmail, &payload, &ev.OccurredAt, &total); err != nil {
			return nil, 0, err
		}
		ev.Payload = payload
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
