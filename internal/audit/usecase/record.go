package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/canvasslabs/canvassd/internal/audit/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/valueobject"
)

type ConsumeOTPIssuedInput struct {
	Email     string
	Channel   string
	ExpiresAt int64
}

func (s *Usecase) ConsumeOTPIssued(ctx context.Context, in ConsumeOTPIssuedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPIssued")
	defer span.End()

	return s.record(ctx, entity.ActionOTPIssued, in.Email, valueobject.JSONMap{
		"channel":    in.Channel,
		"expires_at": in.ExpiresAt,
	})
}

type ConsumeOTPVerifiedInput struct {
	Email string
	Role  string
}

func (s *Usecase) ConsumeOTPVerified(ctx context.Context, in ConsumeOTPVerifiedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOTPVerified")
	defer span.End()

	return s.record(ctx, entity.ActionOTPVerified, in.Email, valueobject.JSONMap{
		"role": in.Role,
	})
}

type ConsumeSheetEventInput struct {
	Action     string
	SheetID    int64
	HouseName  string
	Community  string
	ActorEmail string
}

func (s *Usecase) ConsumeSheetEvent(ctx context.Context, in ConsumeSheetEventInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeSheetEvent")
	defer span.End()

	return s.record(ctx, in.Action, in.ActorEmail, valueobject.JSONMap{
		"sheet_id":   strconv.FormatInt(in.SheetID, 10),
		"house_name": in.HouseName,
		"community":  in.Community,
	})
}

type ConsumeSheetExportInput struct {
	ObjectKey  string
	SheetCount int
	ActorEmail string
}

func (s *Usecase) ConsumeSheetExport(ctx context.Context, in ConsumeSheetExportInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeSheetExport")
	defer span.End()

	return s.record(ctx, entity.ActionSheetExport, in.ActorEmail, valueobject.JSONMap{
		"object_key":  in.ObjectKey,
		"sheet_count": in.SheetCount,
	})
}

func (s *Usecase) record(ctx context.Context, action, actorEmail string, payload valueobject.JSONMap) error {
	if err := s.repoDB.CreateEvent(ctx, entity.Event{
		ID:         s.uid.Generate(),
		Action:     action,
		ActorEmail: actorEmail,
		Payload:    payload,
		OccurredAt: s.clock.Now(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create audit event", "action", action, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
