package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

type SheetDeleteInput struct {
	ID int64 `validate:"required"`
}

func (s *Usecase) SheetDelete(ctx context.Context, in SheetDeleteInput) error {
	ctx, span := s.startSpan(ctx, "SheetDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "canvass:sheets", "delete")
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput("invalid sheet id", err)
	}

	sheet, err := s.repoDB.GetSheetByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("sheet not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sheet before delete", "sheet_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteSheet(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("sheet not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete sheet", "sheet_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishSheetDeleted(ctx, SheetEvent{
		SheetID:    sheet.ID,
		HouseName:  sheet.HouseName,
		Community:  sheet.Community,
		ActorEmail: clm.UserEmail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish sheet deleted", "sheet_id", sheet.ID, "error", err)
	}

	return nil
}
