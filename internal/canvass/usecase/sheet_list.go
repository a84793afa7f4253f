package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

type SheetListInput struct {
	Community string
	Search    string
}

type SheetListOutput struct {
	Sheets []entity.Sheet
}

func (s *Usecase) SheetList(ctx context.Context, in SheetListInput) (*SheetListOutput, error) {
	ctx, span := s.startSpan(ctx, "SheetList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:sheets", "read"); err != nil {
		return nil, err
	}

	filter := entity.SheetListFilter{}
	if v := strings.TrimSpace(in.Community); v != "" {
		filter.IsFilterByCommunity = true
		filter.Community = v
	}
	if v := strings.TrimSpace(in.Search); v != "" {
		filter.IsFilterBySearch = true
		filter.Search = v
	}

	sheets, err := s.repoDB.GetSheetList(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sheet list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SheetListOutput{Sheets: sheets}, nil
}

type SheetGetInput struct {
	ID int64 `validate:"required"`
}

type SheetGetOutput struct {
	Sheet entity.Sheet
}

func (s *Usecase) SheetGet(ctx context.Context, in SheetGetInput) (*SheetGetOutput, error) {
	ctx, span := s.startSpan(ctx, "SheetGet")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:sheets", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("invalid sheet id", err)
	}

	sheet, err := s.repoDB.GetSheetByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("sheet not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sheet", "sheet_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SheetGetOutput{Sheet: *sheet}, nil
}
