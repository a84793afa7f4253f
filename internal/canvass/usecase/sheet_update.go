package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

type SheetUpdateInput struct {
	ID          int64  `validate:"required"`
	HouseName   string `validate:"required"`
	ColourRound string
	Community   string `validate:"required"`
	NoOfVoters  int32  `validate:"gte=0"`
	Latitude    *float64
	Longitude   *float64
	Voters      []VoterInput `validate:"dive"`
}

type SheetUpdateOutput struct {
	Sheet entity.Sheet
}

func (s *Usecase) SheetUpdate(ctx context.Context, in SheetUpdateInput) (*SheetUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "SheetUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "canvass:sheets", "write")
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("invalid sheet data", err)
	}

	voters := make([]entity.Voter, len(in.Voters))
	for i, v := range in.Voters {
		voters[i] = entity.Voter{Name: v.Name, Age: v.Age, ColourRound: v.ColourRound}
	}

	if err := s.repoDB.UpdateSheet(ctx, entity.PatchSheet{
		ID:          in.ID,
		HouseName:   in.HouseName,
		ColourRound: in.ColourRound,
		Community:   in.Community,
		NoOfVoters:  in.NoOfVoters,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Voters:      voters,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("sheet not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update sheet", "sheet_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	sheet, err := s.repoDB.GetSheetByID(ctx, in.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sheet after update", "sheet_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishSheetUpdated(ctx, SheetEvent{
		SheetID:    sheet.ID,
		HouseName:  sheet.HouseName,
		Community:  sheet.Community,
		ActorEmail: clm.UserEmail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish sheet updated", "sheet_id", sheet.ID, "error", err)
	}

	return &SheetUpdateOutput{Sheet: *sheet}, nil
}
