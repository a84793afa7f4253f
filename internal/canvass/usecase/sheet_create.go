package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/idempotency"
)

type VoterInput struct {
	Name        string `validate:"required"`
	Age         int32  `validate:"gte=0,lte=150"`
	ColourRound string
}

type SheetCreateInput struct {
	HouseName   string `validate:"required"`
	ColourRound string
	Community   string `validate:"required"`
	NoOfVoters  int32  `validate:"gte=0"`
	Latitude    *float64
	Longitude   *float64
	Voters      []VoterInput `validate:"dive"`

	// IdempotencyKey dedupes retried submissions from the field app.
	IdempotencyKey string
}

type SheetCreateOutput struct {
	Sheet entity.Sheet
}

func (s *Usecase) SheetCreate(ctx context.Context, in SheetCreateInput) (*SheetCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "SheetCreate")
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

	now := s.clock.Now()
	sheet := entity.Sheet{
		ID:          s.uid.Generate(),
		HouseName:   in.HouseName,
		ColourRound: in.ColourRound,
		Community:   in.Community,
		NoOfVoters:  in.NoOfVoters,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Voters:      voters,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	create := func(ctx context.Context) error {
		if err := s.repoDB.CreateSheet(ctx, sheet); err != nil {
			slog.ErrorContext(ctx, "failed to repo create sheet", "sheet_id", sheet.ID, "error", err)
			return goerror.NewServer(err)
		}
		return nil
	}

	if in.IdempotencyKey != "" {
		err = s.idemp.Exec(ctx, "canvass:sheet_create:"+in.IdempotencyKey, create)
		if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
			slog.WarnContext(ctx, "duplicate sheet submission", "idempotency_key", in.IdempotencyKey)
			return nil, goerror.NewBusiness("duplicate submission", goerror.CodeConflict)
		}
	} else {
		err = create(ctx)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repoMessaging.PublishSheetCreated(ctx, SheetEvent{
		SheetID:    sheet.ID,
		HouseName:  sheet.HouseName,
		Community:  sheet.Community,
		ActorEmail: clm.UserEmail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish sheet created", "sheet_id", sheet.ID, "error", err)
	}

	return &SheetCreateOutput{Sheet: sheet}, nil
}
