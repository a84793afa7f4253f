package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

type PointCreateInput struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

type PointCreateOutput struct {
	Point entity.Point
}

func (s *Usecase) PointCreate(ctx context.Context, in PointCreateInput) (*PointCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "PointCreate")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:points", "write"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("invalid point data", err)
	}

	now := s.clock.Now()
	point := entity.Point{
		ID:        s.uid.Generate(),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repoDB.CreatePoint(ctx, point); err != nil {
		slog.ErrorContext(ctx, "failed to repo create point", "point_id", point.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PointCreateOutput{Point: point}, nil
}

type PointListOutput struct {
	Points []entity.Point
}

func (s *Usecase) PointList(ctx context.Context) (*PointListOutput, error) {
	ctx, span := s.startSpan(ctx, "PointList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:points", "read"); err != nil {
		return nil, err
	}

	points, err := s.repoDB.GetPointList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get point list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PointListOutput{Points: points}, nil
}

type PointGetInput struct {
	ID int64 `validate:"required"`
}

type PointGetOutput struct {
	Point entity.Point
}

func (s *Usecase) PointGet(ctx context.Context, in PointGetInput) (*PointGetOutput, error) {
	ctx, span := s.startSpan(ctx, "PointGet")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:points", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("invalid point id", err)
	}

	point, err := s.repoDB.GetPointByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("point not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get point", "point_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PointGetOutput{Point: *point}, nil
}

type PointUpdateInput struct {
	ID        int64   `validate:"required"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

type PointUpdateOutput struct {
	Point entity.Point
}

func (s *Usecase) PointUpdate(ctx context.Context, in PointUpdateInput) (*PointUpdateOutput, error) {
	ctx, span := s.startSpan(ctx, "PointUpdate")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:points", "write"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("invalid point data", err)
	}

	if err := s.repoDB.UpdatePoint(ctx, entity.Point{
		ID:        in.ID,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("point not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update point", "point_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	point, err := s.repoDB.GetPointByID(ctx, in.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get point after update", "point_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PointUpdateOutput{Point: *point}, nil
}

type PointDeleteInput struct {
	ID int64 `validate:"required"`
}

func (s *Usecase) PointDelete(ctx context.Context, in PointDeleteInput) error {
	ctx, span := s.startSpan(ctx, "PointDelete")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "canvass:points", "delete"); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput("invalid point id", err)
	}

	if err := s.repoDB.DeletePoint(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("point not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete point", "point_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
