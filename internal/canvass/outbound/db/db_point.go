package db

import (
	"context"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

func (s *DB) CreatePoint(ctx context.Context, in entity.Point) (err error) {
	ctx, span := s.startSpan(ctx, "CreatePoint")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO canvass_points (id, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		in.ID, in.Latitude, in.Longitude, in.CreatedAt, in.UpdatedAt,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) GetPointList(ctx context.Context) (_ []entity.Point, err error) {
	ctx, span := s.startSpan(ctx, "GetPointList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, latitude, longitude, created_at, updated_at
		FROM canvass_points ORDER BY created_at DESC`)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	points := make([]entity.Point, 0)
	for rows.Next() {
		var point entity.Point
		if err = rows.Scan(&point.ID, &point.Latitude, &point.Longitude, &point.CreatedAt, &point.UpdatedAt); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

func (s *DB) GetPointByID(ctx context.Context, id int64) (_ *entity.Point, err error) {
	ctx, span := s.startSpan(ctx, "GetPointByID")
	defer func() { s.endSpan(span, err) }()

	var point entity.Point
	err = s.conn.QueryRow(ctx, `
		SELECT id, latitude, longitude, created_at, updated_at
		FROM canvass_points WHERE id = $1`, id).
		Scan(&point.ID, &point.Latitude, &point.Longitude, &point.CreatedAt, &point.UpdatedAt)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &point, nil
}

func (s *DB) UpdatePoint(ctx context.Context, in entity.Point) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePoint")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE canvass_points SET latitude = $2, longitude = $3, updated_at = now()
		WHERE id = $1`,
		in.ID, in.Latitude, in.Longitude,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) DeletePoint(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeletePoint")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM canvass_points WHERE id = $1`, id)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) GetStats(ctx context.Context) (_ *entity.Stats, err error) {
	ctx, span := s.startSpan(ctx, "GetStats")
	defer func() { s.endSpan(span, err) }()

	var stats entity.Stats
	err = s.conn.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM canvass_sheets),
			(SELECT coalesce(sum(no_of_voters), 0) FROM canvass_sheets),
			(SELECT count(*) FROM canvass_points)`).
		Scan(&stats.TotalSheets, &stats.TotalVoters, &stats.TotalPoints)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &stats, nil
}
