package db

import (
	"context"
	"encoding/json"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
)

const sheetColumns = `id, house_name, colour_round, community, no_of_voters, latitude, longitude, voters, created_at, updated_at`

func (s *DB) CreateSheet(ctx context.Context, in entity.Sheet) (err error) {
	ctx, span := s.startSpan(ctx, "CreateSheet")
	defer func() { s.endSpan(span, err) }()

	voters, err := json.Marshal(in.Voters)
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(ctx, `
		INSERT INTO canvass_sheets (id, house_name, colour_round, community, no_of_voters, latitude, longitude, voters, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		in.ID, in.HouseName, in.ColourRound, in.Community, in.NoOfVoters,
		in.Latitude, in.Longitude, voters, in.CreatedAt, in.UpdatedAt,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) GetSheetList(ctx context.Context, filter entity.SheetListFilter) (_ []entity.Sheet, err error) {
	ctx, span := s.startSpan(ctx, "GetSheetList")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + sheetColumns + ` FROM canvass_sheets WHERE 1=1`
	args := []any{}

	if filter.IsFilterByCommunity {
		args = append(args, filter.Community)
		query += ` AND community = $1`
	}
	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		if len(args) == 1 {
			query += ` AND house_name ILIKE $1`
		} else {
			query += ` AND house_name ILIKE $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	sheets := make([]entity.Sheet, 0)
	for rows.Next() {
		var sheet entity.Sheet
		var voters []byte
		if err = rows.Scan(
			&sheet.ID, &sheet.HouseName, &sheet.ColourRound, &sheet.Community, &sheet.NoOfVoters,
			&sheet.Latitude, &sheet.Longitude, &voters, &sheet.CreatedAt, &sheet.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err = json.Unmarshal(voters, &sheet.Voters); err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}

func (s *DB) GetSheetByID(ctx context.Context, id int64) (_ *entity.Sheet, err error) {
	ctx, span := s.startSpan(ctx, "GetSheetByID")
	defer func() { s.endSpan(span, err) }()

	var sheet entity.Sheet
	var voters []byte
	err = s.conn.QueryRow(ctx, `SELECT `+sheetColumns+` FROM canvass_sheets WHERE id = $1`, id).Scan(
		&sheet.ID, &sheet.HouseName, &sheet.ColourRound, &sheet.Community, &sheet.NoOfVoters,
		&sheet.Latitude, &sheet.Longitude, &voters, &sheet.CreatedAt, &sheet.UpdatedAt,
	)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	if err = json.Unmarshal(voters, &sheet.Voters); err != nil {
		return nil, err
	}

	return &sheet, nil
}

func (s *DB) UpdateSheet(ctx context.Context, in entity.PatchSheet) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateSheet")
	defer func() { s.endSpan(span, err) }()

	voters, err := json.Marshal(in.Voters)
	if err != nil {
		return err
	}

	tag, err := s.conn.Exec(ctx, `
		UPDATE canvass_sheets
		SET house_name = $2, colour_round = $3, community = $4, no_of_voters = $5,
			latitude = $6, longitude = $7, voters = $8, updated_at = now()
		WHERE id = $1`,
		in.ID, in.HouseName, in.ColourRound, in.Community, in.NoOfVoters,
		in.Latitude, in.Longitude, voters,
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

func (s *DB) DeleteSheet(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteSheet")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM canvass_sheets WHERE id = $1`, id)
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
