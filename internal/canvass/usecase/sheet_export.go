package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/storage"
	"github.com/samber/lo"
)

type SheetExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte

	// DownloadURL is set instead of Data when object storage is configured.
	DownloadURL string
}

var exportHeaders = []string{
	"Sheet ID", "House Name", "Sheet Colour", "Community", "Total Voters",
	"Latitude", "Longitude", "Created At",
	"Voter Name", "Voter Age", "Voter Colour",
}

// SheetExport renders all sheets as a flattened CSV, one row per voter.
// Sheets without voters still produce a row with empty voter columns.
func (s *Usecase) SheetExport(ctx context.Context) (*SheetExportOutput, error) {
	ctx, span := s.startSpan(ctx, "SheetExport")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "canvass:sheets", "export")
	if err != nil {
		return nil, err
	}

	sheets, err := s.repoDB.GetSheetList(ctx, entity.SheetListFilter{})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sheet list for export", "error", err)
		return nil, goerror.NewServer(err)
	}

	if len(sheets) == 0 {
		return nil, goerror.NewBusiness("no sheets available to export", goerror.CodeNotFound)
	}

	data, err := renderSheetCSV(sheets)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render export csv", "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &SheetExportOutput{
		Filename:    fmt.Sprintf("voter-data-detailed-%s.csv", s.clock.Now().Format("2006-01-02")),
		ContentType: "text/csv",
	}

	var objectKey string

	bucket := s.cfg.GetString("modules.canvass.export_bucket")
	if s.storage == nil || bucket == "" {
		out.Data = data
	} else {
		key := "exports/" + strconv.FormatInt(s.uid.Generate(), 10) + "-" + out.Filename

		if _, err := s.storage.PutObject(ctx, bucket, key, bytes.NewReader(data), storage.PutOptions{
			Size:        int64(len(data)),
			ContentType: out.ContentType,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to upload export", "bucket", bucket, "key", key, "error", err)
			return nil, goerror.NewServer(err)
		}

		url, err := s.storage.PresignGet(ctx, bucket, key, s.cfg.GetMinute("modules.canvass.export_url_ttl_minutes"))
		if err != nil {
			slog.ErrorContext(ctx, "failed to presign export url", "bucket", bucket, "key", key, "error", err)
			return nil, goerror.NewServer(err)
		}
		out.DownloadURL = url
		objectKey = key
	}

	// Both delivery modes are audited, the inline download included.
	if err := s.repoMessaging.PublishSheetExport(ctx, SheetExportEvent{
		ObjectKey:  objectKey,
		SheetCount: len(sheets),
		ActorEmail: clm.UserEmail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish sheet export", "key", objectKey, "error", err)
	}

	return out, nil
}

func renderSheetCSV(sheets []entity.Sheet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}

	for _, sheet := range sheets {
		base := []string{
			strconv.FormatInt(sheet.ID, 10),
			sheet.HouseName,
			sheet.ColourRound,
			sheet.Community,
			strconv.FormatInt(int64(sheet.NoOfVoters), 10),
			formatCoord(sheet.Latitude),
			formatCoord(sheet.Longitude),
			sheet.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		rows := [][]string{append(base, "", "", "")}
		if len(sheet.Voters) > 0 {
			rows = lo.Map(sheet.Voters, func(v entity.Voter, _ int) []string {
				return append(append([]string{}, base...), v.Name, strconv.FormatInt(int64(v.Age), 10), v.ColourRound)
			})
		}

		for _, row := range rows {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
