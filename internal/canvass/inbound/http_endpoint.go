package inbound

import (
	"github.com/canvasslabs/canvassd/internal/canvass/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for canvass sheets, map points and the
// admin dashboard.
type HTTPEndpoint struct {
	uc uc
}

func sheetVoterInputs(voters []VoterModel) []usecase.VoterInput {
	out := make([]usecase.VoterInput, len(voters))
	for i, v := range voters {
		out[i] = usecase.VoterInput{Name: v.Name, Age: v.Age, ColourRound: v.ColourRound}
	}
	return out
}

func sheetLocation(loc *LocationModel) (lat, lng *float64) {
	if loc == nil {
		return nil, nil
	}
	return &loc.Lat, &loc.Lng
}

// SheetCreate records a new canvass sheet. A retried submission can carry an
// Idempotency-Key header to dedupe.
func (h *HTTPEndpoint) SheetCreate(r *router.Request) (any, error) {
	var req SheetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	lat, lng := sheetLocation(req.Location)
	resp, err := h.uc.SheetCreate(r.Context(), usecase.SheetCreateInput{
		HouseName:      req.HouseName,
		ColourRound:    req.ColourRound,
		Community:      req.Community,
		NoOfVoters:     req.NoOfVoters,
		Latitude:       lat,
		Longitude:      lng,
		Voters:         sheetVoterInputs(req.Voters),
		IdempotencyKey: r.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return newSheetResponse(resp.Sheet), nil
}

func (h *HTTPEndpoint) SheetList(r *router.Request) (any, error) {
	resp, err := h.uc.SheetList(r.Context(), usecase.SheetListInput{
		Community: r.GetQuery("community"),
		Search:    r.GetQuery("search"),
	})
	if err != nil {
		return nil, err
	}

	sheets := make([]SheetResponse, len(resp.Sheets))
	for i, sheet := range resp.Sheets {
		sheets[i] = newSheetResponse(sheet)
	}

	return SheetListResponse{Sheets: sheets}, nil
}

func (h *HTTPEndpoint) SheetGet(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("invalid sheet id")
	}

	resp, err := h.uc.SheetGet(r.Context(), usecase.SheetGetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return newSheetResponse(resp.Sheet), nil
}

func (h *HTTPEndpoint) SheetUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("invalid sheet id")
	}

	var req SheetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	lat, lng := sheetLocation(req.Location)
	resp, err := h.uc.SheetUpdate(r.Context(), usecase.SheetUpdateInput{
		ID:          id,
		HouseName:   req.HouseName,
		ColourRound: req.ColourRound,
		Community:   req.Community,
		NoOfVoters:  req.NoOfVoters,
		Latitude:    lat,
		Longitude:   lng,
		Voters:      sheetVoterInputs(req.Voters),
	})
	if err != nil {
		return nil, err
	}

	return newSheetResponse(resp.Sheet), nil
}

func (h *HTTPEndpoint) SheetDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("invalid sheet id")
	}

	if err := h.uc.SheetDelete(r.Context(), usecase.SheetDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return SheetDeleteResponse{Success: true}, nil
}

// SheetExport streams the flattened voter CSV, or returns a signed download
// URL when object storage is configured.
func (h *HTTPEndpoint) SheetExport(r *router.Request) (any, error) {
	resp, err := h.uc.SheetExport(r.Context())
	if err != nil {
		return nil, err
	}

	if resp.DownloadURL != "" {
		return SheetExportResponse{Success: true, URL: resp.DownloadURL, Filename: resp.Filename}, nil
	}

	return router.RawResponse{
		ContentType: resp.ContentType,
		Filename:    resp.Filename,
		Body:        resp.Data,
	}, nil
}

func (h *HTTPEndpoint) PointCreate(r *router.Request) (any, error) {
	var req PointRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if req.Location == nil {
		return nil, goerror.NewInvalidInput("location is required")
	}

	resp, err := h.uc.PointCreate(r.Context(), usecase.PointCreateInput{
		Latitude:  req.Location.Lat,
		Longitude: req.Location.Lng,
	})
	if err != nil {
		return nil, err
	}

	return newPointResponse(resp.Point), nil
}

func (h *HTTPEndpoint) PointList(r *router.Request) (any, error) {
	resp, err := h.uc.PointList(r.Context())
	if err != nil {
		return nil, err
	}

	points := make([]PointResponse, len(resp.Points))
	for i, point := range resp.Points {
		points[i] = newPointResponse(point)
	}

	return PointListResponse{Points: points}, nil
}

func (h *HTTPEndpoint) PointGet(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("invalid point id")
	}

	resp, err := h.uc.PointGet(r.Context(), usecase.PointGetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return newPointResponse(resp.Point), nil
}

func (h *HTTPEndpoint) PointUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("invalid point id")
	}

	var req PointRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if req.Location == nil {
		return nil, goerror.NewInvalidInput("location is required")
	}

	resp, err := h.uc.PointUpdate(r.Context(), usecase.PointUpdateInput{
		ID:        id,
		Latitude:  req.Location.Lat,
		Longitude: req.Location.Lng,
	})
	if err != nil {
		return nil, err
	}

	return newPointResponse(resp.Point), nil
}

func (h *HTTPEndpoint) PointDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, goerror.NewInvalidFormat("invalid point id")
	}

	if err := h.uc.PointDelete(r.Context(), usecase.PointDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return SheetDeleteResponse{Success: true}, nil
}

func (h *HTTPEndpoint) Stats(r *router.Request) (any, error) {
	resp, err := h.uc.Stats(r.Context())
	if err != nil {
		return nil, err
	}

	return StatsResponse{
		TotalSheets: resp.Stats.TotalSheets,
		TotalVoters: resp.Stats.TotalVoters,
		TotalPoints: resp.Stats.TotalPoints,
	}, nil
}
