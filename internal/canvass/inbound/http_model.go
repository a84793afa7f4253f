package inbound

import (
	"time"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
)

type LocationModel struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VoterModel struct {
	Name        string `json:"name"`
	Age         int32  `json:"age"`
	ColourRound string `json:"colourRound"`
}

type SheetRequest struct {
	HouseName   string         `json:"houseName"`
	ColourRound string         `json:"colourRound"`
	Community   string         `json:"community"`
	NoOfVoters  int32          `json:"noOfVoters"`
	Location    *LocationModel `json:"location"`
	Voters      []VoterModel   `json:"voters"`
}

type SheetResponse struct {
	ID          int64          `json:"id,string"`
	HouseName   string         `json:"houseName"`
	ColourRound string         `json:"colourRound"`
	Community   string         `json:"community"`
	NoOfVoters  int32          `json:"noOfVoters"`
	Location    *LocationModel `json:"location,omitempty"`
	Voters      []VoterModel   `json:"voters"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

func newSheetResponse(sheet entity.Sheet) SheetResponse {
	voters := make([]VoterModel, len(sheet.Voters))
	for i, v := range sheet.Voters {
		voters[i] = VoterModel{Name: v.Name, Age: v.Age, ColourRound: v.ColourRound}
	}

	var loc *LocationModel
	if sheet.HasLocation() {
		loc = &LocationModel{Lat: *sheet.Latitude, Lng: *sheet.Longitude}
	}

	return SheetResponse{
		ID:          sheet.ID,
		HouseName:   sheet.HouseName,
		ColourRound: sheet.ColourRound,
		Community:   sheet.Community,
		NoOfVoters:  sheet.NoOfVoters,
		Location:    loc,
		Voters:      voters,
		CreatedAt:   sheet.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   sheet.UpdatedAt.Format(time.RFC3339),
	}
}

type SheetListResponse struct {
	Sheets []SheetResponse `json:"sheets"`
}

type SheetDeleteResponse struct {
	Success bool `json:"success"`
}

type SheetExportResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type PointRequest struct {
	Location *LocationModel `json:"location"`
}

type PointResponse struct {
	ID        int64          `json:"id,string"`
	Location  *LocationModel `json:"location"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

func newPointResponse(point entity.Point) PointResponse {
	return PointResponse{
		ID:        point.ID,
		Location:  &LocationModel{Lat: point.Latitude, Lng: point.Longitude},
		CreatedAt: point.CreatedAt.Format(time.RFC3339),
		UpdatedAt: point.UpdatedAt.Format(time.RFC3339),
	}
}

type PointListResponse struct {
	Points []PointResponse `json:"points"`
}

type StatsResponse struct {
	TotalSheets int64 `json:"totalSheets"`
	TotalVoters int64 `json:"totalVoters"`
	TotalPoints int64 `json:"totalPoints"`
}
