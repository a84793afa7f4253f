package entity

import "time"

// Voter is a single resident recorded on a canvass sheet.
type Voter struct {
	Name        string `json:"name"`
	Age         int32  `json:"age"`
	ColourRound string `json:"colourRound"`
}

// Sheet is one house visit: the household details plus the voters recorded
// there. Location is optional, the field crew may not have a GPS fix.
type Sheet struct {
	ID          int64
	HouseName   string
	ColourRound string
	Community   string
	NoOfVoters  int32
	Latitude    *float64
	Longitude   *float64
	Voters      []Voter
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasLocation reports whether the sheet carries coordinates.
func (s Sheet) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

type SheetListFilter struct {
	IsFilterByCommunity bool
	Community           string
	IsFilterBySearch    bool
	Search              string
}

type PatchSheet struct {
	ID          int64
	HouseName   string
	ColourRound string
	Community   string
	NoOfVoters  int32
	Latitude    *float64
	Longitude   *float64
	Voters      []Voter
}
