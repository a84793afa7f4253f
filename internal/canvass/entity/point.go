package entity

import "time"

// Point is a standalone map marker dropped without a full sheet.
type Point struct {
	ID        int64
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats summarizes collected data for the admin dashboard.
type Stats struct {
	TotalSheets int64
	TotalVoters int64
	TotalPoints int64
}
