package entity

import (
	"time"

	"github.com/canvasslabs/canvassd/internal/pkg/valueobject"
)

const (
	ActionOTPIssued    string = "otp_issued"
	ActionOTPVerified  string = "otp_verified"
	ActionSheetCreated string = "sheet_created"
	ActionSheetUpdated string = "sheet_updated"
	ActionSheetDeleted string = "sheet_deleted"
	ActionSheetExport  string = "sheet_export"
)

// Event is one audit trail entry, recorded from broker events so the write
// path never blocks on the audit store.
type Event struct {
	ID         int64
	Action     string
	ActorEmail string
	Payload    valueobject.JSONMap
	OccurredAt time.Time
}

type EventListFilter struct {
	IsFilterByAction bool
	Action           string
	Size             int32
	Page             int32
}
