package inbound

import (
	"context"

	"github.com/canvasslabs/canvassd/internal/audit/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
)

type uc interface {
	ConsumeOTPIssued(ctx context.Context, in usecase.ConsumeOTPIssuedInput) error
	ConsumeOTPVerified(ctx context.Context, in usecase.ConsumeOTPVerifiedInput) error
	ConsumeSheetEvent(ctx context.Context, in usecase.ConsumeSheetEventInput) error
	ConsumeSheetExport(ctx context.Context, in usecase.ConsumeSheetExportInput) error

	EventList(ctx context.Context, in usecase.EventListInput) (*usecase.EventListOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/audit/events", end.EventList)
}
