package inbound

import (
	"context"

	"github.com/canvasslabs/canvassd/internal/canvass/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
)

type uc interface {
	SheetCreate(ctx context.Context, in usecase.SheetCreateInput) (*usecase.SheetCreateOutput, error)
	SheetList(ctx context.Context, in usecase.SheetListInput) (*usecase.SheetListOutput, error)
	SheetGet(ctx context.Context, in usecase.SheetGetInput) (*usecase.SheetGetOutput, error)
	SheetUpdate(ctx context.Context, in usecase.SheetUpdateInput) (*usecase.SheetUpdateOutput, error)
	SheetDelete(ctx context.Context, in usecase.SheetDeleteInput) error
	SheetExport(ctx context.Context) (*usecase.SheetExportOutput, error)

	PointCreate(ctx context.Context, in usecase.PointCreateInput) (*usecase.PointCreateOutput, error)
	PointList(ctx context.Context) (*usecase.PointListOutput, error)
	PointGet(ctx context.Context, in usecase.PointGetInput) (*usecase.PointGetOutput, error)
	PointUpdate(ctx context.Context, in usecase.PointUpdateInput) (*usecase.PointUpdateOutput, error)
	PointDelete(ctx context.Context, in usecase.PointDeleteInput) error

	Stats(ctx context.Context) (*usecase.StatsOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Sheets (need authenticated)
	r.POST("/api/v1/canvass/sheets", end.SheetCreate)
	r.GET("/api/v1/canvass/sheets", end.SheetList)
	r.GET("/api/v1/canvass/sheets/:id", end.SheetGet)
	r.PUT("/api/v1/canvass/sheets/:id", end.SheetUpdate)
	r.DELETE("/api/v1/canvass/sheets/:id", end.SheetDelete)
	r.GET("/api/v1/canvass/sheets-export", end.SheetExport)

	// Points (need authenticated)
	r.POST("/api/v1/canvass/points", end.PointCreate)
	r.GET("/api/v1/canvass/points", end.PointList)
	r.GET("/api/v1/canvass/points/:id", end.PointGet)
	r.PUT("/api/v1/canvass/points/:id", end.PointUpdate)
	r.DELETE("/api/v1/canvass/points/:id", end.PointDelete)

	// Dashboard (need authorization)
	r.GET("/api/v1/canvass/stats", end.Stats)
}
