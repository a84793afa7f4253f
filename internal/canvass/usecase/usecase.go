package usecase

import (
	"context"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/clock"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/idempotency"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/canvasslabs/canvassd/internal/pkg/storage"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"go.opentelemetry.io/otel/trace"
)

type SheetEvent struct {
	SheetID    int64
	HouseName  string
	Community  string
	ActorEmail string
}

type SheetExportEvent struct {
	ObjectKey  string
	SheetCount int
	ActorEmail string
}

type repoMessaging interface {
	PublishSheetCreated(ctx context.Context, msg SheetEvent) error
	PublishSheetUpdated(ctx context.Context, msg SheetEvent) error
	PublishSheetDeleted(ctx context.Context, msg SheetEvent) error
	PublishSheetExport(ctx context.Context, msg SheetExportEvent) error
}

type repoDB interface {
	CreateSheet(ctx context.Context, in entity.Sheet) error
	GetSheetList(ctx context.Context, filter entity.SheetListFilter) ([]entity.Sheet, error)
	GetSheetByID(ctx context.Context, id int64) (*entity.Sheet, error)
	UpdateSheet(ctx context.Context, in entity.PatchSheet) error
	DeleteSheet(ctx context.Context, id int64) error

	CreatePoint(ctx context.Context, in entity.Point) error
	GetPointList(ctx context.Context) ([]entity.Point, error)
	GetPointByID(ctx context.Context, id int64) (*entity.Point, error)
	UpdatePoint(ctx context.Context, in entity.Point) error
	DeletePoint(ctx context.Context, id int64) error

	GetStats(ctx context.Context) (*entity.Stats, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	storage       storage.Storage
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Storage       storage.Storage
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		storage:       dep.Storage,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("canvass.usecase").Start(ctx, name)
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}

	ok, err := s.enforcer.Enforce(clm.UserRole, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}
