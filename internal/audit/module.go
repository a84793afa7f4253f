// Package audit records what happened and who did it, fed from broker events
// published by the auth and canvass modules.
package audit

import (
	"context"

	"github.com/canvasslabs/canvassd/internal/audit/inbound"
	"github.com/canvasslabs/canvassd/internal/audit/outbound/db"
	"github.com/canvasslabs/canvassd/internal/audit/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/clock"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goroutine"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	Ctx        context.Context            `validate:"required"`
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Enforcer   *casbin.Enforcer           `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAudit := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAudit,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Enforcer:   dep.Enforcer,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
