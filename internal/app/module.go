package app

import (
	"log/slog"
	"os"

	"github.com/canvasslabs/canvassd/internal/audit"
	"github.com/canvasslabs/canvassd/internal/auth"
	"github.com/canvasslabs/canvassd/internal/canvass"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		err := auth.New(auth.Dependency{
			Router:        a.router,
			Messaging:     a.messaging,
			Config:        a.config,
			Instrument:    a.ins,
			HMAC:          a.hmac,
			CodeGenerator: a.codeGen,
			Clock:         a.clock,
			Validator:     a.validator,
			JWT:           a.jwt,
			Mailer:        a.mail,
			Channel:       a.mailChannel,
		})
		if err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.canvass.enabled") {
		err := canvass.New(canvass.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Enforcer:    a.casbin,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Storage:     a.storage,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Clock:       a.clock,
			Validator:   a.validator,
		})
		if err != nil {
			slog.Error("failed to init module canvass", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.audit.enabled") {
		err := audit.New(audit.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Router:     a.router,
			Enforcer:   a.casbin,
			Messaging:  a.messaging,
			Goroutine:  a.goroutine,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		})
		if err != nil {
			slog.Error("failed to init module audit", "error", err)
			os.Exit(1)
		}
	}
}
