package app

import (
	"context"
	"net/http"

	authentity "github.com/canvasslabs/canvassd/internal/auth/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/clock"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goroutine"
	"github.com/canvasslabs/canvassd/internal/pkg/hash"
	"github.com/canvasslabs/canvassd/internal/pkg/idempotency"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/canvasslabs/canvassd/internal/pkg/mail"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
	"github.com/canvasslabs/canvassd/internal/pkg/otp"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
	"github.com/canvasslabs/canvassd/internal/pkg/storage"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	codeGen   otp.CodeGenerator
	jwt       jwt.JWT

	// resources
	dbConn      *pgxpool.Pool
	cacheConn   *redis.Client
	idemp       idempotency.Idempotency
	mail        mail.Mail
	mailChannel authentity.Channel
	messaging   messaging.Messaging
	storage     storage.Storage
	casbin      *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
