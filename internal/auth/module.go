// Package auth implements the stateless login code protocol: issuing a signed
// one-time code credential and exchanging a verified code for a session token.
package auth

import (
	"github.com/canvasslabs/canvassd/internal/auth/entity"
	"github.com/canvasslabs/canvassd/internal/auth/inbound"
	"github.com/canvasslabs/canvassd/internal/auth/outbound/mq"
	"github.com/canvasslabs/canvassd/internal/auth/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/clock"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/hash"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/canvasslabs/canvassd/internal/pkg/mail"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
	"github.com/canvasslabs/canvassd/internal/pkg/otp"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
)

type Dependency struct {
	Router        *router.Router             `validate:"required"`
	Messaging     messaging.Messaging        `validate:"required"`
	Config        config.Config              `validate:"required"`
	Instrument    instrument.Instrumentation `validate:"required"`
	HMAC          hash.Hash                  `validate:"required"`
	CodeGenerator otp.CodeGenerator          `validate:"required"`
	Clock         clock.Clocker              `validate:"required"`
	Validator     validator.Validator        `validate:"required"`
	JWT           jwt.JWT                    `validate:"required"`

	// Mailer is nil when Channel is ChannelNone (development fallback).
	Mailer  mail.Mail
	Channel entity.Channel
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		CodeGenerator: dep.CodeGenerator,
		Mailer:        dep.Mailer,
		Channel:       dep.Channel,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
