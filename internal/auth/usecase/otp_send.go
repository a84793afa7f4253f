package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/canvasslabs/canvassd/internal/auth/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/mail"
)

type OTPSendInput struct {
	Email string `validate:"required"`
}

type OTPSendOutput struct {
	Signature string
	ExpiresAt int64

	// OTP carries the raw code only when no mail channel is configured.
	OTP string
}

// OTPSend issues a one-time login code bound to the given email.
//
// The server keeps no record of the code: the caller receives a signature over
// email, code and expiry and must present all of them back on verification.
func (s *Usecase) OTPSend(ctx context.Context, in OTPSendInput) (*OTPSendOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPSend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("email is required")
	}

	code, err := s.codeGen.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate login code", "error", err)
		return nil, goerror.NewServer(err)
	}

	expiresAt := s.clock.Now().Add(s.cfg.GetMinute("modules.auth.otp_ttl_minutes")).UnixMilli()

	sig, err := s.hmac.Hash(in.Email + "." + code + "." + strconv.FormatInt(expiresAt, 10))
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign login code", "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &OTPSendOutput{Signature: string(sig), ExpiresAt: expiresAt}

	if s.channel == entity.ChannelNone {
		slog.WarnContext(ctx, "no mail channel configured, returning login code in response", "email", in.Email)
		out.OTP = code
	} else {
		if err := s.mailer.Send(ctx, mail.Message{
			To:       []string{in.Email},
			Subject:  "Your admin OTP",
			TextBody: fmt.Sprintf("Your one-time code: %s (valid for 5 minutes)", code),
		}); err != nil {
			slog.ErrorContext(ctx, "failed to send login code", "email", in.Email, "channel", s.channel.String(), "error", err)
			return nil, goerror.NewServerMsg(err, "failed to send otp")
		}
	}

	if err := s.repoMessaging.PublishOTPIssued(ctx, OTPIssuedEvent{
		Email:     in.Email,
		Channel:   s.channel,
		ExpiresAt: expiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp issued", "email", in.Email, "error", err)
	}

	return out, nil
}
