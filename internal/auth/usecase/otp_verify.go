package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/canvasslabs/canvassd/internal/auth/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
)

type OTPVerifyInput struct {
	Email     string `validate:"required"`
	OTP       string `validate:"required"`
	Signature string `validate:"required"`
	ExpiresAt int64  `validate:"required"`
}

type OTPVerifyOutput struct {
	Token string
	User  entity.User
}

// OTPVerify checks a presented code against its signed credential and mints a
// session token on success.
//
// Expiry is checked before the signature so an expired credential gets the
// expiry message regardless of its integrity. Signature comparison is constant
// time. A valid credential verifies any number of times until expiry; the only
// revocation mechanism is the expiry itself.
func (s *Usecase) OTPVerify(ctx context.Context, in OTPVerifyInput) (*OTPVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput("missing required fields")
	}

	if s.clock.Now().UnixMilli() > in.ExpiresAt {
		return nil, goerror.NewInvalidInput("otp expired")
	}

	payload := in.Email + "." + in.OTP + "." + strconv.FormatInt(in.ExpiresAt, 10)
	if !s.hmac.Verify(in.Signature, payload) {
		slog.WarnContext(ctx, "login code signature mismatch", "email", in.Email)
		return nil, goerror.NewInvalidInput("invalid otp")
	}

	user := s.resolveUser(in.Email)

	token, err := s.jwt.Generate(jwt.Subject{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role.String(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishOTPVerified(ctx, OTPVerifiedEvent{
		Email: user.Email,
		Role:  user.Role,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish otp verified", "email", user.Email, "error", err)
	}

	return &OTPVerifyOutput{Token: token, User: user}, nil
}

// resolveUser derives the account from the email alone. Admin access is bound
// to the configured admin email, everyone else gets the member role.
func (s *Usecase) resolveUser(email string) entity.User {
	role := entity.RoleUser
	id := int64(2)
	if email == strings.TrimSpace(strings.ToLower(s.cfg.GetString("modules.auth.admin_email"))) {
		role = entity.RoleAdmin
		id = 1
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	return entity.User{
		ID:       id,
		Username: email,
		Email:    email,
		Name:     name,
		Role:     role,
	}
}
