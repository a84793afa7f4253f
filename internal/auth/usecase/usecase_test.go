package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canvasslabs/canvassd/internal/auth/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/hash"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/canvasslabs/canvassd/internal/pkg/mail"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeCodeGen struct {
	code string
	err  error
}

func (g *fakeCodeGen) Generate() (string, error) { return g.code, g.err }

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)

	return nil
}

func (m *fakeMailer) Close() error { return nil }

type fakeAuthMessaging struct {
	issued   []OTPIssuedEvent
	verified []OTPVerifiedEvent
}

func (f *fakeAuthMessaging) PublishOTPIssued(_ context.Context, msg OTPIssuedEvent) error {
	f.issued = append(f.issued, msg)

	return nil
}

func (f *fakeAuthMessaging) PublishOTPVerified(_ context.Context, msg OTPVerifiedEvent) error {
	f.verified = append(f.verified, msg)

	return nil
}

type fakeStringID struct{ id string }

func (g fakeStringID) Generate() string { return g.id }

const testConfigYAML = `
modules:
  auth:
    otp_ttl_minutes: 5
    admin_email: Admin@Example.com
`

type ucFixture struct {
	uc        *Usecase
	clock     *fakeClock
	codeGen   *fakeCodeGen
	mailer    *fakeMailer
	messaging *fakeAuthMessaging
}

func newFixture(t *testing.T, channel entity.Channel) *ucFixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clk := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "canvassd",
		Audiences: []string{"canvassd-admin"},
		TTL:       24 * time.Hour,
		Clock:     clk,
		UUID:      fakeStringID{id: "token-id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := &ucFixture{
		clock:     clk,
		codeGen:   &fakeCodeGen{code: "123456"},
		mailer:    &fakeMailer{},
		messaging: &fakeAuthMessaging{},
	}

	f.uc = New(Dependency{
		RepoMessaging: f.messaging,
		Validator:     v10,
		Config:        cfg,
		HMAC:          hash.NewHMACSHA256("unit-test-secret"),
		CodeGenerator: f.codeGen,
		Mailer:        f.mailer,
		Channel:       channel,
		Clock:         clk,
		JWT:           tokener,
		Instrument:    instrument.NewNoop(),
	})

	return f
}

func errMessage(t *testing.T, err error) string {
	t.Helper()

	if err == nil {
		t.Fatalf("expected an error")
	}

	return err.Error()
}

func TestUsecase_OTPSend(t *testing.T) {
	t.Run("MissingEmail", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)

		// Act
		_, err := f.uc.OTPSend(context.Background(), OTPSendInput{})

		// Assert
		if got := errMessage(t, err); got != "email is required" {
			t.Fatalf("expected %q, got %q", "email is required", got)
		}
	})

	t.Run("DevFallbackReturnsCode", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)

		// Act
		out, err := f.uc.OTPSend(context.Background(), OTPSendInput{Email: "Voter@Example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.OTP != "123456" {
			t.Fatalf("expected raw code in response without a mail channel, got %q", out.OTP)
		}
		if out.Signature == "" {
			t.Fatalf("expected a signature")
		}
		wantExpiry := f.clock.now.Add(5 * time.Minute).UnixMilli()
		if out.ExpiresAt != wantExpiry {
			t.Fatalf("expected expiry %d, got %d", wantExpiry, out.ExpiresAt)
		}
		if len(f.mailer.sent) != 0 {
			t.Fatalf("expected no mail to be sent")
		}
		if len(f.messaging.issued) != 1 || f.messaging.issued[0].Email != "voter@example.com" {
			t.Fatalf("expected issued event for normalized email, got %+v", f.messaging.issued)
		}
	})

	t.Run("MailChannelSendsCode", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelSMTP)

		// Act
		out, err := f.uc.OTPSend(context.Background(), OTPSendInput{Email: "voter@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.OTP != "" {
			t.Fatalf("code must never be returned when a mail channel is configured, got %q", out.OTP)
		}
		if len(f.mailer.sent) != 1 {
			t.Fatalf("expected one mail, got %d", len(f.mailer.sent))
		}
		msg := f.mailer.sent[0]
		if msg.Subject != "Your admin OTP" {
			t.Fatalf("expected subject %q, got %q", "Your admin OTP", msg.Subject)
		}
		if msg.TextBody != "Your one-time code: 123456 (valid for 5 minutes)" {
			t.Fatalf("unexpected mail body %q", msg.TextBody)
		}
	})

	t.Run("MailFailure", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelSMTP)
		f.mailer.err = errors.New("smtp connection refused")

		// Act
		_, err := f.uc.OTPSend(context.Background(), OTPSendInput{Email: "voter@example.com"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected a structured error, got %v", err)
		}
		if gerr.Msg() != "failed to send otp" {
			t.Fatalf("expected %q, got %q", "failed to send otp", gerr.Msg())
		}
		if gerr.Details() != "smtp connection refused" {
			t.Fatalf("expected the cause as details, got %q", gerr.Details())
		}
	})
}

func TestUsecase_OTPVerify(t *testing.T) {
	issue := func(t *testing.T, f *ucFixture, email string) *OTPSendOutput {
		t.Helper()

		out, err := f.uc.OTPSend(context.Background(), OTPSendInput{Email: email})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		return out
	}

	t.Run("MissingFields", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)

		// Act
		_, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "voter@example.com"})

		// Assert
		if got := errMessage(t, err); got != "missing required fields" {
			t.Fatalf("expected %q, got %q", "missing required fields", got)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		f.clock.now = f.clock.now.Add(5*time.Minute + time.Millisecond)

		// Act
		_, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "voter@example.com",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		})

		// Assert
		if got := errMessage(t, err); got != "otp expired" {
			t.Fatalf("expected %q, got %q", "otp expired", got)
		}
	})

	t.Run("ExpiryBoundaryStillValid", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		f.clock.now = f.clock.now.Add(5 * time.Minute)

		// Act
		out, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "voter@example.com",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		})

		// Assert
		if err != nil {
			t.Fatalf("credential issued at the boundary must still verify: %v", err)
		}
		if out.Token == "" {
			t.Fatalf("expected a session token")
		}
	})

	t.Run("TamperedCode", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		// Act
		_, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "voter@example.com",
			OTP:       "654321",
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		})

		// Assert
		if got := errMessage(t, err); got != "invalid otp" {
			t.Fatalf("expected %q, got %q", "invalid otp", got)
		}
	})

	t.Run("TamperedExpiry", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		// Act
		_, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "voter@example.com",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt + 60_000,
		})

		// Assert
		if got := errMessage(t, err); got != "invalid otp" {
			t.Fatalf("expected %q, got %q", "invalid otp", got)
		}
	})

	t.Run("WrongEmail", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		// Act
		_, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "other@example.com",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		})

		// Assert
		if got := errMessage(t, err); got != "invalid otp" {
			t.Fatalf("expected %q, got %q", "invalid otp", got)
		}
	})

	t.Run("ReplayUntilExpiry", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		in := OTPVerifyInput{
			Email:     "voter@example.com",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		}

		// Act
		first, err := f.uc.OTPVerify(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.uc.OTPVerify(context.Background(), in)

		// Assert
		if err != nil {
			t.Fatalf("a credential verifies any number of times before expiry: %v", err)
		}
		if first.User != second.User {
			t.Fatalf("expected identical users, got %+v and %+v", first.User, second.User)
		}
	})

	t.Run("AdminIdentity", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "ADMIN@example.COM")

		// Act
		out, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "ADMIN@example.COM",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		user := out.User
		if user.ID != 1 || user.Role != entity.RoleAdmin {
			t.Fatalf("expected admin identity, got %+v", user)
		}
		if user.Email != "admin@example.com" || user.Username != "admin@example.com" {
			t.Fatalf("expected normalized email, got %+v", user)
		}
		if user.Name != "admin" {
			t.Fatalf("expected local part as name, got %q", user.Name)
		}
		if len(f.messaging.verified) != 1 || f.messaging.verified[0].Role != entity.RoleAdmin {
			t.Fatalf("expected verified event with admin role, got %+v", f.messaging.verified)
		}
	})

	t.Run("MemberIdentity", func(t *testing.T) {
		// Arrange
		f := newFixture(t, entity.ChannelNone)
		issued := issue(t, f, "voter@example.com")

		// Act
		out, err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:     "voter@example.com",
			OTP:       issued.OTP,
			Signature: issued.Signature,
			ExpiresAt: issued.ExpiresAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.User.ID != 2 || out.User.Role != entity.RoleUser {
			t.Fatalf("expected member identity, got %+v", out.User)
		}
		if out.Token == "" {
			t.Fatalf("expected a session token")
		}
	})
}
