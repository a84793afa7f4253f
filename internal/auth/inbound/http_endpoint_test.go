package inbound_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/canvasslabs/canvassd/internal/auth/entity"
	"github.com/canvasslabs/canvassd/internal/auth/inbound"
	"github.com/canvasslabs/canvassd/internal/auth/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/clock"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
)

type fakeUC struct {
	sendOut   *usecase.OTPSendOutput
	sendErr   error
	verifyOut *usecase.OTPVerifyOutput
	verifyErr error
}

func (f *fakeUC) OTPSend(context.Context, usecase.OTPSendInput) (*usecase.OTPSendOutput, error) {
	return f.sendOut, f.sendErr
}

func (f *fakeUC) OTPVerify(context.Context, usecase.OTPVerifyInput) (*usecase.OTPVerifyOutput, error) {
	return f.verifyOut, f.verifyErr
}

func newTestRouter(t *testing.T, uc *fakeUC) *router.Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokener, err := jwt.NewHS512(jwt.Config{
		Secret: []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		TTL:    time.Hour,
		Clock:  clock.New(),
		UUID:   uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        tokener,
		Instrument: instrument.NewNoop(),
	})
	inbound.RegisterHTTPEndpoint(r, uc)

	return r
}

func doPost(t *testing.T, r *router.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestHTTPEndpoint_SendOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, &fakeUC{
			sendOut: &usecase.OTPSendOutput{Signature: "sig", ExpiresAt: 1700000000000},
		})

		// Act
		rec := doPost(t, r, "/send-otp", `{"email":"voter@example.com"}`)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp inbound.SendOTPResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Success || resp.Signature != "sig" || resp.ExpiresAt != 1700000000000 {
			t.Fatalf("unexpected response %+v", resp)
		}
		if strings.Contains(rec.Body.String(), `"otp"`) {
			t.Fatalf("otp key must be omitted when no code is returned: %s", rec.Body.String())
		}
	})

	t.Run("DevFallbackIncludesCode", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, &fakeUC{
			sendOut: &usecase.OTPSendOutput{Signature: "sig", ExpiresAt: 1700000000000, OTP: "123456"},
		})

		// Act
		rec := doPost(t, r, "/send-otp", `{"email":"voter@example.com"}`)

		// Assert
		var resp inbound.SendOTPResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.OTP != "123456" {
			t.Fatalf("expected raw code in response, got %+v", resp)
		}
	})

	t.Run("MissingEmail", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, &fakeUC{sendErr: goerror.NewInvalidInput("email is required")})

		// Act
		rec := doPost(t, r, "/send-otp", `{}`)

		// Assert
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp["error"] != "email is required" {
			t.Fatalf("unexpected error body %v", resp)
		}
	})

	t.Run("SendFailure", func(t *testing.T) {
		// Arrange
		cause := goerror.NewServerMsg(http.ErrHandlerTimeout, "failed to send otp")
		r := newTestRouter(t, &fakeUC{sendErr: cause})

		// Act
		rec := doPost(t, r, "/send-otp", `{"email":"voter@example.com"}`)

		// Assert
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp["error"] != "failed to send otp" {
			t.Fatalf("unexpected error body %v", resp)
		}
		if resp["details"] == nil {
			t.Fatalf("expected details alongside the send failure")
		}
	})
}

func TestHTTPEndpoint_VerifyOTP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, &fakeUC{
			verifyOut: &usecase.OTPVerifyOutput{
				Token: "session-token",
				User: entity.User{
					ID:       1,
					Username: "admin@example.com",
					Email:    "admin@example.com",
					Name:     "admin",
					Role:     entity.RoleAdmin,
				},
			},
		})

		// Act
		rec := doPost(t, r, "/verify-otp",
			`{"email":"admin@example.com","otp":"123456","signature":"sig","expiresAt":1700000000000}`)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp inbound.VerifyOTPResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Success || resp.Token != "session-token" {
			t.Fatalf("unexpected response %+v", resp)
		}
		want := inbound.UserResponse{
			ID:       "1",
			Username: "admin@example.com",
			Email:    "admin@example.com",
			Name:     "admin",
			Role:     "admin",
		}
		if resp.User != want {
			t.Fatalf("expected user %+v, got %+v", want, resp.User)
		}
	})

	t.Run("InvalidCode", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, &fakeUC{verifyErr: goerror.NewInvalidInput("invalid otp")})

		// Act
		rec := doPost(t, r, "/verify-otp",
			`{"email":"a@b.c","otp":"000000","signature":"sig","expiresAt":1700000000000}`)

		// Assert
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp["error"] != "invalid otp" {
			t.Fatalf("unexpected error body %v", resp)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		// Arrange
		r := newTestRouter(t, &fakeUC{verifyErr: goerror.NewInvalidInput("otp expired")})

		// Act
		rec := doPost(t, r, "/verify-otp",
			`{"email":"a@b.c","otp":"123456","signature":"sig","expiresAt":1}`)

		// Assert
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "otp expired") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})
}
