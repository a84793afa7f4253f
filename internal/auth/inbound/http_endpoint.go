package inbound

import (
	"strconv"

	"github.com/canvasslabs/canvassd/internal/auth/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
)

// HTTPEndpoint exposes the login code issuance and verification handlers.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP issues a one-time login code for the given email.
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPSend(r.Context(), usecase.OTPSendInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return SendOTPResponse{
		Success:   true,
		Signature: resp.Signature,
		ExpiresAt: resp.ExpiresAt,
		OTP:       resp.OTP,
	}, nil
}

// VerifyOTP checks a presented code and returns a session token on success.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPVerify(r.Context(), usecase.OTPVerifyInput{
		Email:     req.Email,
		OTP:       req.OTP,
		Signature: req.Signature,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		Success: true,
		Token:   resp.Token,
		User: UserResponse{
			ID:       strconv.FormatInt(resp.User.ID, 10),
			Username: resp.User.Username,
			Email:    resp.User.Email,
			Name:     resp.User.Name,
			Role:     resp.User.Role.String(),
		},
	}, nil
}
