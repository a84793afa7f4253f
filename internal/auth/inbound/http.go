package inbound

import (
	"context"

	"github.com/canvasslabs/canvassd/internal/auth/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/router"
)

type uc interface {
	OTPSend(ctx context.Context, in usecase.OTPSendInput) (*usecase.OTPSendOutput, error)
	OTPVerify(ctx context.Context, in usecase.OTPVerifyInput) (*usecase.OTPVerifyOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/send-otp", end.SendOTP)
	r.POST("/verify-otp", end.VerifyOTP)
}
