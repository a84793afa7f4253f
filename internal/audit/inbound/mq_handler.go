package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/canvasslabs/canvassd/internal/audit/entity"
	"github.com/canvasslabs/canvassd/internal/audit/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
	"github.com/canvasslabs/canvassd/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) OTPIssued(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "OTPIssued")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp issued audit", "msg_body", string(body))

	var payload event.OTPIssuedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp issued audit", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeOTPIssued(ctx, usecase.ConsumeOTPIssuedInput{
		Email:     payload.Email,
		Channel:   payload.Channel,
		ExpiresAt: payload.ExpiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp issued", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) OTPVerified(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "OTPVerified")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: otp verified audit", "msg_body", string(body))

	var payload event.OTPVerifiedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of otp verified audit", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeOTPVerified(ctx, usecase.ConsumeOTPVerifiedInput{
		Email: payload.Email,
		Role:  payload.Role,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume otp verified", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) sheetEvent(ctx context.Context, msg messaging.Message, action string) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "SheetEvent")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: sheet audit", "action", action, "msg_body", string(body))

	var payload event.SheetMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of sheet audit", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeSheetEvent(ctx, usecase.ConsumeSheetEventInput{
		Action:     action,
		SheetID:    payload.SheetID,
		HouseName:  payload.HouseName,
		Community:  payload.Community,
		ActorEmail: payload.ActorEmail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume sheet audit", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) SheetCreated(ctx context.Context, msg messaging.Message) error {
	return h.sheetEvent(ctx, msg, entity.ActionSheetCreated)
}

func (h *MQHandler) SheetUpdated(ctx context.Context, msg messaging.Message) error {
	return h.sheetEvent(ctx, msg, entity.ActionSheetUpdated)
}

func (h *MQHandler) SheetDeleted(ctx context.Context, msg messaging.Message) error {
	return h.sheetEvent(ctx, msg, entity.ActionSheetDeleted)
}

func (h *MQHandler) SheetExport(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "SheetExport")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: sheet export audit", "msg_body", string(body))

	var payload event.SheetExportMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of sheet export audit", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeSheetExport(ctx, usecase.ConsumeSheetExportInput{
		ObjectKey:  payload.ObjectKey,
		SheetCount: payload.SheetCount,
		ActorEmail: payload.ActorEmail,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume sheet export", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
