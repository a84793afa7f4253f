package mq

import (
	"context"
	"encoding/json"

	"github.com/canvasslabs/canvassd/internal/canvass/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
	"github.com/canvasslabs/canvassd/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) publish(ctx context.Context, span trace.Span, destination string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, destination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (m *Messaging) PublishSheetCreated(ctx context.Context, msg usecase.SheetEvent) error {
	ctx, span := m.ins.Tracer("canvass.outbound.mq").Start(ctx, "PublishSheetCreated")
	defer span.End()

	return m.publish(ctx, span, event.SheetCreatedDestination, event.SheetMessage{
		SheetID:    msg.SheetID,
		HouseName:  msg.HouseName,
		Community:  msg.Community,
		ActorEmail: msg.ActorEmail,
	})
}

func (m *Messaging) PublishSheetUpdated(ctx context.Context, msg usecase.SheetEvent) error {
	ctx, span := m.ins.Tracer("canvass.outbound.mq").Start(ctx, "PublishSheetUpdated")
	defer span.End()

	return m.publish(ctx, span, event.SheetUpdatedDestination, event.SheetMessage{
		SheetID:    msg.SheetID,
		HouseName:  msg.HouseName,
		Community:  msg.Community,
		ActorEmail: msg.ActorEmail,
	})
}

func (m *Messaging) PublishSheetDeleted(ctx context.Context, msg usecase.SheetEvent) error {
	ctx, span := m.ins.Tracer("canvass.outbound.mq").Start(ctx, "PublishSheetDeleted")
	defer span.End()

	return m.publish(ctx, span, event.SheetDeletedDestination, event.SheetMessage{
		SheetID:    msg.SheetID,
		HouseName:  msg.HouseName,
		Community:  msg.Community,
		ActorEmail: msg.ActorEmail,
	})
}

func (m *Messaging) PublishSheetExport(ctx context.Context, msg usecase.SheetExportEvent) error {
	ctx, span := m.ins.Tracer("canvass.outbound.mq").Start(ctx, "PublishSheetExport")
	defer span.End()

	return m.publish(ctx, span, event.SheetExportDestination, event.SheetExportMessage{
		ObjectKey:  msg.ObjectKey,
		SheetCount: msg.SheetCount,
		ActorEmail: msg.ActorEmail,
	})
}
