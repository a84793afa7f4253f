package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goroutine"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
	"github.com/canvasslabs/canvassd/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.audit.consumer_names")

	var consumers = []struct {
		name    string
		topic   string // destination where publisher sent message
		handler messaging.Handler
	}{
		{
			name:    event.OTPIssuedConsumerAudit,
			topic:   event.OTPIssuedDestination,
			handler: mqHandler.OTPIssued,
		},
		{
			name:    event.OTPVerifiedConsumerAudit,
			topic:   event.OTPVerifiedDestination,
			handler: mqHandler.OTPVerified,
		},
		{
			name:    event.SheetCreatedConsumerAudit,
			topic:   event.SheetCreatedDestination,
			handler: mqHandler.SheetCreated,
		},
		{
			name:    event.SheetUpdatedConsumerAudit,
			topic:   event.SheetUpdatedDestination,
			handler: mqHandler.SheetUpdated,
		},
		{
			name:    event.SheetDeletedConsumerAudit,
			topic:   event.SheetDeletedDestination,
			handler: mqHandler.SheetDeleted,
		},
		{
			name:    event.SheetExportConsumerAudit,
			topic:   event.SheetExportDestination,
			handler: mqHandler.SheetExport,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithQueueGroup(consumer.name),
					messaging.WithGroup(consumer.name),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
