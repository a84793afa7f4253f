package inbound

import (
	"context"
	"os"
	"sort"
	"sync"
	"testing"

	"github.com/canvasslabs/canvassd/internal/audit/usecase"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goroutine"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/messaging"
)

type fakeConsumerUC struct{}

func (fakeConsumerUC) ConsumeOTPIssued(context.Context, usecase.ConsumeOTPIssuedInput) error {
	return nil
}

func (fakeConsumerUC) ConsumeOTPVerified(context.Context, usecase.ConsumeOTPVerifiedInput) error {
	return nil
}

func (fakeConsumerUC) ConsumeSheetEvent(context.Context, usecase.ConsumeSheetEventInput) error {
	return nil
}

func (fakeConsumerUC) ConsumeSheetExport(context.Context, usecase.ConsumeSheetExportInput) error {
	return nil
}

func (fakeConsumerUC) EventList(context.Context, usecase.EventListInput) (*usecase.EventListOutput, error) {
	return nil, nil
}

type fakeSubscribingMessaging struct {
	mu      sync.Mutex
	sources []string
}

func (f *fakeSubscribingMessaging) Publish(_ context.Context, _ string, _ messaging.OutgoingMessage) (messaging.PublishResult, error) {
	return messaging.PublishResult{}, nil
}

func (f *fakeSubscribingMessaging) Consume(_ context.Context, source string, _ messaging.Handler, _ ...messaging.ConsumeOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources = append(f.sources, source)
	return nil
}

func (f *fakeSubscribingMessaging) Close() error { return nil }

type fakeStringID struct{}

func (fakeStringID) Generate() string { return "cid-1" }

func startConsumers(t *testing.T, cfg config.Config) []string {
	t.Helper()

	messenger := &fakeSubscribingMessaging{}
	routine := goroutine.NewManager(16)

	RegisterMQConsumer(context.Background(), cfg, routine, messenger, fakeStringID{}, fakeConsumerUC{}, instrument.NewNoop())

	if err := routine.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	messenger.mu.Lock()
	defer messenger.mu.Unlock()
	sources := append([]string{}, messenger.sources...)
	sort.Strings(sources)
	return sources
}

func TestRegisterMQConsumer(t *testing.T) {
	t.Run("ShippedConfigStartsAllConsumers", func(t *testing.T) {
		// Arrange
		raw, err := os.ReadFile("../../../config/config.yaml")
		if err != nil {
			t.Fatalf("read shipped config: %v", err)
		}
		cfg, err := config.NewViperFromBytes("yaml", raw)
		if err != nil {
			t.Fatalf("parse shipped config: %v", err)
		}

		// Act
		sources := startConsumers(t, cfg)

		// Assert
		want := []string{
			"auth_otp_issued",
			"auth_otp_verified",
			"canvass_sheet_created",
			"canvass_sheet_deleted",
			"canvass_sheet_export",
			"canvass_sheet_updated",
		}
		if len(sources) != len(want) {
			t.Fatalf("consumed sources = %v, want %v", sources, want)
		}
		for i := range want {
			if sources[i] != want[i] {
				t.Fatalf("consumed sources = %v, want %v", sources, want)
			}
		}
	})

	t.Run("OnlyListedConsumersStart", func(t *testing.T) {
		// Arrange
		cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  audit:
    consumer_names:
      - auth_otp_issued_audit
`))
		if err != nil {
			t.Fatalf("parse config: %v", err)
		}

		// Act
		sources := startConsumers(t, cfg)

		// Assert
		if len(sources) != 1 || sources[0] != "auth_otp_issued" {
			t.Fatalf("consumed sources = %v, want [auth_otp_issued]", sources)
		}
	})

	t.Run("EmptyListStartsNothing", func(t *testing.T) {
		// Arrange
		cfg, err := config.NewViperFromBytes("yaml", []byte(`modules: {audit: {consumer_names: []}}`))
		if err != nil {
			t.Fatalf("parse config: %v", err)
		}

		// Act
		sources := startConsumers(t, cfg)

		// Assert
		if len(sources) != 0 {
			t.Fatalf("consumed sources = %v, want none", sources)
		}
	})
}
