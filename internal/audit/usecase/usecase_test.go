package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/canvasslabs/canvassd/internal/audit/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeNumberID struct {
	next int64
}

func (g *fakeNumberID) Generate() int64 {
	g.next++

	return g.next
}

type fakeRepoDB struct {
	events []entity.Event
	total  int64
	err    error
}

func (f *fakeRepoDB) CreateEvent(_ context.Context, in entity.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, in)

	return nil
}

func (f *fakeRepoDB) GetEventList(_ context.Context, _ entity.EventListFilter) ([]entity.Event, int64, error) {
	return f.events, f.total, f.err
}

func newTestUsecase(t *testing.T, repo *fakeRepoDB) *Usecase {
	t.Helper()

	const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := enforcer.AddPolicies([][]string{{"admin", "*", "*"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		UID:        &fakeNumberID{},
		Clock:      &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
		Enforcer:   enforcer,
	})
}

func adminCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 1, UserRole: "admin"})
}

func TestUsecase_Consume(t *testing.T) {
	t.Run("OTPIssued", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		uc := newTestUsecase(t, repo)

		// Act
		err := uc.ConsumeOTPIssued(context.Background(), ConsumeOTPIssuedInput{
			Email:     "voter@example.com",
			Channel:   "smtp",
			ExpiresAt: 1700000000000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if len(repo.events) != 1 {
			t.Fatalf("expected one event, got %d", len(repo.events))
		}
		ev := repo.events[0]
		if ev.Action != entity.ActionOTPIssued || ev.ActorEmail != "voter@example.com" {
			t.Fatalf("unexpected event %+v", ev)
		}
		if ev.ID == 0 || ev.OccurredAt.IsZero() {
			t.Fatalf("expected generated id and timestamp, got %+v", ev)
		}
		if ev.Payload["channel"] != "smtp" {
			t.Fatalf("unexpected payload %v", ev.Payload)
		}
	})

	t.Run("SheetEvent", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{}
		uc := newTestUsecase(t, repo)

		// Act
		err := uc.ConsumeSheetEvent(context.Background(), ConsumeSheetEventInput{
			Action:     entity.ActionSheetCreated,
			SheetID:    42,
			HouseName:  "Rose Cottage",
			Community:  "North Ward",
			ActorEmail: "voter@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		ev := repo.events[0]
		if ev.Action != entity.ActionSheetCreated {
			t.Fatalf("unexpected action %q", ev.Action)
		}
		if ev.Payload["sheet_id"] != "42" || ev.Payload["community"] != "North Ward" {
			t.Fatalf("unexpected payload %v", ev.Payload)
		}
	})
}

func TestUsecase_EventList(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &fakeRepoDB{})

		// Act
		_, err := uc.EventList(context.Background(), EventListInput{})

		// Assert
		if err == nil || err.Error() != "authentication required" {
			t.Fatalf("expected authentication required, got %v", err)
		}
	})

	t.Run("MemberForbidden", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &fakeRepoDB{})

		// Act
		_, err := uc.EventList(jwt.SetAuth(context.Background(), jwt.Claims{UserID: 2, UserRole: "user"}), EventListInput{})

		// Assert
		if err == nil || err.Error() != "account not allowed" {
			t.Fatalf("expected account not allowed, got %v", err)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		// Arrange
		repo := &fakeRepoDB{
			events: []entity.Event{{ID: 1, Action: entity.ActionOTPVerified}},
			total:  1,
		}
		uc := newTestUsecase(t, repo)

		// Act
		out, err := uc.EventList(adminCtx(), EventListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.Total != 1 || len(out.Events) != 1 {
			t.Fatalf("unexpected output %+v", out)
		}
	})

	t.Run("SizeTooLarge", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &fakeRepoDB{})

		// Act
		_, err := uc.EventList(adminCtx(), EventListInput{Size: 501})

		// Assert
		if err == nil {
			t.Fatalf("expected a validation error for oversized page")
		}
	})
}
