package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/goerror"
	"github.com/canvasslabs/canvassd/internal/pkg/idempotency"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/validator"
)

type fakeNumberID struct {
	next int64
}

func (g *fakeNumberID) Generate() int64 {
	g.next++

	return g.next
}

type fakeIdempotency struct {
	idempotency.Idempotency

	execErr error
	keys    []string
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.keys = append(f.keys, key)
	if f.execErr != nil {
		return f.execErr
	}

	return fn(ctx)
}

type createRepoDB struct {
	repoDB

	created []entity.Sheet
}

func (f *createRepoDB) CreateSheet(_ context.Context, in entity.Sheet) error {
	f.created = append(f.created, in)

	return nil
}

func newCreateUsecase(t *testing.T, repo *createRepoDB, idemp *fakeIdempotency) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules: {}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return New(Dependency{
		RepoDB:        repo,
		RepoMessaging: &fakeCanvassMessaging{},
		Idempotency:   idemp,
		Validator:     v10,
		Config:        cfg,
		UID:           &fakeNumberID{},
		Clock:         &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		Instrument:    instrument.NewNoop(),
		Enforcer:      newTestEnforcer(t),
	})
}

func TestUsecase_SheetCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := &createRepoDB{}
		uc := newCreateUsecase(t, repo, &fakeIdempotency{})

		// Act
		out, err := uc.SheetCreate(authCtx("user"), SheetCreateInput{
			HouseName:  "Rose Cottage",
			Community:  "North Ward",
			NoOfVoters: 1,
			Voters:     []VoterInput{{Name: "Alice", Age: 34, ColourRound: "blue"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.Sheet.ID == 0 {
			t.Fatalf("expected a generated sheet id")
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected one created sheet, got %d", len(repo.created))
		}
		if repo.created[0].Voters[0].Name != "Alice" {
			t.Fatalf("unexpected voters %+v", repo.created[0].Voters)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		// Arrange
		uc := newCreateUsecase(t, &createRepoDB{}, &fakeIdempotency{})

		// Act
		_, err := uc.SheetCreate(authCtx("user"), SheetCreateInput{Community: "North Ward"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected a structured error, got %v", err)
		}
		if gerr.Msg() != "invalid sheet data" {
			t.Fatalf("expected invalid sheet data, got %q", gerr.Msg())
		}
	})

	t.Run("DuplicateSubmission", func(t *testing.T) {
		// Arrange
		idemp := &fakeIdempotency{execErr: idempotency.ErrAlreadyCompleted}
		uc := newCreateUsecase(t, &createRepoDB{}, idemp)

		// Act
		_, err := uc.SheetCreate(authCtx("user"), SheetCreateInput{
			HouseName:      "Rose Cottage",
			Community:      "North Ward",
			IdempotencyKey: "abc-123",
		})

		// Assert
		if err == nil || err.Error() != "duplicate submission" {
			t.Fatalf("expected duplicate submission, got %v", err)
		}
		if len(idemp.keys) != 1 || idemp.keys[0] != "canvass:sheet_create:abc-123" {
			t.Fatalf("unexpected idempotency keys %v", idemp.keys)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		uc := newCreateUsecase(t, &createRepoDB{}, &fakeIdempotency{})

		// Act
		_, err := uc.SheetCreate(context.Background(), SheetCreateInput{
			HouseName: "Rose Cottage",
			Community: "North Ward",
		})

		// Assert
		if err == nil || err.Error() != "authentication required" {
			t.Fatalf("expected authentication required, got %v", err)
		}
	})
}
