package usecase

import (
	"context"
	"testing"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
)

type deleteRepoDB struct {
	repoDB

	deleted []int64
}

func (f *deleteRepoDB) GetSheetByID(_ context.Context, id int64) (*entity.Sheet, error) {
	return &entity.Sheet{ID: id, HouseName: "Rose Cottage", Community: "North Ward"}, nil
}

func (f *deleteRepoDB) DeleteSheet(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)

	return nil
}

func TestUsecase_SheetDelete(t *testing.T) {
	t.Run("MemberForbidden", func(t *testing.T) {
		// Arrange
		repo := &deleteRepoDB{}
		uc := newCreateUsecase(t, &createRepoDB{}, &fakeIdempotency{})
		uc.repoDB = repo

		// Act
		err := uc.SheetDelete(authCtx("user"), SheetDeleteInput{ID: 42})

		// Assert
		if err == nil || err.Error() != "account not allowed" {
			t.Fatalf("deletes are admin only, got %v", err)
		}
		if len(repo.deleted) != 0 {
			t.Fatalf("expected no deletes, got %v", repo.deleted)
		}
	})

	t.Run("AdminDeletes", func(t *testing.T) {
		// Arrange
		repo := &deleteRepoDB{}
		uc := newCreateUsecase(t, &createRepoDB{}, &fakeIdempotency{})
		uc.repoDB = repo

		// Act
		err := uc.SheetDelete(authCtx("admin"), SheetDeleteInput{ID: 42})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != 42 {
			t.Fatalf("expected sheet 42 deleted, got %v", repo.deleted)
		}
	})
}
