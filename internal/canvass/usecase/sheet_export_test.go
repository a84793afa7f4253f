package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/canvasslabs/canvassd/internal/canvass/entity"
	"github.com/canvasslabs/canvassd/internal/pkg/config"
	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/jwt"
	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeRepoDB struct {
	repoDB

	sheets []entity.Sheet
	err    error
}

func (f *fakeRepoDB) GetSheetList(context.Context, entity.SheetListFilter) ([]entity.Sheet, error) {
	return f.sheets, f.err
}

type fakeCanvassMessaging struct {
	exports []SheetExportEvent
}

func (f *fakeCanvassMessaging) PublishSheetCreated(context.Context, SheetEvent) error { return nil }
func (f *fakeCanvassMessaging) PublishSheetUpdated(context.Context, SheetEvent) error { return nil }
func (f *fakeCanvassMessaging) PublishSheetDeleted(context.Context, SheetEvent) error { return nil }

func (f *fakeCanvassMessaging) PublishSheetExport(_ context.Context, msg SheetExportEvent) error {
	f.exports = append(f.exports, msg)

	return nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
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
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.AddPolicies([][]string{
		{"admin", "*", "*"},
		{"user", "canvass:sheets", "read"},
		{"user", "canvass:sheets", "write"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return e
}

func newExportUsecase(t *testing.T, repo *fakeRepoDB) (*Usecase, *fakeCanvassMessaging) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules: {canvass: {export_bucket: \"\"}}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	messenger := &fakeCanvassMessaging{}

	return New(Dependency{
		RepoDB:        repo,
		RepoMessaging: messenger,
		Config:        cfg,
		Clock:         &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		Instrument:    instrument.NewNoop(),
		Enforcer:      newTestEnforcer(t),
	}), messenger
}

func authCtx(role string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:    1,
		UserEmail: "admin@example.com",
		UserRole:  role,
	})
}

func float64Ptr(v float64) *float64 { return &v }

func TestRenderSheetCSV(t *testing.T) {
	// Arrange
	created := time.Date(2024, 5, 30, 9, 30, 0, 0, time.UTC)
	sheets := []entity.Sheet{
		{
			ID:          10,
			HouseName:   "Rose Cottage, Hilltop",
			ColourRound: "blue",
			Community:   "North Ward",
			NoOfVoters:  2,
			Latitude:    float64Ptr(13.1),
			Longitude:   float64Ptr(-59.6),
			CreatedAt:   created,
			Voters: []entity.Voter{
				{Name: "Alice", Age: 34, ColourRound: "blue"},
				{Name: "Bob", Age: 71, ColourRound: "red"},
			},
		},
		{
			ID:          11,
			HouseName:   "No Voters House",
			ColourRound: "red",
			Community:   "South Ward",
			CreatedAt:   created,
		},
	}

	// Act
	data, err := renderSheetCSV(sheets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines: %q", len(lines), lines)
	}
	wantHeader := "Sheet ID,House Name,Sheet Colour,Community,Total Voters,Latitude,Longitude,Created At,Voter Name,Voter Age,Voter Colour"
	if lines[0] != wantHeader {
		t.Fatalf("unexpected header %q", lines[0])
	}
	wantFirst := `10,"Rose Cottage, Hilltop",blue,North Ward,2,13.1,-59.6,2024-05-30 09:30:00,Alice,34,blue`
	if lines[1] != wantFirst {
		t.Fatalf("unexpected first voter row %q", lines[1])
	}
	wantSecond := `10,"Rose Cottage, Hilltop",blue,North Ward,2,13.1,-59.6,2024-05-30 09:30:00,Bob,71,red`
	if lines[2] != wantSecond {
		t.Fatalf("unexpected second voter row %q", lines[2])
	}
	wantEmpty := `11,No Voters House,red,South Ward,0,,,2024-05-30 09:30:00,,,`
	if lines[3] != wantEmpty {
		t.Fatalf("expected empty voter columns for voterless sheet, got %q", lines[3])
	}
}

func TestUsecase_SheetExport(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		uc, _ := newExportUsecase(t, &fakeRepoDB{})

		// Act
		_, err := uc.SheetExport(context.Background())

		// Assert
		if err == nil || err.Error() != "authentication required" {
			t.Fatalf("expected authentication required, got %v", err)
		}
	})

	t.Run("MemberForbidden", func(t *testing.T) {
		// Arrange
		uc, _ := newExportUsecase(t, &fakeRepoDB{})

		// Act
		_, err := uc.SheetExport(authCtx("user"))

		// Assert
		if err == nil || err.Error() != "account not allowed" {
			t.Fatalf("expected account not allowed, got %v", err)
		}
	})

	t.Run("NoSheets", func(t *testing.T) {
		// Arrange
		uc, _ := newExportUsecase(t, &fakeRepoDB{})

		// Act
		_, err := uc.SheetExport(authCtx("admin"))

		// Assert
		if err == nil || err.Error() != "no sheets available to export" {
			t.Fatalf("expected no sheets available to export, got %v", err)
		}
	})

	t.Run("InlineDownload", func(t *testing.T) {
		// Arrange
		uc, _ := newExportUsecase(t, &fakeRepoDB{sheets: []entity.Sheet{
			{ID: 1, HouseName: "House", ColourRound: "blue", Community: "Ward", CreatedAt: time.Now()},
		}})

		// Act
		out, err := uc.SheetExport(authCtx("admin"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.Filename != "voter-data-detailed-2024-06-01.csv" {
			t.Fatalf("unexpected filename %q", out.Filename)
		}
		if out.ContentType != "text/csv" {
			t.Fatalf("unexpected content type %q", out.ContentType)
		}
		if len(out.Data) == 0 || out.DownloadURL != "" {
			t.Fatalf("expected inline data without object storage, got %+v", out)
		}
	})

	t.Run("InlineDownloadPublishesAuditEvent", func(t *testing.T) {
		// Arrange
		uc, messenger := newExportUsecase(t, &fakeRepoDB{sheets: []entity.Sheet{
			{ID: 1, HouseName: "House", ColourRound: "blue", Community: "Ward", CreatedAt: time.Now()},
			{ID: 2, HouseName: "Other", ColourRound: "red", Community: "Ward", CreatedAt: time.Now()},
		}})

		// Act
		if _, err := uc.SheetExport(authCtx("admin")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if len(messenger.exports) != 1 {
			t.Fatalf("expected one export event, got %d", len(messenger.exports))
		}
		got := messenger.exports[0]
		if got.SheetCount != 2 {
			t.Fatalf("unexpected sheet count %d", got.SheetCount)
		}
		if got.ActorEmail != "admin@example.com" {
			t.Fatalf("unexpected actor %q", got.ActorEmail)
		}
		if got.ObjectKey != "" {
			t.Fatalf("inline export should carry no object key, got %q", got.ObjectKey)
		}
	})
}
