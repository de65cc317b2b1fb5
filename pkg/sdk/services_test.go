package formvault

import (
	"context"
	"errors"
	"testing"

	"github.com/formvault/formvault/internal/domain"
	healthuc "github.com/formvault/formvault/internal/usecase/health"
)

func int64Ptr(v int64) *int64 { return &v }

func TestFormService_Create(t *testing.T) {
	uc := &mockFormUC{
		createFn: func(_ context.Context, f *domain.Form) (domain.Form, error) {
			saved := *f
			saved.ID = int64Ptr(1)
			saved.Reference = "ref-1"
			return saved, nil
		},
	}
	c := testClient(uc, nil)

	got, err := c.Forms().Create(context.Background(), Form{Name: "Fire Policy", Premium: 120.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == nil || *got.ID != 1 {
		t.Errorf("id: got %v, want 1", got.ID)
	}
	if got.Reference != "ref-1" {
		t.Errorf("reference: got %q", got.Reference)
	}
	if got.Name != "Fire Policy" || got.Premium != 120.5 {
		t.Errorf("fields not carried: %+v", got)
	}
}

func TestFormService_Create_IDExists(t *testing.T) {
	uc := &mockFormUC{
		createFn: func(_ context.Context, _ *domain.Form) (domain.Form, error) {
			return domain.Form{}, domain.ErrIDExists
		},
	}
	c := testClient(uc, nil)

	_, err := c.Forms().Create(context.Background(), Form{ID: int64Ptr(3), Name: "x"})
	if !errors.Is(err, ErrIDExists) {
		t.Errorf("expected ErrIDExists, got %v", err)
	}
}

func TestFormService_Update_IDMissing(t *testing.T) {
	uc := &mockFormUC{
		updateFn: func(_ context.Context, _ *domain.Form) (domain.Form, error) {
			return domain.Form{}, domain.ErrIDMissing
		},
	}
	c := testClient(uc, nil)

	_, err := c.Forms().Update(context.Background(), Form{Name: "x"})
	if !errors.Is(err, ErrIDMissing) {
		t.Errorf("expected ErrIDMissing, got %v", err)
	}
}

func TestFormService_Get_NotFound(t *testing.T) {
	uc := &mockFormUC{
		getFn: func(_ context.Context, _ int64) (domain.Form, error) {
			return domain.Form{}, domain.ErrNotFound
		},
	}
	c := testClient(uc, nil)

	_, err := c.Forms().Get(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFormService_List(t *testing.T) {
	uc := &mockFormUC{
		listFn: func(_ context.Context) ([]domain.Form, error) {
			return []domain.Form{
				{ID: int64Ptr(1), Name: "A"},
				{ID: int64Ptr(2), Name: "B"},
			}, nil
		},
	}
	c := testClient(uc, nil)

	got, err := c.Forms().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("forms: got %+v", got)
	}
}

func TestFormService_Delete(t *testing.T) {
	var deleted int64
	uc := &mockFormUC{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	c := testClient(uc, nil)

	if err := c.Forms().Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Errorf("deleted id: got %d, want 7", deleted)
	}
}

func TestFormService_Search(t *testing.T) {
	var gotQuery string
	uc := &mockFormUC{
		searchFn: func(_ context.Context, query string) ([]domain.Form, error) {
			gotQuery = query
			return []domain.Form{{ID: int64Ptr(1), Name: "Fire Policy"}}, nil
		},
	}
	c := testClient(uc, nil)

	hits, err := c.Forms().Search(context.Background(), "fire")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "fire" {
		t.Errorf("query: got %q", gotQuery)
	}
	if len(hits) != 1 || hits[0].Name != "Fire Policy" {
		t.Errorf("hits: got %+v", hits)
	}
}

func TestFormService_Search_Empty(t *testing.T) {
	uc := &mockFormUC{
		searchFn: func(_ context.Context, _ string) ([]domain.Form, error) {
			return []domain.Form{}, nil
		},
	}
	c := testClient(uc, nil)

	hits, err := c.Forms().Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits == nil || len(hits) != 0 {
		t.Errorf("hits: got %v, want empty slice", hits)
	}
}

func TestHealth(t *testing.T) {
	h := &mockHealthUC{
		checkFn: func(_ context.Context) healthuc.Report {
			return healthuc.Report{
				Status: healthuc.Degraded,
				Checks: map[string]healthuc.CheckResult{
					"database":     healthuc.CheckOK,
					"search_index": healthuc.CheckError,
				},
			}
		},
	}
	c := testClient(nil, h)

	got := c.Health(context.Background())
	if got.Status != "degraded" {
		t.Errorf("status: got %q, want degraded", got.Status)
	}
	if got.Checks["database"] != "ok" || got.Checks["search_index"] != "error" {
		t.Errorf("checks: got %v", got.Checks)
	}
}

func TestNew_RequiresAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error for missing address")
	}
}
