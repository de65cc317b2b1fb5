package formvault

import (
	"context"

	"github.com/formvault/formvault/internal/domain"
	healthuc "github.com/formvault/formvault/internal/usecase/health"
)

// --- formUseCase mock ---

type mockFormUC struct {
	createFn func(ctx context.Context, f *domain.Form) (domain.Form, error)
	updateFn func(ctx context.Context, f *domain.Form) (domain.Form, error)
	listFn   func(ctx context.Context) ([]domain.Form, error)
	getFn    func(ctx context.Context, id int64) (domain.Form, error)
	deleteFn func(ctx context.Context, id int64) error
	searchFn func(ctx context.Context, query string) ([]domain.Form, error)
}

func (m *mockFormUC) Create(ctx context.Context, f *domain.Form) (domain.Form, error) {
	return m.createFn(ctx, f)
}

func (m *mockFormUC) Update(ctx context.Context, f *domain.Form) (domain.Form, error) {
	return m.updateFn(ctx, f)
}

func (m *mockFormUC) List(ctx context.Context) ([]domain.Form, error) {
	return m.listFn(ctx)
}

func (m *mockFormUC) Get(ctx context.Context, id int64) (domain.Form, error) {
	return m.getFn(ctx, id)
}

func (m *mockFormUC) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockFormUC) Search(ctx context.Context, query string) ([]domain.Form, error) {
	return m.searchFn(ctx, query)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- helpers ---

func testClient(formSvc formUseCase, healthSvc healthUseCase) *Client {
	return &Client{
		formSvc:   formSvc,
		healthSvc: healthSvc,
	}
}
