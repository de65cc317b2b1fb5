package formvault

import (
	"context"
	"fmt"
	"time"
)

// FormService manages insurance form records.
type FormService struct {
	svc formUseCase
	obs *observer
}

// Create stores a new form and mirrors it into the search index.
// The form must not carry an ID; the store assigns one.
func (s *FormService) Create(ctx context.Context, f Form) (out Form, err error) {
	start := time.Now()
	defer func() { s.obs.observe("form_create", start, err) }()

	d := toInternalForm(f)
	saved, err := s.svc.Create(ctx, &d)
	if err != nil {
		return Form{}, fmt.Errorf("create form: %w", err)
	}
	return fromInternalForm(saved), nil
}

// Update fully replaces a stored form. The form must carry an ID.
func (s *FormService) Update(ctx context.Context, f Form) (out Form, err error) {
	start := time.Now()
	defer func() { s.obs.observe("form_update", start, err) }()

	d := toInternalForm(f)
	saved, err := s.svc.Update(ctx, &d)
	if err != nil {
		return Form{}, fmt.Errorf("update form: %w", err)
	}
	return fromInternalForm(saved), nil
}

// Get retrieves a form by ID. Returns ErrNotFound for an unknown ID.
func (s *FormService) Get(ctx context.Context, id int64) (out Form, err error) {
	start := time.Now()
	defer func() { s.obs.observe("form_get", start, err) }()

	f, err := s.svc.Get(ctx, id)
	if err != nil {
		return Form{}, fmt.Errorf("get form: %w", err)
	}
	return fromInternalForm(f), nil
}

// List returns all stored forms ordered by ID.
func (s *FormService) List(ctx context.Context) (out []Form, err error) {
	start := time.Now()
	defer func() { s.obs.observe("form_list", start, err) }()

	forms, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	out = make([]Form, len(forms))
	for i, f := range forms {
		out[i] = fromInternalForm(f)
	}
	return out, nil
}

// Delete removes a form by ID. Deleting an absent ID succeeds.
func (s *FormService) Delete(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("form_delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	return nil
}

// Search runs a free-text query over the indexed forms.
// A query matching nothing yields an empty slice.
func (s *FormService) Search(ctx context.Context, query string) (out []Form, err error) {
	start := time.Now()
	defer func() { s.obs.observe("form_search", start, err) }()

	forms, err := s.svc.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search forms: %w", err)
	}
	out = make([]Form, len(forms))
	for i, f := range forms {
		out[i] = fromInternalForm(f)
	}
	return out, nil
}
