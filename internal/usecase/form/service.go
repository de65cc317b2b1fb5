package form

import (
	"context"
	"fmt"

	"github.com/formvault/formvault/internal/domain"
)

// Service orchestrates form CRUD against the record store and mirrors every
// write into the search index.
//
// The two writes per mutation are sequential with no transaction between
// them: an index failure after a successful store write surfaces as an error
// while the store keeps the new value. Consistency is eventual at best; a
// failed request may leave the index behind until the next write to the same
// form.
type Service struct {
	repo  Repository
	index Index
}

// New creates a form service.
func New(repo Repository, index Index) *Service {
	return &Service{repo: repo, index: index}
}

// Create stores a new form. The form must not carry an ID; the store assigns
// one. The stored form is mirrored into the search index.
func (s *Service) Create(ctx context.Context, f *domain.Form) (domain.Form, error) {
	if f.HasID() {
		return domain.Form{}, domain.ErrIDExists
	}
	if err := f.Validate(); err != nil {
		return domain.Form{}, err
	}

	saved, err := s.repo.Save(ctx, f)
	if err != nil {
		return domain.Form{}, fmt.Errorf("create form: %w", err)
	}
	if err := s.index.Save(ctx, &saved); err != nil {
		return domain.Form{}, fmt.Errorf("index created form %d: %w", *saved.ID, err)
	}
	return saved, nil
}

// Update fully replaces a stored form. The form must carry an ID. An ID that
// was never assigned still writes (upsert) — store-dependent behavior carried
// over from the original's save semantics.
func (s *Service) Update(ctx context.Context, f *domain.Form) (domain.Form, error) {
	if !f.HasID() {
		return domain.Form{}, domain.ErrIDMissing
	}
	if err := f.Validate(); err != nil {
		return domain.Form{}, err
	}

	saved, err := s.repo.Save(ctx, f)
	if err != nil {
		return domain.Form{}, fmt.Errorf("update form %d: %w", *f.ID, err)
	}
	if err := s.index.Save(ctx, &saved); err != nil {
		return domain.Form{}, fmt.Errorf("index updated form %d: %w", *saved.ID, err)
	}
	return saved, nil
}

// List returns all stored forms in the store's order.
func (s *Service) List(ctx context.Context) ([]domain.Form, error) {
	forms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

// Get returns a single form, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (domain.Form, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Form{}, fmt.Errorf("get form %d: %w", id, err)
	}
	return f, nil
}

// Delete removes a form from the store and the index. Deleting an absent ID
// succeeds — the operation is idempotent.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete form %d: %w", id, err)
	}
	if err := s.index.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("unindex form %d: %w", id, err)
	}
	return nil
}

// Search delegates a free-text query to the index.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Form, error) {
	forms, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search forms: %w", err)
	}
	return forms, nil
}
