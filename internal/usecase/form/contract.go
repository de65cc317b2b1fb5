package form

import (
	"context"

	"github.com/formvault/formvault/internal/domain"
)

// Repository defines the authoritative record store contract.
type Repository interface {
	Save(ctx context.Context, f *domain.Form) (domain.Form, error)
	FindAll(ctx context.Context) ([]domain.Form, error)
	FindByID(ctx context.Context, id int64) (domain.Form, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Index defines the derived free-text search index contract.
type Index interface {
	Save(ctx context.Context, f *domain.Form) error
	DeleteByID(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]domain.Form, error)
}
