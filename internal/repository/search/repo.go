package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/formvault/formvault/internal/db"
	"github.com/formvault/formvault/internal/domain"
)

// maxSearchHits bounds a single free-text query.
const maxSearchHits = 1000

// store is the consumer interface for the search index (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	Del(ctx context.Context, key string) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo is the derived free-text search index for insurance forms.
//
// It holds a mirrored copy of each form under its own key prefix; the record
// store remains authoritative and the two are only as consistent as the
// endpoint's sequential dual writes keep them.
type Repo struct {
	store  store
	prefix string
}

// New creates a search index repository. prefix namespaces all keys.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// EnsureIndex creates the FT index over the mirror prefix if it is absent.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     r.indexName(),
		Prefixes: []string{r.mirrorPrefix()},
		Fields: []db.IndexField{
			{Name: "id", Type: db.IndexFieldNumeric},
			{Name: "name", Type: db.IndexFieldText},
			{Name: "provider", Type: db.IndexFieldText},
			{Name: "notes", Type: db.IndexFieldText},
			{Name: "policy_number", Type: db.IndexFieldTag},
			{Name: "premium", Type: db.IndexFieldNumeric},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		// Lost a create race with another instance.
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Save mirrors a form into the index keyspace. The form must carry an ID.
// The mirror is fully replaced: a plain HSET would merge into the existing
// hash and keep fields the updated form no longer carries.
func (r *Repo) Save(ctx context.Context, f *domain.Form) error {
	if f.ID == nil {
		return fmt.Errorf("index form: %w", domain.ErrIDMissing)
	}
	key := r.mirrorKey(*f.ID)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("clear mirror %s: %w", key, err)
	}
	if err := r.store.HSet(ctx, key, indexFields(f)); err != nil {
		return fmt.Errorf("index form %d: %w", *f.ID, err)
	}
	return nil
}

// DeleteByID removes a form from the index. Absent IDs are a no-op.
func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	if err := r.store.Del(ctx, r.mirrorKey(id)); err != nil {
		return fmt.Errorf("unindex form %d: %w", id, err)
	}
	return nil
}

// Search runs a free-text query over the indexed forms. A query matching
// nothing (or a blank query) yields an empty slice, never an error.
// Results are capped at maxSearchHits; matches beyond the cap are not
// returned.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.Form, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Form{}, nil
	}

	res, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName: r.indexName(),
		Query:     query,
		TopK:      maxSearchHits,
	})
	if err != nil {
		return nil, fmt.Errorf("search forms: %w", err)
	}
	if res == nil || res.Total == 0 {
		return []domain.Form{}, nil
	}

	forms := make([]domain.Form, 0, len(res.Entries))
	for _, entry := range res.Entries {
		f, err := formFromIndexFields(entry.Fields)
		if err != nil {
			continue // skip malformed mirror entries
		}
		forms = append(forms, f)
	}
	return forms, nil
}

// Count returns the number of forms currently mirrored in the index.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("count indexed forms: %w", err)
	}
	return n, nil
}

// HealthCheck verifies the search index still exists.
func (r *Repo) HealthCheck(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("probe search index: %w", err)
	}
	if !exists {
		return fmt.Errorf("search index %s: %w", r.indexName(), db.ErrIndexNotFound)
	}
	return nil
}

func (r *Repo) indexName() string {
	return r.prefix + "forms-idx"
}

func (r *Repo) mirrorPrefix() string {
	return r.prefix + "search:forms:"
}

func (r *Repo) mirrorKey(id int64) string {
	return fmt.Sprintf("%s%d", r.mirrorPrefix(), id)
}
