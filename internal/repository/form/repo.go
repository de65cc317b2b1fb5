package form

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/formvault/formvault/internal/domain"
)

// store is the consumer interface for form persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// Repo is the authoritative record store for insurance forms.
type Repo struct {
	store  store
	prefix string
}

// New creates a form repository. prefix namespaces all keys (e.g. "formvault:").
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save persists a form. When the form has no ID one is assigned from the
// sequence, along with a reference UUID. When an ID is present the stored
// value is fully replaced; an ID that was never assigned still writes
// (upsert) — Redis hashes have no row-exists notion, matching the original
// store's save semantics.
func (r *Repo) Save(ctx context.Context, f *domain.Form) (domain.Form, error) {
	saved := *f

	if saved.ID == nil {
		id, err := r.store.Incr(ctx, r.seqKey())
		if err != nil {
			return domain.Form{}, fmt.Errorf("next form id: %w", err)
		}
		saved.ID = &id
		if saved.Reference == "" {
			saved.Reference = uuid.NewString()
		}
	}

	key := r.formKey(*saved.ID)

	// Full replace: drop stale fields a plain HSET would leave behind.
	if err := r.store.Del(ctx, key); err != nil {
		return domain.Form{}, fmt.Errorf("clear form %s: %w", key, err)
	}
	if err := r.store.HSet(ctx, key, hashFields(&saved)); err != nil {
		return domain.Form{}, fmt.Errorf("save form %s: %w", key, err)
	}

	return saved, nil
}

// FindAll returns every stored form ordered by ascending ID.
func (r *Repo) FindAll(ctx context.Context) ([]domain.Form, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"forms:*")
	if err != nil {
		return nil, fmt.Errorf("scan forms: %w", err)
	}
	if len(keys) == 0 {
		return []domain.Form{}, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load forms: %w", err)
	}

	forms := make([]domain.Form, 0, len(hashes))
	for i, m := range hashes {
		if len(m) == 0 {
			continue // deleted between SCAN and HGETALL
		}
		f, err := formFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse form %s: %w", keys[i], err)
		}
		forms = append(forms, f)
	}

	sort.Slice(forms, func(i, j int) bool { return *forms[i].ID < *forms[j].ID })
	return forms, nil
}

// FindByID returns a single form, or domain.ErrNotFound.
func (r *Repo) FindByID(ctx context.Context, id int64) (domain.Form, error) {
	m, err := r.store.HGetAll(ctx, r.formKey(id))
	if err != nil {
		return domain.Form{}, fmt.Errorf("load form %d: %w", id, err)
	}
	if len(m) == 0 {
		return domain.Form{}, domain.ErrNotFound
	}
	return formFromHash(m)
}

// DeleteByID removes a form. Deleting an absent ID is a no-op.
func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	if err := r.store.Del(ctx, r.formKey(id)); err != nil {
		return fmt.Errorf("delete form %d: %w", id, err)
	}
	return nil
}

func (r *Repo) formKey(id int64) string {
	return fmt.Sprintf("%sforms:%d", r.prefix, id)
}

func (r *Repo) seqKey() string {
	return r.prefix + "seq:forms"
}
