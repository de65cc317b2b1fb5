package chi

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	gochi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formvault/formvault/internal/domain"
	formuc "github.com/formvault/formvault/internal/usecase/form"
	healthuc "github.com/formvault/formvault/internal/usecase/health"
)

// memRepo is an in-memory record store for handler tests.
type memRepo struct {
	mu    sync.Mutex
	seq   int64
	forms map[int64]domain.Form

	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{forms: make(map[int64]domain.Form)}
}

func (m *memRepo) Save(_ context.Context, f *domain.Form) (domain.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return domain.Form{}, m.saveErr
	}
	saved := *f
	if saved.ID == nil {
		m.seq++
		id := m.seq
		saved.ID = &id
		if saved.Reference == "" {
			saved.Reference = uuid.NewString()
		}
	}
	m.forms[*saved.ID] = saved
	return saved, nil
}

func (m *memRepo) FindAll(context.Context) ([]domain.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Form, 0, len(m.forms))
	for _, f := range m.forms {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

func (m *memRepo) FindByID(_ context.Context, id int64) (domain.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.forms[id]
	if !ok {
		return domain.Form{}, domain.ErrNotFound
	}
	return f, nil
}

func (m *memRepo) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.forms, id)
	return nil
}

// memIndex is an in-memory search index that matches on substrings.
type memIndex struct {
	mu   sync.Mutex
	docs map[int64]domain.Form

	saveErr   error
	searchErr error
}

func newMemIndex() *memIndex {
	return &memIndex{docs: make(map[int64]domain.Form)}
}

func (m *memIndex) Save(_ context.Context, f *domain.Form) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.docs[*f.ID] = *f
	return nil
}

func (m *memIndex) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *memIndex) Search(_ context.Context, query string) ([]domain.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	q := strings.ToLower(query)
	out := make([]domain.Form, 0)
	for _, f := range m.docs {
		text := strings.ToLower(f.Name + " " + f.Provider + " " + f.Notes)
		if q != "" && strings.Contains(text, q) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// testServer wires a full handler stack over in-memory stores.
type testServer struct {
	srv   *httptest.Server
	repo  *memRepo
	index *memIndex
}

func newTestServer() *testServer {
	repo := newMemRepo()
	index := newMemIndex()

	forms := formuc.New(repo, index)
	health := healthuc.New(okPinger{}, nil)
	s := NewServer(forms, health, "formvault", zap.NewNop())

	r := gochi.NewRouter()
	s.Routes(r)

	return &testServer{
		srv:   httptest.NewServer(r),
		repo:  repo,
		index: index,
	}
}

func (ts *testServer) close() { ts.srv.Close() }
