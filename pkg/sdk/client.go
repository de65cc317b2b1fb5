package formvault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formvault/formvault/internal/db"
	dbRedis "github.com/formvault/formvault/internal/db/redis"
	"github.com/formvault/formvault/internal/domain"
	formrepo "github.com/formvault/formvault/internal/repository/form"
	searchrepo "github.com/formvault/formvault/internal/repository/search"
	formuc "github.com/formvault/formvault/internal/usecase/form"
	healthuc "github.com/formvault/formvault/internal/usecase/health"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "formvault:"
)

// Internal interfaces so tests can substitute the service layer.
type formUseCase interface {
	Create(ctx context.Context, f *domain.Form) (domain.Form, error)
	Update(ctx context.Context, f *domain.Form) (domain.Form, error)
	List(ctx context.Context) ([]domain.Form, error)
	Get(ctx context.Context, id int64) (domain.Form, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]domain.Form, error)
}

// Client is the formvault SDK entry point.
type Client struct {
	store     db.Store
	formSvc   formUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a formvault Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix: defaultKeyPrefix,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("formvault: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("formvault: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("formvault: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(ctx, store, cfg, obs)
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	formRepo := formrepo.New(store, cfg.keyPrefix)
	searchRepo := searchrepo.New(store, cfg.keyPrefix)

	if err := searchRepo.EnsureIndex(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("formvault: ensure search index: %w", err)
	}

	return &Client{
		store:     store,
		formSvc:   formuc.New(formRepo, searchRepo),
		healthSvc: healthuc.New(store, searchRepo),
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Forms returns the insurance form service.
func (c *Client) Forms() *FormService {
	return &FormService{svc: c.formSvc, obs: c.obs}
}
