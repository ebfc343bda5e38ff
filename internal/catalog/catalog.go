// Package catalog caches the store list for the session.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
)

// API is the subset of the price API the catalog needs
type API interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	CreateStore(ctx context.Context, in domain.NewStore) (*domain.Store, error)
}

// Recorder receives reload outcomes
type Recorder interface {
	ObserveStoreReload(err error)
}

// Filter narrows the store list. Empty fields match everything.
type Filter struct {
	Branch  string
	Channel string
}

// Matches reports whether s passes every non-empty predicate
func (f Filter) Matches(s domain.Store) bool {
	if f.Branch != "" && s.Branch != f.Branch {
		return false
	}
	if f.Channel != "" && s.Channel != f.Channel {
		return false
	}
	return true
}

// Option is one entry of the upload target selector
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// snapshot is immutable once published; a reload swaps in a new one
type snapshot struct {
	stores   []domain.Store
	byID     map[int64]int
	loadedAt time.Time
}

func newSnapshot(stores []domain.Store) *snapshot {
	s := &snapshot{
		stores:   append([]domain.Store(nil), stores...),
		byID:     make(map[int64]int, len(stores)),
		loadedAt: time.Now(),
	}
	for i, st := range s.stores {
		s.byID[st.ID] = i
	}
	return s
}

// Catalog holds the last loaded store list. Mutations never patch the list
// in place: every change triggers a full reload that replaces the snapshot.
type Catalog struct {
	api     API
	log     *logger.Logger
	metrics Recorder

	mu   sync.RWMutex
	snap *snapshot
}

// Options configures a Catalog
type Options struct {
	Logger  *logger.Logger
	Metrics Recorder
}

func New(api API, opts Options) *Catalog {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Catalog{api: api, log: opts.Logger, metrics: opts.Metrics}
}

// Load fetches the full store list and replaces the cached snapshot
func (c *Catalog) Load(ctx context.Context) ([]domain.Store, error) {
	stores, err := c.api.ListStores(ctx)
	if c.metrics != nil {
		c.metrics.ObserveStoreReload(err)
	}
	if err != nil {
		c.log.Error(ctx, "failed to load stores", err)
		return nil, err
	}

	snap := newSnapshot(stores)
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	c.log.Debug(ctx, fmt.Sprintf("loaded %d stores", len(stores)))
	return append([]domain.Store(nil), snap.stores...), nil
}

func (c *Catalog) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Loaded reports whether a snapshot is cached
func (c *Catalog) Loaded() bool {
	return c.current() != nil
}

// LoadedAt returns when the cached snapshot was fetched
func (c *Catalog) LoadedAt() time.Time {
	if snap := c.current(); snap != nil {
		return snap.loadedAt
	}
	return time.Time{}
}

// Invalidate drops the cached snapshot
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Stores returns the cached stores in backend order
func (c *Catalog) Stores() []domain.Store {
	snap := c.current()
	if snap == nil {
		return nil
	}
	return append([]domain.Store(nil), snap.stores...)
}

// Get looks a store up in the cache
func (c *Catalog) Get(id int64) (domain.Store, bool) {
	snap := c.current()
	if snap == nil {
		return domain.Store{}, false
	}
	i, ok := snap.byID[id]
	if !ok {
		return domain.Store{}, false
	}
	return snap.stores[i], true
}

// Resolve returns the store for id, loading the list first when nothing is cached
func (c *Catalog) Resolve(ctx context.Context, id int64) (domain.Store, error) {
	if !c.Loaded() {
		if _, err := c.Load(ctx); err != nil {
			return domain.Store{}, err
		}
	}
	store, ok := c.Get(id)
	if !ok {
		return domain.Store{}, fmt.Errorf("store %d: %w", id, domain.ErrNotFound)
	}
	return store, nil
}

// Filter applies f to the cached stores
func (c *Catalog) Filter(f Filter) []domain.Store {
	snap := c.current()
	if snap == nil {
		return nil
	}
	out := make([]domain.Store, 0, len(snap.stores))
	for _, s := range snap.stores {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Add validates and submits a new store, then reloads the whole list
func (c *Catalog) Add(ctx context.Context, in domain.NewStore) (*domain.Store, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := c.api.CreateStore(ctx, in)
	if err != nil {
		c.log.Error(ctx, "failed to create store", err)
		return nil, err
	}

	ctx = c.log.WithStoreID(ctx, created.ID)
	c.log.Info(ctx, "store created")

	// the store exists on the backend either way; a failed reload keeps the
	// previous snapshot until the next Load
	if _, err := c.Load(ctx); err != nil {
		c.log.Warn(ctx, "store list not refreshed after create")
	}
	return created, nil
}

// UploadTargets builds the upload selector from the cached stores
func (c *Catalog) UploadTargets() []Option {
	stores := c.Stores()
	opts := make([]Option, 0, len(stores))
	for _, s := range stores {
		opts = append(opts, Option{ID: s.ID, Label: s.OptionLabel()})
	}
	return opts
}

// Branches lists the distinct non-empty branches for the filter selector
func (c *Catalog) Branches() []string {
	return c.distinct(func(s domain.Store) string { return s.Branch })
}

// Channels lists the distinct non-empty channels for the filter selector
func (c *Catalog) Channels() []string {
	return c.distinct(func(s domain.Store) string { return s.Channel })
}

func (c *Catalog) distinct(field func(domain.Store) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, s := range c.Stores() {
		v := strings.TrimSpace(field(s))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
