// Package session is the command layer behind the console server and the
// CLI. It owns the store cache, the photo selection, the review workflow and
// the per-view state, and exposes each user action as a named operation.
package session

import (
	"context"
	"sync"

	"github.com/ridwanfathin/shelf-price-monitor/internal/aggregate"
	"github.com/ridwanfathin/shelf-price-monitor/internal/catalog"
	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/gallery"
	"github.com/ridwanfathin/shelf-price-monitor/internal/imageutil"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
	"github.com/ridwanfathin/shelf-price-monitor/internal/pagination"
	"github.com/ridwanfathin/shelf-price-monitor/internal/review"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// Error wraps a failed session operation
type Error struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	return "session " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// View is the screen the session currently shows
type View string

const (
	ViewStoreList   View = "stores"
	ViewStoreDetail View = "store"
	ViewProducts    View = "products"
	ViewReview      View = "review"
	ViewDashboard   View = "dashboard"
	ViewUpload      View = "upload"
)

// API is everything the session calls on the backend
type API interface {
	upload.Extractor
	review.API
	catalog.API
	ListStoreProducts(ctx context.Context, storeID int64) ([]domain.ExtractedItem, error)
	ListProducts(ctx context.Context, page, pageSize int, filter domain.ProductFilter) (*domain.ProductPage, error)
	AddManualProduct(ctx context.Context, p domain.ManualProduct) (*domain.ExtractedItem, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

// Recorder collects the metrics of every component the session drives
type Recorder interface {
	upload.Recorder
	review.Recorder
	catalog.Recorder
}

// Config holds the tunables of a session
type Config struct {
	Limits           upload.Limits
	ReviewPageSize   int
	ProductsPageSize int
	Resize           *imageutil.ResizeConfig
}

// DefaultConfig returns the stock session configuration
func DefaultConfig() Config {
	return Config{
		Limits:           upload.DefaultLimits(),
		ReviewPageSize:   review.DefaultPageSize,
		ProductsPageSize: 20,
	}
}

// Options carries the ambient collaborators
type Options struct {
	Logger  *logger.Logger
	Metrics Recorder
}

// StoreDetail is the per-store view: the aggregated table and photo set plus
// the inline slideshow position. Err holds a fetch failure rendered in place
// of the table.
type StoreDetail struct {
	Store  domain.Store
	View   aggregate.StoreView
	Inline *gallery.Cursor
	Err    error
}

// snapshot copies the detail so callers can render it without holding mu.
// The aggregated view is never mutated after fetchDetail and is shared.
func (d *StoreDetail) snapshot() *StoreDetail {
	cp := *d
	if d.Inline != nil {
		cp.Inline = d.Inline.Clone()
	}
	return &cp
}

// ProductList is the paginated listing view
type ProductList struct {
	Filter  domain.ProductFilter
	Page    *domain.ProductPage
	Markers []pagination.Marker
}

// Session is one operator's working state
type Session struct {
	api     API
	cfg     Config
	log     *logger.Logger
	catalog *catalog.Catalog
	uploads *upload.Orchestrator
	review  *review.Workflow

	mu           sync.Mutex
	view         View
	detail       *StoreDetail
	products     *ProductList
	dashboard    *domain.DashboardStats
	modal        *gallery.Modal
	scrollLocked bool
	lastBatch    *upload.BatchOutcome
}

// New wires a session around api
func New(api API, cfg Config, opts Options) *Session {
	def := DefaultConfig()
	if cfg.ReviewPageSize <= 0 {
		cfg.ReviewPageSize = def.ReviewPageSize
	}
	if cfg.ProductsPageSize <= 0 {
		cfg.ProductsPageSize = def.ProductsPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	s := &Session{
		api:  api,
		cfg:  cfg,
		log:  opts.Logger,
		view: ViewStoreList,
	}

	var (
		uploadRec  upload.Recorder
		reviewRec  review.Recorder
		catalogRec catalog.Recorder
	)
	if opts.Metrics != nil {
		uploadRec, reviewRec, catalogRec = opts.Metrics, opts.Metrics, opts.Metrics
	}

	s.catalog = catalog.New(api, catalog.Options{Logger: opts.Logger, Metrics: catalogRec})
	s.uploads = upload.New(api, upload.NewSelection(cfg.Limits), upload.Options{
		Logger:  opts.Logger,
		Metrics: uploadRec,
		Resize:  cfg.Resize,
	})
	s.review = review.NewWorkflow(api, review.Options{
		PageSize:   cfg.ReviewPageSize,
		Logger:     opts.Logger,
		Metrics:    reviewRec,
		OnApproved: s.afterApprove,
	})
	s.modal = gallery.NewModal(s)
	return s
}

// Catalog exposes the shared store cache
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Uploads exposes the batch orchestrator
func (s *Session) Uploads() *upload.Orchestrator {
	return s.uploads
}

// Review exposes the review workflow
func (s *Session) Review() *review.Workflow {
	return s.review
}

// View returns the active view
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) setView(v View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// Detail returns a copy of the open store detail, if any
func (s *Session) Detail() (*StoreDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return nil, false
	}
	return s.detail.snapshot(), true
}

// Products returns the last loaded product list
func (s *Session) Products() (*ProductList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products, s.products != nil
}

// LastBatch returns the outcome of the most recent upload batch
func (s *Session) LastBatch() (*upload.BatchOutcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBatch, s.lastBatch != nil
}

// LockScroll implements gallery.ScrollLocker. Must be called with mu held;
// the modal only invokes it from session methods that hold the lock.
func (s *Session) LockScroll() {
	s.scrollLocked = true
}

// UnlockScroll implements gallery.ScrollLocker. Must be called with mu held.
func (s *Session) UnlockScroll() {
	s.scrollLocked = false
}

// ScrollLocked reports whether the background is pinned behind the viewer
func (s *Session) ScrollLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollLocked
}
