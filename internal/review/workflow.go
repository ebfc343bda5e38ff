// Package review drives the approval of low-confidence extracted items.
package review

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
)

// DefaultPageSize is how many pending items one listing fetches
const DefaultPageSize = 50

// API is the subset of the price API the workflow needs
type API interface {
	ListPendingReview(ctx context.Context, pageSize int) ([]domain.ExtractedItem, error)
	ReviewItem(ctx context.Context, id int64, edit domain.ReviewEdit) (*domain.ExtractedItem, error)
}

// Recorder receives approval outcomes
type Recorder interface {
	ObserveApproval(err error)
}

// Options configures a Workflow
type Options struct {
	PageSize int
	Logger   *logger.Logger
	Metrics  Recorder
	// OnApproved runs after a successful approve so dependent views can be refetched
	OnApproved func(ctx context.Context, item domain.ExtractedItem)
}

// Workflow holds the pending set and applies approvals to it
type Workflow struct {
	api        API
	pageSize   int
	log        *logger.Logger
	metrics    Recorder
	onApproved func(ctx context.Context, item domain.ExtractedItem)

	mu      sync.RWMutex
	pending []domain.ExtractedItem
}

func NewWorkflow(api API, opts Options) *Workflow {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Workflow{
		api:        api,
		pageSize:   opts.PageSize,
		log:        opts.Logger,
		metrics:    opts.Metrics,
		onApproved: opts.OnApproved,
	}
}

// OnApproved replaces the post-approve hook
func (w *Workflow) OnApproved(fn func(ctx context.Context, item domain.ExtractedItem)) {
	w.mu.Lock()
	w.onApproved = fn
	w.mu.Unlock()
}

// ListPending fetches the first page of items awaiting review, keeping backend order
func (w *Workflow) ListPending(ctx context.Context) ([]domain.ExtractedItem, error) {
	items, err := w.api.ListPendingReview(ctx, w.pageSize)
	if err != nil {
		w.log.Error(ctx, "failed to list pending review items", err)
		return nil, err
	}

	w.mu.Lock()
	w.pending = append([]domain.ExtractedItem(nil), items...)
	w.mu.Unlock()

	return items, nil
}

// Pending returns the cached pending set
func (w *Workflow) Pending() []domain.ExtractedItem {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]domain.ExtractedItem(nil), w.pending...)
}

// Approve sends the edited name and price with an approve action. The edit
// fully replaces the extracted values. On failure the item stays pending.
func (w *Workflow) Approve(ctx context.Context, id int64, editedName string, editedPrice decimal.Decimal) (*domain.ExtractedItem, error) {
	item, ok := w.find(id)
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	if _, err := item.Status.Approve(); err != nil {
		return nil, err
	}

	edit := domain.ReviewEdit{
		ProductName: strings.TrimSpace(editedName),
		Price:       editedPrice,
		Action:      domain.ActionApprove,
	}
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	ctx = w.log.WithField(ctx, "item_id", id)
	updated, err := w.api.ReviewItem(ctx, id, edit)
	if w.metrics != nil {
		w.metrics.ObserveApproval(err)
	}
	if err != nil {
		w.log.Error(ctx, "approve failed", err)
		return nil, err
	}

	w.mu.Lock()
	w.remove(id)
	hook := w.onApproved
	w.mu.Unlock()

	approved := *updated
	if approved.ID == 0 {
		approved = item
		approved.ProductName = edit.ProductName
		approved.Price = edit.Price
		approved.Status = domain.StatusApproved
	}

	w.log.Info(ctx, "item approved")
	if hook != nil {
		hook(ctx, approved)
	}
	return &approved, nil
}

func (w *Workflow) find(id int64) (domain.ExtractedItem, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, item := range w.pending {
		if item.ID == id {
			return item, true
		}
	}
	return domain.ExtractedItem{}, false
}

// remove must be called with mu held
func (w *Workflow) remove(id int64) {
	for i, item := range w.pending {
		if item.ID == id {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return
		}
	}
}
