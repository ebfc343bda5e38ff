package session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/pagination"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// AddFiles adds photos to the selection. Non-images and oversized files are
// dropped; an add that would overflow the selection is refused as a whole.
func (s *Session) AddFiles(files ...upload.File) (upload.AddResult, error) {
	res, err := s.uploads.Selection().Add(files...)
	if err != nil {
		return res, wrap("add_files", err)
	}
	return res, nil
}

// RemoveFile drops one selected photo
func (s *Session) RemoveFile(index int) bool {
	return s.uploads.Selection().Remove(index)
}

// ClearFiles empties the selection
func (s *Session) ClearFiles() {
	s.uploads.Selection().Clear()
}

// SubmitEnabled reports whether the submit control is active
func (s *Session) SubmitEnabled() bool {
	return s.uploads.SubmitEnabled()
}

// SubmitBatch uploads the selection sequentially. When anything was
// extracted, the view that shows the affected data is re-fetched.
func (s *Session) SubmitBatch(ctx context.Context, bc upload.BatchContext) (*upload.BatchOutcome, error) {
	outcome, err := s.uploads.SubmitSelection(ctx, bc)
	if err != nil {
		return nil, wrap("submit_batch", err)
	}

	s.mu.Lock()
	s.lastBatch = outcome
	s.mu.Unlock()

	if outcome.SuccessTotal > 0 {
		s.afterBatch(context.WithoutCancel(ctx), bc)
	}
	return outcome, nil
}

// afterBatch invalidates whatever the batch may have changed
func (s *Session) afterBatch(ctx context.Context, bc upload.BatchContext) {
	// a free-text store name may have created a store on the backend
	if bc.StoreID == nil && bc.StoreName != "" {
		s.catalog.Invalidate()
		if _, err := s.catalog.Load(ctx); err != nil {
			s.log.Warn(ctx, "store list reload after upload failed: "+err.Error())
		}
	}

	switch s.View() {
	case ViewStoreDetail:
		detail, ok := s.Detail()
		if !ok {
			return
		}
		if bc.StoreID != nil && *bc.StoreID != detail.Store.ID {
			return
		}
		if _, err := s.RefreshDetail(ctx); err != nil {
			s.log.Warn(ctx, "store refresh after upload failed: "+err.Error())
		}
	case ViewProducts:
		s.reloadProducts(ctx)
	case ViewReview:
		if _, err := s.review.ListPending(ctx); err != nil {
			s.log.Warn(ctx, "review refresh after upload failed: "+err.Error())
		}
	case ViewDashboard:
		if _, err := s.Dashboard(ctx); err != nil {
			s.log.Warn(ctx, "dashboard refresh after upload failed: "+err.Error())
		}
	}
}

// ListPending shows the review queue
func (s *Session) ListPending(ctx context.Context) ([]domain.ExtractedItem, error) {
	items, err := s.review.ListPending(ctx)
	if err != nil {
		return nil, wrap("list_pending", err)
	}
	s.setView(ViewReview)
	return items, nil
}

// Approve confirms a pending item with the operator's edits
func (s *Session) Approve(ctx context.Context, id int64, name string, price decimal.Decimal) (*domain.ExtractedItem, error) {
	item, err := s.review.Approve(ctx, id, name, price)
	if err != nil {
		return nil, wrap("approve", err)
	}
	return item, nil
}

// afterApprove refreshes the views that list the approved item
func (s *Session) afterApprove(ctx context.Context, item domain.ExtractedItem) {
	if detail, ok := s.Detail(); ok {
		if item.Store == nil || item.Store.ID == detail.Store.ID {
			if _, err := s.RefreshDetail(ctx); err != nil {
				s.log.Warn(ctx, "store refresh after approve failed: "+err.Error())
			}
		}
	}
	if _, ok := s.Products(); ok {
		s.reloadProducts(ctx)
	}
}

// LoadProducts shows one page of the product listing with its pagination window
func (s *Session) LoadProducts(ctx context.Context, page int, filter domain.ProductFilter) (*ProductList, error) {
	if page < 1 {
		page = 1
	}
	result, err := s.api.ListProducts(ctx, page, s.cfg.ProductsPageSize, filter)
	if err != nil {
		return nil, wrap("load_products", err)
	}

	current := result.Page
	if current < 1 {
		current = page
	}
	list := &ProductList{
		Filter:  filter,
		Page:    result,
		Markers: pagination.Window(current, result.TotalPages),
	}

	s.mu.Lock()
	s.products = list
	s.view = ViewProducts
	s.mu.Unlock()
	return list, nil
}

func (s *Session) reloadProducts(ctx context.Context) {
	list, ok := s.Products()
	if !ok {
		return
	}
	page := 1
	if list.Page != nil && list.Page.Page > 0 {
		page = list.Page.Page
	}

	result, err := s.api.ListProducts(ctx, page, s.cfg.ProductsPageSize, list.Filter)
	if err != nil {
		s.log.Warn(ctx, "product list refresh failed: "+err.Error())
		return
	}

	s.mu.Lock()
	s.products = &ProductList{
		Filter:  list.Filter,
		Page:    result,
		Markers: pagination.Window(page, result.TotalPages),
	}
	s.mu.Unlock()
}

// Dashboard shows the summary counters
func (s *Session) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.api.DashboardStats(ctx)
	if err != nil {
		return nil, wrap("dashboard", err)
	}
	s.mu.Lock()
	s.dashboard = stats
	s.view = ViewDashboard
	s.mu.Unlock()
	return stats, nil
}

// AddManualProduct records a hand-entered price for the open store and
// re-fetches its detail view
func (s *Session) AddManualProduct(ctx context.Context, name string, price decimal.Decimal, at *time.Time) (*domain.ExtractedItem, error) {
	detail, ok := s.Detail()
	if !ok {
		return nil, wrap("add_manual_product", ErrNoStoreSelected)
	}
	return s.AddManualProductTo(ctx, domain.ManualProduct{
		StoreID:     detail.Store.ID,
		ProductName: name,
		Price:       price,
		ExtractedAt: at,
	})
}

// AddManualProductTo records a hand-entered price for any store
func (s *Session) AddManualProductTo(ctx context.Context, p domain.ManualProduct) (*domain.ExtractedItem, error) {
	if err := p.Validate(); err != nil {
		return nil, wrap("add_manual_product", err)
	}

	item, err := s.api.AddManualProduct(ctx, p)
	if err != nil {
		return nil, wrap("add_manual_product", err)
	}

	if detail, ok := s.Detail(); ok && detail.Store.ID == p.StoreID {
		if _, err := s.RefreshDetail(ctx); err != nil {
			s.log.Warn(ctx, "store refresh after manual add failed: "+err.Error())
		}
	}
	return item, nil
}
