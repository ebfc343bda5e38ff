package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ridwanfathin/shelf-price-monitor/internal/aggregate"
	"github.com/ridwanfathin/shelf-price-monitor/internal/catalog"
	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/gallery"
)

// DeepLinkParam is the query parameter that records the open store
const DeepLinkParam = "store"

// ErrNoStoreSelected is returned by operations that need an open store detail
var ErrNoStoreSelected = errors.New("no store selected")

// DeepLinkQuery renders the query string for the open store, or "" on the list
func (s *Session) DeepLinkQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewStoreDetail || s.detail == nil {
		return ""
	}
	return DeepLinkParam + "=" + strconv.FormatInt(s.detail.Store.ID, 10)
}

// ParseDeepLink extracts the store id from a query string such as "store=12"
// or "?store=12&tab=x"
func ParseDeepLink(query string) (int64, bool) {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return 0, false
	}
	raw := strings.TrimSpace(values.Get(DeepLinkParam))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// LoadStores fetches the store list and shows it
func (s *Session) LoadStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, wrap("load_stores", err)
	}
	s.BackToList()
	return stores, nil
}

// FilterStores narrows the cached list, loading it first when needed
func (s *Session) FilterStores(ctx context.Context, f catalog.Filter) ([]domain.Store, error) {
	if !s.catalog.Loaded() {
		if _, err := s.catalog.Load(ctx); err != nil {
			return nil, wrap("filter_stores", err)
		}
	}
	return s.catalog.Filter(f), nil
}

// CreateStore adds a store; the cache is reloaded wholesale on success
func (s *Session) CreateStore(ctx context.Context, in domain.NewStore) (*domain.Store, error) {
	created, err := s.catalog.Add(ctx, in)
	if err != nil {
		return nil, wrap("create_store", err)
	}
	return created, nil
}

// SelectStore opens the detail view of a store and returns a copy of it.
// A failed product fetch is kept on the detail as an error state instead of
// failing the operation.
func (s *Session) SelectStore(ctx context.Context, id int64) (*StoreDetail, error) {
	store, err := s.catalog.Resolve(ctx, id)
	if err != nil {
		return nil, wrap("select_store", err)
	}

	ctx = s.log.WithStoreID(ctx, id)
	detail := s.fetchDetail(ctx, store)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.detail = detail
	s.view = ViewStoreDetail
	return detail.snapshot(), nil
}

func (s *Session) fetchDetail(ctx context.Context, store domain.Store) *StoreDetail {
	detail := &StoreDetail{Store: store}

	items, err := s.api.ListStoreProducts(ctx, store.ID)
	if err != nil {
		s.log.Error(ctx, "failed to load store products", err)
		detail.Err = err
		detail.Inline = gallery.NewCursor(nil)
		return detail
	}

	detail.View = aggregate.Aggregate(items)
	detail.Inline = gallery.NewCursor(detail.View.ImagePaths())
	return detail
}

// RefreshDetail re-fetches the open store and rebuilds its table and photo set.
// The returned detail is a copy.
func (s *Session) RefreshDetail(ctx context.Context) (*StoreDetail, error) {
	s.mu.Lock()
	current := s.detail
	s.mu.Unlock()
	if current == nil {
		return nil, wrap("refresh_detail", ErrNoStoreSelected)
	}

	detail := s.fetchDetail(ctx, current.Store)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail != nil && s.detail.Store.ID == current.Store.ID {
		s.detail = detail
	}
	return detail.snapshot(), nil
}

// RestoreDeepLink is the start-up path: load the store list, then open the
// store named by the query if it exists. Each step awaits the previous one.
func (s *Session) RestoreDeepLink(ctx context.Context, query string) (View, error) {
	if _, err := s.catalog.Load(ctx); err != nil {
		return s.View(), wrap("restore_deep_link", err)
	}
	return s.Navigate(ctx, query)
}

// Navigate applies a history move: the store named by the query is opened if
// it resolves, otherwise the store list is shown.
func (s *Session) Navigate(ctx context.Context, query string) (View, error) {
	id, ok := ParseDeepLink(query)
	if !ok {
		s.BackToList()
		return ViewStoreList, nil
	}

	if _, err := s.SelectStore(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn(ctx, fmt.Sprintf("deep link to unknown store %d", id))
			s.BackToList()
			return ViewStoreList, nil
		}
		return s.View(), err
	}
	return ViewStoreDetail, nil
}

// BackToList closes any store detail and shows the store list
func (s *Session) BackToList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.detail = nil
	s.view = ViewStoreList
}

// AdvanceSlide moves the inline slideshow of the open store
func (s *Session) AdvanceSlide(d gallery.Direction) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil || s.detail.Inline == nil {
		return 0, false
	}
	s.detail.Inline.Advance(d)
	return s.detail.Inline.Index()
}

// SlideState is the inline slideshow position for rendering
type SlideState struct {
	Index    int    `json:"index"`
	Position int    `json:"position"`
	Total    int    `json:"total"`
	Current  string `json:"current,omitempty"`
}

// InlineSlide returns the inline slideshow position of the open store
func (s *Session) InlineSlide() (SlideState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil || s.detail.Inline == nil {
		return SlideState{}, false
	}
	cur := s.detail.Inline
	idx, ok := cur.Index()
	if !ok {
		return SlideState{}, false
	}
	path, _ := cur.Current()
	pos, total := cur.Counter()
	return SlideState{Index: idx, Position: pos, Total: total, Current: path}, true
}

// OpenModalFromRow opens the viewer on a table row's photo. The row index
// is only used when the photo is no longer part of the image set.
func (s *Session) OpenModalFromRow(ref aggregate.RowImageRef) error {
	return s.OpenModal(ref.Path, ref.Row)
}

// OpenModal opens the viewer on path within the open store's current image set
func (s *Session) OpenModal(path string, fallbackIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return wrap("open_modal", ErrNoStoreSelected)
	}
	s.modal.Open(s.detail.View.ImagePaths(), path, fallbackIndex)
	return nil
}

// AdvanceModal moves the viewer; it does nothing while the viewer is closed
func (s *Session) AdvanceModal(d gallery.Direction) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal.IsOpen() {
		return 0, false
	}
	s.modal.Advance(d)
	return s.modal.Cursor().Index()
}

// CloseModal hides the viewer and releases the background
func (s *Session) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
}

// ModalState describes the viewer for rendering
type ModalState struct {
	Open     bool            `json:"open"`
	Current  string          `json:"current,omitempty"`
	Position int             `json:"position"`
	Total    int             `json:"total"`
	Slides   []gallery.Slide `json:"slides,omitempty"`
}

// Modal returns the viewer state
func (s *Session) Modal() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal.IsOpen() {
		return ModalState{}
	}
	cur := s.modal.Cursor()
	path, _ := cur.Current()
	pos, total := cur.Counter()
	return ModalState{Open: true, Current: path, Position: pos, Total: total, Slides: cur.Slides()}
}
