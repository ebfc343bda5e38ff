package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shelf-price-monitor/internal/aggregate"
	"github.com/ridwanfathin/shelf-price-monitor/internal/catalog"
	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/gallery"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type fakeAPI struct {
	stores        []domain.Store
	storeItems    map[int64][]domain.ExtractedItem
	storeErr      map[int64]error
	pending       []domain.ExtractedItem
	extract       func(in priceapi.ExtractRequest) (*domain.ExtractResult, error)
	page          *domain.ProductPage
	storeFetches  map[int64]int
	productCalls  int
	manual        []domain.ManualProduct
	listStoreCall int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		stores: []domain.Store{
			{ID: 1, StoreName: "Corner", Branch: "North", Channel: "retail"},
			{ID: 2, StoreName: "Harbor", Branch: "South", Channel: "retail"},
		},
		storeItems: map[int64][]domain.ExtractedItem{
			2: {
				{ID: 10, ProductName: "A", ExtractedAt: domain.Timestamp{Time: t0.Add(2 * time.Hour)}, ImagePath: "p"},
				{ID: 11, ProductName: "B", ExtractedAt: domain.Timestamp{Time: t0.Add(5 * time.Hour)}, ImagePath: "p"},
				{ID: 12, ProductName: "C", ExtractedAt: domain.Timestamp{Time: t0.Add(3 * time.Hour)}, ImagePath: "q"},
			},
		},
		storeErr:     map[int64]error{},
		storeFetches: map[int64]int{},
	}
}

func (f *fakeAPI) Extract(_ context.Context, in priceapi.ExtractRequest) (*domain.ExtractResult, error) {
	if f.extract != nil {
		return f.extract(in)
	}
	return &domain.ExtractResult{Success: true, Count: 1}, nil
}

func (f *fakeAPI) ListPendingReview(context.Context, int) ([]domain.ExtractedItem, error) {
	return f.pending, nil
}

func (f *fakeAPI) ReviewItem(_ context.Context, id int64, edit domain.ReviewEdit) (*domain.ExtractedItem, error) {
	return &domain.ExtractedItem{ID: id, ProductName: edit.ProductName, Price: edit.Price, Status: domain.StatusApproved,
		Store: &domain.StoreRef{ID: 2, StoreName: "Harbor"}}, nil
}

func (f *fakeAPI) ListStores(context.Context) ([]domain.Store, error) {
	f.listStoreCall++
	return f.stores, nil
}

func (f *fakeAPI) CreateStore(_ context.Context, in domain.NewStore) (*domain.Store, error) {
	s := domain.Store{ID: int64(len(f.stores) + 1), StoreName: in.StoreName}
	f.stores = append(f.stores, s)
	return &s, nil
}

func (f *fakeAPI) ListStoreProducts(_ context.Context, id int64) ([]domain.ExtractedItem, error) {
	f.storeFetches[id]++
	if err := f.storeErr[id]; err != nil {
		return nil, err
	}
	return f.storeItems[id], nil
}

func (f *fakeAPI) ListProducts(_ context.Context, page, pageSize int, _ domain.ProductFilter) (*domain.ProductPage, error) {
	f.productCalls++
	if f.page != nil {
		return f.page, nil
	}
	return &domain.ProductPage{Items: []domain.ExtractedItem{}, Page: page, PageSize: pageSize, TotalPages: 10, Total: 200}, nil
}

func (f *fakeAPI) AddManualProduct(_ context.Context, p domain.ManualProduct) (*domain.ExtractedItem, error) {
	f.manual = append(f.manual, p)
	return &domain.ExtractedItem{ID: 99, ProductName: p.ProductName, Price: p.Price}, nil
}

func (f *fakeAPI) DashboardStats(context.Context) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{TotalProducts: 3, TotalStores: 2, PendingReviews: 1}, nil
}

func newSession(api *fakeAPI) *Session {
	return New(api, DefaultConfig(), Options{})
}

func TestRestoreDeepLinkOpensStore(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)

	view, err := s.RestoreDeepLink(context.Background(), "?store=2")
	require.NoError(t, err)
	assert.Equal(t, ViewStoreDetail, view)
	assert.Equal(t, 1, api.listStoreCall)
	assert.Equal(t, "store=2", s.DeepLinkQuery())

	detail, ok := s.Detail()
	require.True(t, ok)
	assert.Equal(t, "Harbor", detail.Store.StoreName)
	assert.Equal(t, []string{"p", "q"}, detail.View.ImagePaths())
	assert.Len(t, detail.View.Table, 3)
}

func TestNavigateFallsBackToList(t *testing.T) {
	s := newSession(newFakeAPI())

	view, err := s.Navigate(context.Background(), "store=2")
	require.NoError(t, err)
	assert.Equal(t, ViewStoreDetail, view)

	view, err = s.Navigate(context.Background(), "store=404")
	require.NoError(t, err)
	assert.Equal(t, ViewStoreList, view)
	assert.Empty(t, s.DeepLinkQuery())

	view, err = s.Navigate(context.Background(), "store=abc")
	require.NoError(t, err)
	assert.Equal(t, ViewStoreList, view)
}

func TestParseDeepLink(t *testing.T) {
	id, ok := ParseDeepLink("store=12")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	id, ok = ParseDeepLink("?tab=x&store=7")
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	for _, q := range []string{"", "store=", "store=-1", "store=x", "other=1"} {
		_, ok = ParseDeepLink(q)
		assert.False(t, ok, q)
	}
}

func TestSelectStoreShapeMismatchIsErrorState(t *testing.T) {
	api := newFakeAPI()
	api.storeErr[1] = &priceapi.RequestError{Op: "list_store_products", Err: priceapi.ErrShapeMismatch}
	s := newSession(api)

	detail, err := s.SelectStore(context.Background(), 1)
	require.NoError(t, err)
	require.Error(t, detail.Err)
	assert.True(t, errors.Is(detail.Err, priceapi.ErrShapeMismatch))
	assert.True(t, detail.View.Empty())
	assert.Equal(t, ViewStoreDetail, s.View())

	_, ok := s.AdvanceSlide(gallery.Forward)
	assert.False(t, ok)
}

func TestSelectUnknownStore(t *testing.T) {
	s := newSession(newFakeAPI())
	_, err := s.SelectStore(context.Background(), 77)

	var sErr *Error
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "select_store", sErr.Op)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInlineAndModalCursorsAreIndependent(t *testing.T) {
	s := newSession(newFakeAPI())
	_, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)

	i, ok := s.AdvanceSlide(gallery.Forward)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	require.NoError(t, s.OpenModal("p", 0))
	assert.True(t, s.ScrollLocked())

	i, ok = s.AdvanceModal(gallery.Backward)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	detail, _ := s.Detail()
	inline, _ := detail.Inline.Index()
	assert.Equal(t, 1, inline)

	m := s.Modal()
	assert.True(t, m.Open)
	assert.Equal(t, "q", m.Current)
	assert.Equal(t, 2, m.Position)
	assert.Equal(t, 2, m.Total)

	s.CloseModal()
	assert.False(t, s.ScrollLocked())
	_, ok = s.AdvanceModal(gallery.Forward)
	assert.False(t, ok)
}

func TestSelectStoreReturnsDetachedDetail(t *testing.T) {
	s := newSession(newFakeAPI())
	detail, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.AdvanceSlide(gallery.Forward)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = detail.Inline.Slides()
			_, _ = detail.Inline.Counter()
		}
	}()
	wg.Wait()

	pos, total := detail.Inline.Counter()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, total)

	live, ok := s.InlineSlide()
	require.True(t, ok)
	assert.Equal(t, 0, live.Index)
}

func TestOpenModalFromRowUsesRowAsFallback(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)
	detail, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)

	ref, ok := detail.View.Rows()[1].ImageRef()
	require.True(t, ok)
	require.NoError(t, s.OpenModalFromRow(ref))
	assert.Equal(t, "q", s.Modal().Current)

	require.NoError(t, s.OpenModalFromRow(aggregate.RowImageRef{Path: "gone", Row: 1}))
	assert.Equal(t, "q", s.Modal().Current)

	require.NoError(t, s.OpenModalFromRow(aggregate.RowImageRef{Path: "gone", Row: 2}))
	assert.Equal(t, "p", s.Modal().Current)
}

func TestBackToListClosesModal(t *testing.T) {
	s := newSession(newFakeAPI())
	_, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)
	require.NoError(t, s.OpenModal("q", 0))

	s.BackToList()
	assert.Equal(t, ViewStoreList, s.View())
	assert.False(t, s.Modal().Open)
	assert.False(t, s.ScrollLocked())
	assert.Error(t, s.OpenModal("q", 0))
}

func TestSubmitBatchRefreshesMatchingStore(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)
	_, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 1, api.storeFetches[2])

	_, err = s.AddFiles(upload.FromBytes("a.jpg", []byte("a"), "image/jpeg"))
	require.NoError(t, err)
	assert.True(t, s.SubmitEnabled())

	storeID := int64(2)
	out, err := s.SubmitBatch(context.Background(), upload.BatchContext{StoreID: &storeID})
	require.NoError(t, err)
	assert.Equal(t, 1, out.SuccessTotal)
	assert.Equal(t, 2, api.storeFetches[2])
	assert.False(t, s.SubmitEnabled())

	last, ok := s.LastBatch()
	require.True(t, ok)
	assert.Equal(t, out.BatchID, last.BatchID)
}

func TestSubmitBatchSkipsRefreshWithoutExtractions(t *testing.T) {
	api := newFakeAPI()
	api.extract = func(priceapi.ExtractRequest) (*domain.ExtractResult, error) {
		return &domain.ExtractResult{Success: false, Message: "blurry"}, nil
	}
	s := newSession(api)
	_, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)

	_, err = s.AddFiles(upload.FromBytes("a.jpg", []byte("a"), "image/jpeg"))
	require.NoError(t, err)
	out, err := s.SubmitBatch(context.Background(), upload.BatchContext{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Failed)
	assert.Equal(t, 1, api.storeFetches[2])
}

func TestSubmitBatchOtherStoreDoesNotRefresh(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)
	_, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)

	_, err = s.AddFiles(upload.FromBytes("a.jpg", []byte("a"), "image/jpeg"))
	require.NoError(t, err)
	other := int64(1)
	_, err = s.SubmitBatch(context.Background(), upload.BatchContext{StoreID: &other})
	require.NoError(t, err)
	assert.Equal(t, 1, api.storeFetches[2])
}

func TestSubmitBatchRefreshesProductList(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)
	_, err := s.LoadProducts(context.Background(), 1, domain.ProductFilter{})
	require.NoError(t, err)

	_, err = s.AddFiles(upload.FromBytes("a.jpg", []byte("a"), "image/jpeg"))
	require.NoError(t, err)
	_, err = s.SubmitBatch(context.Background(), upload.BatchContext{StoreName: "New Mart"})
	require.NoError(t, err)
	assert.Equal(t, 2, api.productCalls)
	assert.Equal(t, 1, api.listStoreCall)
}

func TestAddFilesOverflow(t *testing.T) {
	s := newSession(newFakeAPI())
	var files []upload.File
	for i := 0; i < 11; i++ {
		files = append(files, upload.FromBytes("x.jpg", []byte("x"), "image/jpeg"))
	}
	_, err := s.AddFiles(files...)
	assert.ErrorIs(t, err, upload.ErrSelectionFull)
	assert.Zero(t, s.State().Selected)
}

func TestApproveRefreshesOpenStore(t *testing.T) {
	api := newFakeAPI()
	api.pending = []domain.ExtractedItem{{ID: 10, ProductName: "A", Status: domain.StatusNeedsReview}}
	s := newSession(api)

	_, err := s.SelectStore(context.Background(), 2)
	require.NoError(t, err)
	_, err = s.ListPending(context.Background())
	require.NoError(t, err)

	item, err := s.Approve(context.Background(), 10, "A+", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, item.Status)
	assert.Equal(t, 2, api.storeFetches[2])
	assert.Empty(t, s.Review().Pending())
}

func TestLoadProductsBuildsWindow(t *testing.T) {
	api := newFakeAPI()
	api.page = &domain.ProductPage{Items: []domain.ExtractedItem{}, Page: 5, PageSize: 20, TotalPages: 10}
	s := newSession(api)

	list, err := s.LoadProducts(context.Background(), 5, domain.ProductFilter{ProductName: "milk"})
	require.NoError(t, err)
	assert.Equal(t, ViewProducts, s.View())

	var ellipses int
	for _, m := range list.Markers {
		if m.Ellipsis {
			ellipses++
		}
	}
	assert.Equal(t, 2, ellipses)
	assert.Len(t, list.Markers, 9)
}

func TestAddManualProduct(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)

	_, err := s.AddManualProduct(context.Background(), "Bread", decimal.NewFromInt(1200), nil)
	assert.ErrorIs(t, err, ErrNoStoreSelected)

	_, err = s.SelectStore(context.Background(), 2)
	require.NoError(t, err)

	_, err = s.AddManualProduct(context.Background(), "", decimal.NewFromInt(1200), nil)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, api.manual)

	item, err := s.AddManualProduct(context.Background(), "Bread", decimal.NewFromInt(1200), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99), item.ID)
	require.Len(t, api.manual, 1)
	assert.Equal(t, int64(2), api.manual[0].StoreID)
	assert.Equal(t, 2, api.storeFetches[2])
}

func TestCreateAndFilterStores(t *testing.T) {
	api := newFakeAPI()
	s := newSession(api)

	stores, err := s.FilterStores(context.Background(), catalog.Filter{Branch: "South"})
	require.NoError(t, err)
	require.Len(t, stores, 1)

	created, err := s.CreateStore(context.Background(), domain.NewStore{StoreName: "Depot"})
	require.NoError(t, err)
	_, ok := s.Catalog().Get(created.ID)
	assert.True(t, ok)
	assert.Equal(t, 2, api.listStoreCall)
}

func TestDashboardAndState(t *testing.T) {
	s := newSession(newFakeAPI())
	stats, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PendingReviews)

	st := s.State()
	assert.Equal(t, ViewDashboard, st.View)
	assert.False(t, st.SubmitEnabled)
	assert.False(t, st.ModalOpen)
}
