package review

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
)

type fakeAPI struct {
	pending   []domain.ExtractedItem
	pageSize  int
	edits     map[int64]domain.ReviewEdit
	reviewErr error
}

func (f *fakeAPI) ListPendingReview(_ context.Context, pageSize int) ([]domain.ExtractedItem, error) {
	f.pageSize = pageSize
	return f.pending, nil
}

func (f *fakeAPI) ReviewItem(_ context.Context, id int64, edit domain.ReviewEdit) (*domain.ExtractedItem, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	if f.edits == nil {
		f.edits = map[int64]domain.ReviewEdit{}
	}
	f.edits[id] = edit
	return &domain.ExtractedItem{ID: id, ProductName: edit.ProductName, Price: edit.Price, Status: domain.StatusApproved}, nil
}

func pendingSet() []domain.ExtractedItem {
	return []domain.ExtractedItem{
		{ID: 7, ProductName: "Mlk", Price: decimal.NewFromInt(2000), Status: domain.StatusNeedsReview},
		{ID: 3, ProductName: "Eggs", Price: decimal.NewFromInt(5000), Status: domain.StatusPendingReview},
		{ID: 5, ProductName: "Tea", Price: decimal.NewFromInt(900), Status: domain.StatusAutoApproved},
	}
}

func TestListPendingKeepsBackendOrder(t *testing.T) {
	api := &fakeAPI{pending: pendingSet()}
	wf := NewWorkflow(api, Options{})

	items, err := wf.ListPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, api.pageSize)
	require.Len(t, items, 3)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
}

func TestApproveReplacesValuesAndRemovesItem(t *testing.T) {
	api := &fakeAPI{pending: pendingSet()}
	var invalidated []int64
	wf := NewWorkflow(api, Options{OnApproved: func(_ context.Context, item domain.ExtractedItem) {
		invalidated = append(invalidated, item.ID)
	}})
	_, err := wf.ListPending(context.Background())
	require.NoError(t, err)

	item, err := wf.Approve(context.Background(), 7, " Milk 1L ", decimal.NewFromInt(2100))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, item.Status)

	edit := api.edits[7]
	assert.Equal(t, "Milk 1L", edit.ProductName)
	assert.True(t, decimal.NewFromInt(2100).Equal(edit.Price))
	assert.Equal(t, domain.ActionApprove, edit.Action)

	for _, p := range wf.Pending() {
		assert.NotEqual(t, int64(7), p.ID)
	}
	assert.Len(t, wf.Pending(), 2)
	assert.Equal(t, []int64{7}, invalidated)
}

func TestApproveFailureKeepsItemPending(t *testing.T) {
	api := &fakeAPI{
		pending:   pendingSet(),
		reviewErr: &priceapi.RequestError{Op: "review_item", StatusCode: 500, Err: errors.New("boom")},
	}
	called := false
	wf := NewWorkflow(api, Options{OnApproved: func(context.Context, domain.ExtractedItem) { called = true }})
	_, err := wf.ListPending(context.Background())
	require.NoError(t, err)

	_, err = wf.Approve(context.Background(), 3, "Eggs", decimal.NewFromInt(5000))
	var reqErr *priceapi.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Len(t, wf.Pending(), 3)
	assert.False(t, called)
}

func TestApproveRejectsAutoApprovedAndUnknown(t *testing.T) {
	api := &fakeAPI{pending: pendingSet()}
	wf := NewWorkflow(api, Options{})
	_, err := wf.ListPending(context.Background())
	require.NoError(t, err)

	_, err = wf.Approve(context.Background(), 5, "Tea", decimal.NewFromInt(900))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = wf.Approve(context.Background(), 99, "Ghost", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, api.edits)
}

func TestApproveValidatesEdit(t *testing.T) {
	api := &fakeAPI{pending: pendingSet()}
	wf := NewWorkflow(api, Options{})
	_, err := wf.ListPending(context.Background())
	require.NoError(t, err)

	_, err = wf.Approve(context.Background(), 7, "   ", decimal.NewFromInt(1))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "productName")

	_, err = wf.Approve(context.Background(), 7, "Milk", decimal.NewFromInt(-1))
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "price")
	assert.Len(t, wf.Pending(), 3)
}
