package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusApprove(t *testing.T) {
	tests := []struct {
		from    Status
		wantErr bool
	}{
		{StatusPendingReview, false},
		{StatusNeedsReview, false},
		{StatusAutoApproved, true},
		{StatusApproved, true},
		{StatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			got, err := tt.from.Approve()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTransition))
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusApproved, got)
		})
	}
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "approved", StatusAutoApproved.Badge())
	assert.Equal(t, "approved", StatusApproved.Badge())
	assert.Equal(t, "pending", StatusPendingReview.Badge())
	assert.Equal(t, "review", StatusNeedsReview.Badge())
}

func TestExtractedItemDecodesBackendPayload(t *testing.T) {
	payload := `{
		"id": 42,
		"productName": "Oat Milk 1L",
		"price": 3200.00,
		"imagePath": "uploads/product_20240501_101500_tag.jpg",
		"extractedAt": "2024-05-01T10:15:00.123",
		"status": "NEEDS_REVIEW",
		"confidenceScore": 0.62,
		"metadata": "{\"store_name\":\"Corner Mart\",\"location\":\"Aisle 3\"}",
		"store": {"id": 7, "storeName": "Corner Mart"}
	}`

	var item ExtractedItem
	require.NoError(t, json.Unmarshal([]byte(payload), &item))

	assert.Equal(t, int64(42), item.ID)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(3200)))
	assert.Equal(t, 2024, item.ExtractedAt.Year())
	assert.Equal(t, time.May, item.ExtractedAt.Month())
	assert.Equal(t, "Aisle 3", item.Location())
	assert.Equal(t, "Corner Mart", item.StoreDisplayName())
	assert.Equal(t, "product_20240501_101500_tag.jpg", item.ImageFileName())

	pct, ok := item.ConfidencePercent()
	require.True(t, ok)
	assert.InDelta(t, 62.0, pct, 0.0001)
}

func TestMetadataAcceptsObjectAndNull(t *testing.T) {
	var withObject struct {
		Metadata Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"metadata":{"store_name":"Kiosk","pages":2}}`), &withObject))
	assert.Equal(t, "Kiosk", withObject.Metadata["store_name"])
	assert.Equal(t, "2", withObject.Metadata["pages"])

	var withNull struct {
		Metadata Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"metadata":null}`), &withNull))
	assert.Nil(t, withNull.Metadata)
}

func TestStoreDisplayNameFallsBackToMetadata(t *testing.T) {
	item := ExtractedItem{Metadata: Metadata{"store_name": "Night Market"}}
	assert.Equal(t, "Night Market", item.StoreDisplayName())
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{
		"2024-05-01T10:15:00Z",
		"2024-05-01T10:15:00+09:00",
		"2024-05-01T10:15:00",
		"2024-05-01T10:15",
		"2024-05-01",
	} {
		_, err := ParseTimestamp(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestReviewEditValidate(t *testing.T) {
	ok := ReviewEdit{ProductName: "Tofu", Price: decimal.NewFromInt(1500), Action: ActionApprove}
	assert.NoError(t, ok.Validate())

	var verr *ValidationError
	err := ReviewEdit{Price: decimal.NewFromInt(1)}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "productName")

	err = ReviewEdit{ProductName: "Tofu", Price: decimal.NewFromInt(-1)}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "", ImageURL(""))
	assert.Equal(t, "https://cdn.example.com/a.jpg", ImageURL("https://cdn.example.com/a.jpg"))
	assert.Equal(t, "/uploads/a.jpg", ImageURL("uploads/a.jpg"))
	assert.Equal(t, "/uploads/a.jpg", ImageURL("a.jpg"))
}

func TestStoreLabels(t *testing.T) {
	s := Store{StoreName: "Corner Mart", Branch: "Seoul", Channel: "Retail"}
	assert.Equal(t, "Corner Mart [Seoul] (Retail)", s.ListLabel())
	assert.Equal(t, "Corner Mart (Retail)", s.OptionLabel())
	assert.Equal(t, "Corner Mart", Store{StoreName: "Corner Mart"}.OptionLabel())
}

func TestNewStoreValidate(t *testing.T) {
	assert.NoError(t, NewStore{StoreName: "Corner Mart"}.Validate())

	var verr *ValidationError
	require.ErrorAs(t, NewStore{StoreName: "   "}.Validate(), &verr)
	assert.Equal(t, "is required", verr.Fields["storeName"])
}
