package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the review state of an extracted item
type Status string

const (
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusNeedsReview   Status = "NEEDS_REVIEW"
	StatusAutoApproved  Status = "AUTO_APPROVED"
	StatusApproved      Status = "APPROVED"
	// StatusRejected is only ever read from the backend.
	StatusRejected Status = "REJECTED"
)

// ReviewAction is the action sent with a review edit
type ReviewAction string

const ActionApprove ReviewAction = "APPROVE"

// AwaitingReview reports whether a human still has to confirm the item
func (s Status) AwaitingReview() bool {
	return s == StatusPendingReview || s == StatusNeedsReview
}

// CanApprove reports whether the approve action may move s to APPROVED.
// AUTO_APPROVED is never a client-side target.
func (s Status) CanApprove() bool {
	return s.AwaitingReview()
}

// Approve returns the status after an approve action
func (s Status) Approve() (Status, error) {
	if !s.CanApprove() {
		return s, fmt.Errorf("%w: cannot approve item in status %s", ErrInvalidTransition, s)
	}
	return StatusApproved, nil
}

// Badge groups statuses the way the product list shows them
func (s Status) Badge() string {
	switch s {
	case StatusAutoApproved, StatusApproved:
		return "approved"
	case StatusPendingReview:
		return "pending"
	default:
		return "review"
	}
}

// Label is the human readable status text
func (s Status) Label() string {
	switch s {
	case StatusAutoApproved:
		return "auto-approved"
	case StatusApproved:
		return "approved"
	case StatusPendingReview:
		return "pending review"
	default:
		return "needs review"
	}
}

// localDateTimeLayouts are the zone-less layouts the backend emits for timestamps
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp accepts RFC 3339 as well as zone-less ISO local date-times
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements custom unmarshaling for backend timestamps
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements custom marshaling for backend timestamps
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// ParseTimestamp parses an RFC 3339 or local ISO date-time string
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// Metadata is the opaque key/value bag attached to an item.
// The backend sends it either as an object or as a JSON encoded string.
type Metadata map[string]string

// UnmarshalJSON implements custom unmarshaling for string encoded metadata
func (m *Metadata) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*m = nil
		return nil
	}

	raw := b
	var encoded string
	if err := json.Unmarshal(b, &encoded); err == nil {
		if strings.TrimSpace(encoded) == "" {
			*m = nil
			return nil
		}
		raw = []byte(encoded)
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("invalid metadata: %w", err)
	}

	out := make(Metadata, len(values))
	for k, v := range values {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	*m = out
	return nil
}

// StoreRef is the weak reference an item holds to its store
type StoreRef struct {
	ID        int64  `json:"id"`
	StoreName string `json:"storeName"`
}

// ExtractedItem is a candidate product/price record produced by extraction
type ExtractedItem struct {
	ID              int64           `json:"id"`
	ProductName     string          `json:"productName"`
	Price           decimal.Decimal `json:"price"`
	ExtractedAt     Timestamp       `json:"extractedAt"`
	ImagePath       string          `json:"imagePath,omitempty"`
	Status          Status          `json:"status"`
	ConfidenceScore *float64        `json:"confidenceScore,omitempty"`
	Store           *StoreRef       `json:"store,omitempty"`
	Metadata        Metadata        `json:"metadata,omitempty"`
}

// HasImage reports whether the item references a photograph
func (i ExtractedItem) HasImage() bool {
	return i.ImagePath != ""
}

// StoreDisplayName prefers the store reference and falls back to free-text metadata
func (i ExtractedItem) StoreDisplayName() string {
	if i.Store != nil && i.Store.StoreName != "" {
		return i.Store.StoreName
	}
	return i.Metadata["store_name"]
}

// Location returns the free-text location recorded at upload time
func (i ExtractedItem) Location() string {
	return i.Metadata["location"]
}

// ImageFileName is the last path segment of the image path
func (i ExtractedItem) ImageFileName() string {
	if i.ImagePath == "" {
		return ""
	}
	return path.Base(i.ImagePath)
}

// ConfidencePercent returns the confidence as a percentage, if known
func (i ExtractedItem) ConfidencePercent() (float64, bool) {
	if i.ConfidenceScore == nil {
		return 0, false
	}
	return *i.ConfidenceScore * 100, true
}

// ExtractResult is the backend's answer for one uploaded photo
type ExtractResult struct {
	Success            bool            `json:"success"`
	Count              int             `json:"count"`
	PendingReviewCount int             `json:"pendingReviewCount"`
	Products           []ExtractedItem `json:"products,omitempty"`
	Message            string          `json:"message,omitempty"`
}

// ProductFilter narrows the paginated product listing
type ProductFilter struct {
	ProductName string
	StoreName   string
	StoreID     *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// ProductPage is one page of the product listing
type ProductPage struct {
	Items      []ExtractedItem `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// DashboardStats summarises the backend's data set
type DashboardStats struct {
	TotalProducts  int64 `json:"total_products"`
	TotalStores    int64 `json:"total_stores"`
	PendingReviews int64 `json:"pending_reviews"`
}

// ReviewEdit carries the edited fields sent with an approve action
type ReviewEdit struct {
	ProductName string          `json:"productName" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	Action      ReviewAction    `json:"action"`
}

// Validate checks the edit before it is sent
func (e ReviewEdit) Validate() error {
	if err := validateStruct(e); err != nil {
		return err
	}
	if e.Price.IsNegative() {
		return &ValidationError{Fields: map[string]string{"price": "must not be negative"}}
	}
	return nil
}

// ManualProduct is a product entered by hand for a store
type ManualProduct struct {
	StoreID     int64           `validate:"required,gt=0"`
	ProductName string          `validate:"required,max=200"`
	Price       decimal.Decimal
	ExtractedAt *time.Time
}

// Validate checks the manual entry before it is sent
func (p ManualProduct) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return &ValidationError{Fields: map[string]string{"price": "must not be negative"}}
	}
	return nil
}
