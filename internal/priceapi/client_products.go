package priceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
)

const (
	dayStartSuffix = "T00:00:00"
	dayEndSuffix   = "T23:59:59"
	dateLayout     = "2006-01-02"
	localLayout    = "2006-01-02T15:04:05"
)

// getRaw performs a GET and returns the body of a 2xx answer
func (c *Client) getRaw(ctx context.Context, op, path string, query url.Values) ([]byte, int, error) {
	req, err := c.newRequest(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, 0, err
	}
	status, body, err := c.send(op, req)
	if err != nil {
		return nil, status, err
	}
	if err := checkStatus(op, status, body); err != nil {
		return nil, status, err
	}
	return body, status, nil
}

// ListProducts returns one page of the product listing. Pages are 1-based.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int, filter domain.ProductFilter) (*domain.ProductPage, error) {
	query := pageQuery(page, pageSize)
	if v := strings.TrimSpace(filter.ProductName); v != "" {
		query.Set("product_name", v)
	}
	if v := strings.TrimSpace(filter.StoreName); v != "" {
		query.Set("store_name", v)
	}
	if filter.StoreID != nil {
		query.Set("store_id", strconv.FormatInt(*filter.StoreID, 10))
	}
	if filter.StartDate != nil {
		query.Set("start_date", filter.StartDate.Format(dateLayout)+dayStartSuffix)
	}
	if filter.EndDate != nil {
		query.Set("end_date", filter.EndDate.Format(dateLayout)+dayEndSuffix)
	}

	var out domain.ProductPage
	if err := c.doJSON(ctx, "list_products", http.MethodGet, "/api/products/list", query, nil, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []domain.ExtractedItem{}
	}
	return &out, nil
}

// ListPendingReview returns the first pageSize items awaiting review, in backend order
func (c *Client) ListPendingReview(ctx context.Context, pageSize int) ([]domain.ExtractedItem, error) {
	const op = "list_pending_review"

	body, status, err := c.getRaw(ctx, op, "/api/products/review", pageQuery(1, pageSize))
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		items, err := parseItemList(trimmed)
		if err != nil {
			return nil, &RequestError{Op: op, StatusCode: status, Err: err}
		}
		return items, nil
	}

	var page domain.ProductPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, &RequestError{
			Op:         op,
			StatusCode: status,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	if page.Items == nil {
		page.Items = []domain.ExtractedItem{}
	}
	return page.Items, nil
}

// ReviewItem sends an edit with its review action for one item
func (c *Client) ReviewItem(ctx context.Context, id int64, edit domain.ReviewEdit) (*domain.ExtractedItem, error) {
	var out domain.ExtractedItem
	path := "/api/products/" + strconv.FormatInt(id, 10) + "/review"
	if err := c.doJSON(ctx, "review_item", http.MethodPut, path, nil, edit, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStoreProducts returns every item recorded for a store
func (c *Client) ListStoreProducts(ctx context.Context, storeID int64) ([]domain.ExtractedItem, error) {
	const op = "list_store_products"

	body, status, err := c.getRaw(ctx, op, "/api/products/store/"+strconv.FormatInt(storeID, 10), nil)
	if err != nil {
		return nil, err
	}

	items, err := parseItemList(body)
	if err != nil {
		return nil, &RequestError{Op: op, StatusCode: status, Err: err}
	}
	return items, nil
}

// AddManualProduct records a product entered by hand
func (c *Client) AddManualProduct(ctx context.Context, p domain.ManualProduct) (*domain.ExtractedItem, error) {
	query := url.Values{}
	query.Set("store_id", strconv.FormatInt(p.StoreID, 10))
	query.Set("product_name", strings.TrimSpace(p.ProductName))
	query.Set("price", p.Price.String())
	if p.ExtractedAt != nil {
		query.Set("extracted_at", p.ExtractedAt.Format(localLayout))
	}

	var out domain.ExtractedItem
	if err := c.doJSON(ctx, "add_manual_product", http.MethodPost, "/api/products/manual", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats returns the backend's summary counters
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.doJSON(ctx, "dashboard_stats", http.MethodGet, "/api/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func pageQuery(page, pageSize int) url.Values {
	query := url.Values{}
	if page < 1 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	return query
}
