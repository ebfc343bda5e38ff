package priceapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
)

// ListStores returns every registered store
func (c *Client) ListStores(ctx context.Context) ([]domain.Store, error) {
	const op = "list_stores"

	body, status, err := c.getRaw(ctx, op, "/api/stores", nil)
	if err != nil {
		return nil, err
	}

	stores, err := parseStoreList(body)
	if err != nil {
		return nil, &RequestError{Op: op, StatusCode: status, Err: err}
	}
	return stores, nil
}

// CreateStore registers a new store
func (c *Client) CreateStore(ctx context.Context, in domain.NewStore) (*domain.Store, error) {
	in.StoreName = strings.TrimSpace(in.StoreName)
	in.Channel = strings.TrimSpace(in.Channel)
	in.Branch = strings.TrimSpace(in.Branch)
	in.Manager = strings.TrimSpace(in.Manager)

	var out domain.Store
	if err := c.doJSON(ctx, "create_store", http.MethodPost, "/api/stores", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthStatus is the backend's health answer
type HealthStatus struct {
	Status string `json:"status"`
}

// Health checks that the backend is reachable
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.doJSON(ctx, "health", http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Status == "" {
		out.Status = "ok"
	}
	return &out, nil
}
