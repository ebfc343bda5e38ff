package priceapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
)

// parseExtractResponse decodes the extraction envelope. Older backends name
// the item list "products", newer ones "extractedProducts".
func parseExtractResponse(respBody []byte) (*domain.ExtractResult, error) {
	var envelope struct {
		Success            bool                   `json:"success"`
		Count              int                    `json:"count"`
		PendingReviewCount int                    `json:"pendingReviewCount"`
		ExtractedProducts  []domain.ExtractedItem `json:"extractedProducts"`
		Products           []domain.ExtractedItem `json:"products"`
		Message            string                 `json:"message"`
		Error              string                 `json:"error"`
	}

	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extract response: %w", err)
	}

	products := envelope.ExtractedProducts
	if len(products) == 0 {
		products = envelope.Products
	}

	message := envelope.Message
	if message == "" {
		message = envelope.Error
	}

	count := envelope.Count
	if count == 0 && len(products) > 0 {
		count = len(products)
	}

	return &domain.ExtractResult{
		Success:            envelope.Success,
		Count:              count,
		PendingReviewCount: envelope.PendingReviewCount,
		Products:           products,
		Message:            message,
	}, nil
}

// parseItemList decodes a bare array of items. Anything other than an array
// is reported as ErrShapeMismatch.
func parseItemList(respBody []byte) ([]domain.ExtractedItem, error) {
	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrShapeMismatch
	}

	var items []domain.ExtractedItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item list: %w", err)
	}
	if items == nil {
		items = []domain.ExtractedItem{}
	}
	return items, nil
}

// parseStoreList decodes the store list, rejecting non-array payloads
func parseStoreList(respBody []byte) ([]domain.Store, error) {
	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrShapeMismatch
	}

	var stores []domain.Store
	if err := json.Unmarshal(trimmed, &stores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store list: %w", err)
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	return stores, nil
}
