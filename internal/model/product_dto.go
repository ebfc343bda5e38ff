package model

import (
	"strconv"
	"time"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/pagination"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// ItemResponse represents a single extracted product as the console shows it
type ItemResponse struct {
	ID                int64    `json:"id"`
	ProductName       string   `json:"productName"`
	Price             string   `json:"price"`
	ExtractedAt       string   `json:"extractedAt,omitempty"`
	Status            string   `json:"status"`
	StatusLabel       string   `json:"statusLabel"`
	Badge             string   `json:"badge"`
	StoreID           int64    `json:"storeId,omitempty"`
	StoreName         string   `json:"storeName,omitempty"`
	Location          string   `json:"location,omitempty"`
	ImagePath         string   `json:"imagePath,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	ImageFileName     string   `json:"imageFileName,omitempty"`
	ConfidencePercent *float64 `json:"confidencePercent,omitempty"`
}

// NewItemResponse renders one extracted product
func NewItemResponse(item domain.ExtractedItem) ItemResponse {
	resp := ItemResponse{
		ID:            item.ID,
		ProductName:   item.ProductName,
		Price:         item.Price.StringFixed(2),
		Status:        string(item.Status),
		StatusLabel:   item.Status.Label(),
		Badge:         item.Status.Badge(),
		StoreName:     item.StoreDisplayName(),
		Location:      item.Location(),
		ImagePath:     item.ImagePath,
		ImageURL:      domain.ImageURL(item.ImagePath),
		ImageFileName: item.ImageFileName(),
	}
	if !item.ExtractedAt.IsZero() {
		resp.ExtractedAt = item.ExtractedAt.Format(time.RFC3339)
	}
	if item.Store != nil {
		resp.StoreID = item.Store.ID
	}
	if pct, ok := item.ConfidencePercent(); ok {
		resp.ConfidencePercent = &pct
	}
	return resp
}

// NewItemResponses converts a product list, never returning nil
func NewItemResponses(items []domain.ExtractedItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = NewItemResponse(item)
	}
	return out
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	TotalItems  int64               `json:"totalItems"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
	Limit       int                 `json:"limit"`
	Pages       []pagination.Marker `json:"pages"`
}

// ProductListResponse represents one page of the product listing
type ProductListResponse struct {
	Data       []ItemResponse     `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewProductListResponse renders a loaded product list
func NewProductListResponse(list *session.ProductList) ProductListResponse {
	resp := ProductListResponse{Data: []ItemResponse{}}
	resp.Pagination.Pages = []pagination.Marker{}
	if list == nil || list.Page == nil {
		return resp
	}

	resp.Data = NewItemResponses(list.Page.Items)
	resp.Pagination.TotalItems = list.Page.Total
	resp.Pagination.TotalPages = list.Page.TotalPages
	resp.Pagination.CurrentPage = list.Page.Page
	resp.Pagination.Limit = list.Page.PageSize
	if list.Markers != nil {
		resp.Pagination.Pages = list.Markers
	}
	return resp
}

// ApproveRequest carries the reviewer's final values
type ApproveRequest struct {
	ProductName string `json:"productName" binding:"required"`
	Price       string `json:"price" binding:"required"`
}

// ManualProductRequest is the body of a hand-entered price
type ManualProductRequest struct {
	ProductName string `json:"productName" binding:"required"`
	Price       string `json:"price" binding:"required"`
	// ExtractedAt is optional, RFC 3339 or YYYY-MM-DDTHH:MM[:SS]
	ExtractedAt string `json:"extractedAt"`
}

// DashboardResponse represents the summary counters
type DashboardResponse struct {
	TotalProducts  int64 `json:"totalProducts"`
	TotalStores    int64 `json:"totalStores"`
	PendingReviews int64 `json:"pendingReviews"`
}

// FromDomain fills the response from domain stats
func (r *DashboardResponse) FromDomain(s domain.DashboardStats) {
	r.TotalProducts = s.TotalProducts
	r.TotalStores = s.TotalStores
	r.PendingReviews = s.PendingReviews
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
