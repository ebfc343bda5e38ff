package model

import (
	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/gallery"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// StoreResponse represents a single store with its display label
type StoreResponse struct {
	ID        int64  `json:"id"`
	StoreName string `json:"storeName"`
	Branch    string `json:"branch,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Manager   string `json:"manager,omitempty"`
	Label     string `json:"label"`
}

// FromDomain fills the response from a domain store
func (r *StoreResponse) FromDomain(s domain.Store) {
	r.ID = s.ID
	r.StoreName = s.StoreName
	r.Branch = s.Branch
	r.Channel = s.Channel
	r.Manager = s.Manager
	r.Label = s.ListLabel()
}

// NewStoreResponses converts a store list
func NewStoreResponses(stores []domain.Store) []StoreResponse {
	out := make([]StoreResponse, len(stores))
	for i, s := range stores {
		out[i].FromDomain(s)
	}
	return out
}

// CreateStoreRequest is the body of POST /api/stores
type CreateStoreRequest struct {
	StoreName string `json:"storeName" binding:"required"`
	Channel   string `json:"channel"`
	Branch    string `json:"branch"`
	Manager   string `json:"manager"`
}

// ToDomain converts the request
func (r CreateStoreRequest) ToDomain() domain.NewStore {
	return domain.NewStore{
		StoreName: r.StoreName,
		Channel:   r.Channel,
		Branch:    r.Branch,
		Manager:   r.Manager,
	}
}

// StoreRowResponse is one line of the store detail table
type StoreRowResponse struct {
	Index int          `json:"index"`
	Item  ItemResponse `json:"item"`
	// ImageRef is what the client posts back to open the viewer on this row
	ImageRef *ModalOpenRequest `json:"imageRef,omitempty"`
}

// StoreDetailResponse represents the per-store view
type StoreDetailResponse struct {
	Store    StoreResponse      `json:"store"`
	Empty    bool               `json:"empty"`
	Rows     []StoreRowResponse `json:"rows"`
	Images   []ItemResponse     `json:"images"`
	Slides   []gallery.Slide    `json:"slides"`
	Position int                `json:"position"`
	Total    int                `json:"total"`
	DeepLink string             `json:"deepLink"`
	Error    string             `json:"error,omitempty"`
}

// NewStoreDetailResponse renders a store detail
func NewStoreDetailResponse(d *session.StoreDetail) StoreDetailResponse {
	var resp StoreDetailResponse
	resp.Store.FromDomain(d.Store)
	resp.DeepLink = session.DeepLinkParam + "=" + itoa(d.Store.ID)

	if d.Err != nil {
		resp.Error = d.Err.Error()
		resp.Rows = []StoreRowResponse{}
		resp.Images = []ItemResponse{}
		resp.Slides = []gallery.Slide{}
		return resp
	}

	resp.Empty = d.View.Empty()
	rows := d.View.Rows()
	resp.Rows = make([]StoreRowResponse, len(rows))
	for i, row := range rows {
		resp.Rows[i] = StoreRowResponse{Index: row.Index, Item: NewItemResponse(row.Item)}
		if ref, ok := row.ImageRef(); ok {
			resp.Rows[i].ImageRef = &ModalOpenRequest{Path: ref.Path, Row: ref.Row}
		}
	}
	resp.Images = NewItemResponses(d.View.Images)

	resp.Slides = []gallery.Slide{}
	if d.Inline != nil {
		if slides := d.Inline.Slides(); slides != nil {
			resp.Slides = slides
		}
		resp.Position, resp.Total = d.Inline.Counter()
	}
	return resp
}

// UploadTargetResponse is one entry of the upload store selector
type UploadTargetResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// StoreFacetsResponse lists the filter values present in the store cache
type StoreFacetsResponse struct {
	Branches []string `json:"branches"`
	Channels []string `json:"channels"`
}
