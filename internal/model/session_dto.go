package model

import (
	"github.com/ridwanfathin/shelf-price-monitor/internal/gallery"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// NavigateRequest carries a history query such as "store=12"
type NavigateRequest struct {
	Query string `json:"query"`
}

// NavigateResponse reports the view after a navigation
type NavigateResponse struct {
	View     string `json:"view"`
	DeepLink string `json:"deepLink"`
}

// AdvanceRequest moves a slideshow or the viewer
type AdvanceRequest struct {
	// Direction is "next" or "prev"
	Direction string `json:"direction" binding:"required,oneof=next prev"`
}

// GalleryDirection maps the request onto a cursor direction
func (r AdvanceRequest) GalleryDirection() gallery.Direction {
	if r.Direction == "prev" {
		return gallery.Backward
	}
	return gallery.Forward
}

// ModalOpenRequest opens the viewer on an image of the open store. Row is the
// table row used only when the path is not in the image set.
type ModalOpenRequest struct {
	Path string `json:"path"`
	Row  int    `json:"row"`
}

// SelectedFileResponse is one photo of the upload selection
type SelectedFileResponse struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	MediaType string `json:"mediaType"`
	Size      int64  `json:"size"`
}

// SelectionResponse represents the upload selection
type SelectionResponse struct {
	Files         []SelectedFileResponse `json:"files"`
	MaxFiles      int                    `json:"maxFiles"`
	MaxFileBytes  int64                  `json:"maxFileBytes"`
	Accepted      int                    `json:"accepted"`
	Rejected      []string               `json:"rejected,omitempty"`
	SubmitEnabled bool                   `json:"submitEnabled"`
	Running       bool                   `json:"running"`
	Progress      float64                `json:"progress"`
}

// NewSelectionResponse renders the selection held by o
func NewSelectionResponse(o *upload.Orchestrator) SelectionResponse {
	sel := o.Selection()
	files := sel.Files()
	limits := sel.Limits()

	resp := SelectionResponse{
		Files:         make([]SelectedFileResponse, len(files)),
		MaxFiles:      limits.MaxFiles,
		MaxFileBytes:  limits.MaxFileBytes,
		SubmitEnabled: o.SubmitEnabled(),
		Running:       o.Running(),
		Progress:      o.Progress(),
	}
	for i, f := range files {
		resp.Files[i] = SelectedFileResponse{Index: i, Name: f.Name, MediaType: f.MediaType, Size: f.Size}
	}
	return resp
}

// SubmitBatchRequest names the store every photo of the batch belongs to.
// StoreID wins over StoreName.
type SubmitBatchRequest struct {
	StoreID   *int64 `json:"storeId"`
	StoreName string `json:"storeName"`
	Location  string `json:"location"`
}

// ToBatchContext converts the request
func (r SubmitBatchRequest) ToBatchContext() upload.BatchContext {
	return upload.BatchContext{StoreID: r.StoreID, StoreName: r.StoreName, Location: r.Location}
}
