package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/catalog"
	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// StoreHandler handles HTTP requests for the store list and store detail views
type StoreHandler struct {
	session *session.Session
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(s *session.Session) *StoreHandler {
	return &StoreHandler{session: s}
}

// ListStores handles the GET /api/stores endpoint
// @Summary List stores
// @Description Return the cached store list, optionally narrowed by branch and channel
// @Tags stores
// @Produce json
// @Param branch query string false "Branch filter (exact)"
// @Param channel query string false "Channel filter (exact)"
// @Success 200 {array} model.StoreResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	filter := catalog.Filter{
		Branch:  getQueryString(c, "branch"),
		Channel: getQueryString(c, "channel"),
	}

	stores, err := h.session.FilterStores(c.Request.Context(), filter)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewStoreResponses(stores))
}

// ReloadStores handles the POST /api/stores/reload endpoint
// @Summary Reload stores
// @Description Re-fetch the store list from the backend and show the store list view
// @Tags stores
// @Produce json
// @Success 200 {array} model.StoreResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores/reload [post]
func (h *StoreHandler) ReloadStores(c *gin.Context) {
	stores, err := h.session.LoadStores(c.Request.Context())
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewStoreResponses(stores))
}

// CreateStore handles the POST /api/stores endpoint
// @Summary Create a store
// @Description Create a store on the backend; the store list is reloaded afterwards
// @Tags stores
// @Accept json
// @Produce json
// @Param request body model.CreateStoreRequest true "Store"
// @Success 201 {object} model.StoreResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Validation failed"
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores [post]
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req model.CreateStoreRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	created, err := h.session.CreateStore(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondSessionError(c, err)
		return
	}

	var resp model.StoreResponse
	resp.FromDomain(*created)
	respondCreated(c, resp)
}

// UploadTargets handles the GET /api/stores/targets endpoint
// @Summary Upload targets
// @Description Store options for the upload selector, labelled "name (channel)"
// @Tags stores
// @Produce json
// @Success 200 {array} model.UploadTargetResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores/targets [get]
func (h *StoreHandler) UploadTargets(c *gin.Context) {
	if _, err := h.session.FilterStores(c.Request.Context(), catalog.Filter{}); err != nil {
		respondSessionError(c, err)
		return
	}

	options := h.session.Catalog().UploadTargets()
	resp := make([]model.UploadTargetResponse, len(options))
	for i, o := range options {
		resp[i] = model.UploadTargetResponse{ID: o.ID, Label: o.Label}
	}
	respondOK(c, resp)
}

// Facets handles the GET /api/stores/facets endpoint
// @Summary Store filter values
// @Description Distinct branches and channels present in the store list
// @Tags stores
// @Produce json
// @Success 200 {object} model.StoreFacetsResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores/facets [get]
func (h *StoreHandler) Facets(c *gin.Context) {
	if _, err := h.session.FilterStores(c.Request.Context(), catalog.Filter{}); err != nil {
		respondSessionError(c, err)
		return
	}

	cat := h.session.Catalog()
	resp := model.StoreFacetsResponse{Branches: cat.Branches(), Channels: cat.Channels()}
	if resp.Branches == nil {
		resp.Branches = []string{}
	}
	if resp.Channels == nil {
		resp.Channels = []string{}
	}
	respondOK(c, resp)
}

// GetStore handles the GET /api/stores/:id endpoint
// @Summary Open a store
// @Description Select a store and return its detail view: products most recent first and the de-duplicated photo set
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} model.StoreDetailResponse
// @Failure 400 {object} model.ErrorResponse "Invalid ID"
// @Failure 404 {object} model.ErrorResponse "Store not found"
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores/{id} [get]
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondBadRequest(c, ErrInvalidID, newErrorDetail("id", err.Error()))
		return
	}

	detail, err := h.session.SelectStore(c.Request.Context(), id)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewStoreDetailResponse(detail))
}

// RefreshStore handles the POST /api/stores/current/refresh endpoint
// @Summary Refresh the open store
// @Description Re-fetch the open store's products and rebuild its table and photo set
// @Tags stores
// @Produce json
// @Success 200 {object} model.StoreDetailResponse
// @Failure 409 {object} model.ErrorResponse "No store selected"
// @Router /api/stores/current/refresh [post]
func (h *StoreHandler) RefreshStore(c *gin.Context) {
	detail, err := h.session.RefreshDetail(c.Request.Context())
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewStoreDetailResponse(detail))
}

// AddManualProduct handles the POST /api/stores/:id/products endpoint
// @Summary Add a price by hand
// @Description Record a hand-entered product price for a store; the open store view is re-fetched
// @Tags stores
// @Accept json
// @Produce json
// @Param id path int true "Store ID"
// @Param request body model.ManualProductRequest true "Product"
// @Success 201 {object} model.ItemResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Validation failed"
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/stores/{id}/products [post]
func (h *StoreHandler) AddManualProduct(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondBadRequest(c, ErrInvalidID, newErrorDetail("id", err.Error()))
		return
	}

	var req model.ManualProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("price", err.Error()))
		return
	}
	at, err := parseTimestamp(req.ExtractedAt)
	if err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("extractedAt", err.Error()))
		return
	}

	item, err := h.session.AddManualProductTo(c.Request.Context(), domain.ManualProduct{
		StoreID:     id,
		ProductName: req.ProductName,
		Price:       price,
		ExtractedAt: at,
	})
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondCreated(c, model.NewItemResponse(*item))
}
