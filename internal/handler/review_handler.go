package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// ReviewHandler handles the review queue
type ReviewHandler struct {
	session *session.Session
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(s *session.Session) *ReviewHandler {
	return &ReviewHandler{session: s}
}

// ListPending handles the GET /api/review endpoint
// @Summary Pending review queue
// @Description Items awaiting review, first page only
// @Tags review
// @Produce json
// @Success 200 {array} model.ItemResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/review [get]
func (h *ReviewHandler) ListPending(c *gin.Context) {
	items, err := h.session.ListPending(c.Request.Context())
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewItemResponses(items))
}

// Approve handles the POST /api/review/:id/approve endpoint
// @Summary Approve an item
// @Description Confirm a pending item with the reviewer's final name and price. The item leaves the queue and the views listing it are refreshed.
// @Tags review
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body model.ApproveRequest true "Final values"
// @Success 200 {object} model.ItemResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Item not in the queue"
// @Failure 409 {object} model.ErrorResponse "Item cannot be approved"
// @Failure 422 {object} model.ErrorResponse "Validation failed"
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/review/{id}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := getPathID(c, "id")
	if err != nil {
		respondBadRequest(c, ErrInvalidID, newErrorDetail("id", err.Error()))
		return
	}

	var req model.ApproveRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("price", err.Error()))
		return
	}

	item, err := h.session.Approve(c.Request.Context(), id, req.ProductName, price)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewItemResponse(*item))
}
