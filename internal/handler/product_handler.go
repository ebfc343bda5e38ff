package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// ProductHandler handles the product listing and the dashboard
type ProductHandler struct {
	session *session.Session
}

// NewProductHandler creates a new product handler
func NewProductHandler(s *session.Session) *ProductHandler {
	return &ProductHandler{session: s}
}

// ListProducts handles the GET /api/products endpoint
// @Summary List products
// @Description One page of extracted products with the page-button window
// @Tags products
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param product_name query string false "Product name filter"
// @Param store_name query string false "Store name filter"
// @Param store_id query int false "Store ID filter"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} model.ProductListResponse
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, err := getQueryInt(c, "page", 1)
	if err != nil || page < 1 {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("page", "page must be greater than 0"))
		return
	}

	filter, details := productFilter(c)
	if len(details) > 0 {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetails(details)...)
		return
	}

	list, err := h.session.LoadProducts(c.Request.Context(), page, filter)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NewProductListResponse(list))
}

func productFilter(c *gin.Context) (domain.ProductFilter, map[string]string) {
	details := map[string]string{}
	filter := domain.ProductFilter{
		ProductName: getQueryString(c, "product_name"),
		StoreName:   getQueryString(c, "store_name"),
	}

	var err error
	if filter.StoreID, err = getQueryInt64(c, "store_id"); err != nil {
		details["store_id"] = err.Error()
	}
	if filter.StartDate, err = parseDate(getQueryString(c, "start_date")); err != nil {
		details["start_date"] = err.Error()
	}
	if filter.EndDate, err = parseDate(getQueryString(c, "end_date")); err != nil {
		details["end_date"] = err.Error()
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		details["end_date"] = "end date must not be before start date"
	}
	return filter, details
}

// Dashboard handles the GET /api/dashboard endpoint
// @Summary Dashboard counters
// @Tags products
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/dashboard [get]
func (h *ProductHandler) Dashboard(c *gin.Context) {
	stats, err := h.session.Dashboard(c.Request.Context())
	if err != nil {
		respondSessionError(c, err)
		return
	}

	var resp model.DashboardResponse
	resp.FromDomain(*stats)
	respondOK(c, resp)
}
