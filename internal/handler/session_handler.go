package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// SessionHandler handles view state and history navigation
type SessionHandler struct {
	session *session.Session
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(s *session.Session) *SessionHandler {
	return &SessionHandler{session: s}
}

// State handles the GET /api/session endpoint
// @Summary Session state
// @Description Active view, open store, deep link, selection and viewer state
// @Tags session
// @Produce json
// @Success 200 {object} session.State
// @Router /api/session [get]
func (h *SessionHandler) State(c *gin.Context) {
	respondOK(c, h.session.State())
}

// Restore handles the POST /api/session/restore endpoint
// @Summary Restore a deep link
// @Description Start-up path: load the store list, then open the store named by the query if it exists
// @Tags session
// @Accept json
// @Produce json
// @Param request body model.NavigateRequest true "History query, e.g. store=12"
// @Success 200 {object} model.NavigateResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/session/restore [post]
func (h *SessionHandler) Restore(c *gin.Context) {
	var req model.NavigateRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	view, err := h.session.RestoreDeepLink(c.Request.Context(), req.Query)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NavigateResponse{View: string(view), DeepLink: h.session.DeepLinkQuery()})
}

// Navigate handles the POST /api/session/navigate endpoint
// @Summary Apply a history move
// @Description Open the store named by the query, or fall back to the store list
// @Tags session
// @Accept json
// @Produce json
// @Param request body model.NavigateRequest true "History query, e.g. store=12"
// @Success 200 {object} model.NavigateResponse
// @Failure 502 {object} model.ErrorResponse "Price backend request failed"
// @Router /api/session/navigate [post]
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req model.NavigateRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	view, err := h.session.Navigate(c.Request.Context(), req.Query)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, model.NavigateResponse{View: string(view), DeepLink: h.session.DeepLinkQuery()})
}

// Back handles the POST /api/session/back endpoint
// @Summary Back to the store list
// @Tags session
// @Produce json
// @Success 200 {object} model.NavigateResponse
// @Router /api/session/back [post]
func (h *SessionHandler) Back(c *gin.Context) {
	h.session.BackToList()
	respondOK(c, model.NavigateResponse{View: string(session.ViewStoreList)})
}
