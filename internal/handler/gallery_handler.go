package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

// GalleryHandler drives the inline slideshow and the full-screen viewer
type GalleryHandler struct {
	session *session.Session
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(s *session.Session) *GalleryHandler {
	return &GalleryHandler{session: s}
}

// Slide handles the GET /api/gallery/slide endpoint
// @Summary Inline slideshow position
// @Tags gallery
// @Produce json
// @Success 200 {object} session.SlideState
// @Failure 409 {object} model.ErrorResponse "No store with photos is open"
// @Router /api/gallery/slide [get]
func (h *GalleryHandler) Slide(c *gin.Context) {
	state, ok := h.session.InlineSlide()
	if !ok {
		respondConflict(c, "no store with photos is open")
		return
	}
	respondOK(c, state)
}

// AdvanceSlide handles the POST /api/gallery/slide endpoint
// @Summary Move the inline slideshow
// @Description Step the open store's slideshow forward or backward, wrapping at both ends
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body model.AdvanceRequest true "Direction"
// @Success 200 {object} session.SlideState
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "No store with photos is open"
// @Router /api/gallery/slide [post]
func (h *GalleryHandler) AdvanceSlide(c *gin.Context) {
	var req model.AdvanceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if _, ok := h.session.AdvanceSlide(req.GalleryDirection()); !ok {
		respondConflict(c, "no store with photos is open")
		return
	}
	state, _ := h.session.InlineSlide()
	respondOK(c, state)
}

// Modal handles the GET /api/gallery/modal endpoint
// @Summary Viewer state
// @Tags gallery
// @Produce json
// @Success 200 {object} session.ModalState
// @Router /api/gallery/modal [get]
func (h *GalleryHandler) Modal(c *gin.Context) {
	respondOK(c, h.session.Modal())
}

// OpenModal handles the POST /api/gallery/modal endpoint
// @Summary Open the viewer
// @Description Open the viewer on an image of the open store. The row index is used only when the path is no longer in the photo set.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body model.ModalOpenRequest true "Image reference"
// @Success 200 {object} session.ModalState
// @Failure 409 {object} model.ErrorResponse "No store selected"
// @Router /api/gallery/modal [post]
func (h *GalleryHandler) OpenModal(c *gin.Context) {
	var req model.ModalOpenRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.session.OpenModal(req.Path, req.Row); err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, h.session.Modal())
}

// AdvanceModal handles the POST /api/gallery/modal/advance endpoint
// @Summary Move the viewer
// @Description Step the viewer forward or backward; does nothing while it is closed
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body model.AdvanceRequest true "Direction"
// @Success 200 {object} session.ModalState
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /api/gallery/modal/advance [post]
func (h *GalleryHandler) AdvanceModal(c *gin.Context) {
	var req model.AdvanceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	h.session.AdvanceModal(req.GalleryDirection())
	respondOK(c, h.session.Modal())
}

// CloseModal handles the DELETE /api/gallery/modal endpoint
// @Summary Close the viewer
// @Tags gallery
// @Success 204
// @Router /api/gallery/modal [delete]
func (h *GalleryHandler) CloseModal(c *gin.Context) {
	h.session.CloseModal()
	respondNoContent(c)
}
