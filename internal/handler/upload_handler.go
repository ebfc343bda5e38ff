package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// filesField is the multipart field carrying the photos
const filesField = "files"

// UploadHandler handles the photo selection and batch submission
type UploadHandler struct {
	session *session.Session
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(s *session.Session) *UploadHandler {
	return &UploadHandler{session: s}
}

// Selection handles the GET /api/uploads endpoint
// @Summary Photo selection
// @Description Selected photos, limits, submit state and batch progress
// @Tags uploads
// @Produce json
// @Success 200 {object} model.SelectionResponse
// @Router /api/uploads [get]
func (h *UploadHandler) Selection(c *gin.Context) {
	respondOK(c, model.NewSelectionResponse(h.session.Uploads()))
}

// AddFiles handles the POST /api/uploads/files endpoint
// @Summary Add photos
// @Description Add photos to the selection. Non-images and files over the size limit are dropped; an add that would overflow the selection is refused as a whole.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Shelf-tag photos (repeat the field for several)"
// @Success 200 {object} model.SelectionResponse
// @Failure 400 {object} model.ErrorResponse "No files or selection full"
// @Router /api/uploads/files [post]
func (h *UploadHandler) AddFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File[filesField]) == 0 {
		respondBadRequest(c, ErrFileUpload, newErrorDetail(filesField, "At least one photo is required"))
		return
	}

	limits := h.session.Uploads().Selection().Limits()
	candidates := make([]upload.File, 0, len(form.File[filesField]))
	for _, header := range form.File[filesField] {
		f, err := readCandidate(header, limits.MaxFileBytes)
		if err != nil {
			logError(c, "failed_to_read_upload", err, map[string]any{"file_name": header.Filename})
			respondBadRequest(c, ErrFileUpload, newErrorDetail(filesField, err.Error()))
			return
		}
		candidates = append(candidates, f)
	}

	res, err := h.session.AddFiles(candidates...)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	resp := model.NewSelectionResponse(h.session.Uploads())
	resp.Accepted = res.Accepted
	resp.Rejected = res.Rejected
	respondOK(c, resp)
}

// readCandidate buffers one uploaded part. The multipart form is discarded
// when the request ends, so the selection must own the bytes. Parts over the
// size limit are not read; the selection rejects them on size alone.
func readCandidate(header *multipart.FileHeader, maxBytes int64) (upload.File, error) {
	if header.Size > maxBytes {
		return upload.File{
			Name:      header.Filename,
			MediaType: header.Header.Get("Content-Type"),
			Size:      header.Size,
		}, nil
	}

	file, err := header.Open()
	if err != nil {
		return upload.File{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return upload.File{}, err
	}
	return upload.FromBytes(header.Filename, data, ""), nil
}

// RemoveFile handles the DELETE /api/uploads/files/:index endpoint
// @Summary Remove a photo
// @Tags uploads
// @Produce json
// @Param index path int true "Position in the selection"
// @Success 200 {object} model.SelectionResponse
// @Failure 400 {object} model.ErrorResponse "Invalid index"
// @Failure 404 {object} model.ErrorResponse "No photo at index"
// @Router /api/uploads/files/{index} [delete]
func (h *UploadHandler) RemoveFile(c *gin.Context) {
	index, err := getPathIndex(c, "index")
	if err != nil {
		respondBadRequest(c, ErrInvalidID, newErrorDetail("index", err.Error()))
		return
	}

	if !h.session.RemoveFile(index) {
		respondNotFound(c, ErrResourceNotFound)
		return
	}
	respondOK(c, model.NewSelectionResponse(h.session.Uploads()))
}

// ClearFiles handles the DELETE /api/uploads/files endpoint
// @Summary Clear the selection
// @Tags uploads
// @Success 204
// @Router /api/uploads/files [delete]
func (h *UploadHandler) ClearFiles(c *gin.Context) {
	h.session.ClearFiles()
	respondNoContent(c)
}

// Submit handles the POST /api/uploads/submit endpoint
// @Summary Submit the batch
// @Description Upload every selected photo to the extraction backend, one at a time and in order. Per-photo failures are reported in the outcome; the selection is cleared afterwards.
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body model.SubmitBatchRequest false "Store context shared by every photo"
// @Success 200 {object} upload.BatchOutcome
// @Failure 400 {object} model.ErrorResponse "No photos selected"
// @Failure 409 {object} model.ErrorResponse "A batch is already running"
// @Router /api/uploads/submit [post]
func (h *UploadHandler) Submit(c *gin.Context) {
	var req model.SubmitBatchRequest
	if c.Request.ContentLength != 0 {
		if err := bindJSON(c, &req); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	outcome, err := h.session.SubmitBatch(c.Request.Context(), req.ToBatchContext())
	if err != nil {
		respondSessionError(c, err)
		return
	}
	respondOK(c, outcome)
}

// LastBatch handles the GET /api/uploads/last endpoint
// @Summary Last batch outcome
// @Tags uploads
// @Produce json
// @Success 200 {object} upload.BatchOutcome
// @Failure 404 {object} model.ErrorResponse "No batch submitted yet"
// @Router /api/uploads/last [get]
func (h *UploadHandler) LastBatch(c *gin.Context) {
	outcome, ok := h.session.LastBatch()
	if !ok {
		respondNotFound(c, "no batch submitted yet")
		return
	}
	respondOK(c, outcome)
}
