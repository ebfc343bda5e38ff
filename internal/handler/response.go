package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

// Common error messages
const (
	ErrInvalidInput       = "Invalid input format"
	ErrInvalidID          = "Invalid ID provided"
	ErrResourceNotFound   = "Resource not found"
	ErrInternalServer     = "Internal server error"
	ErrInvalidQueryParams = "Invalid query parameters"
	ErrFileUpload         = "Failed to upload file"
	ErrValidation         = "Validation failed"
	ErrBackend            = "Price backend request failed"
	ErrBackendTimeout     = "Price backend did not answer in time"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	response := model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, message)
}

// respondConflict sends a 409 Conflict response
func respondConflict(c *gin.Context, message string) {
	respondWithError(c, http.StatusConflict, message)
}

// sentinelStatus maps taxonomy sentinels to the status they answer with.
// The error text itself becomes the message.
var sentinelStatus = []struct {
	err    error
	status int
}{
	{upload.ErrSelectionFull, http.StatusBadRequest},
	{upload.ErrEmptyBatch, http.StatusBadRequest},
	{upload.ErrBatchInProgress, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{session.ErrNoStoreSelected, http.StatusConflict},
}

// respondSessionError maps a failed session operation onto a status code.
// Backend failures surface as 502 with the backend message.
func respondSessionError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var requestErr *priceapi.RequestError

	switch {
	case errors.As(err, &validationErr):
		respondWithError(c, http.StatusUnprocessableEntity, ErrValidation, newErrorDetails(validationErr.Fields)...)
		return
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(c, ErrResourceNotFound)
		return
	}

	for _, m := range sentinelStatus {
		if errors.Is(err, m.err) {
			respondWithError(c, m.status, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logError(c, "backend_timeout", err, nil)
		respondWithError(c, http.StatusGatewayTimeout, ErrBackendTimeout)
	case errors.As(err, &requestErr):
		logError(c, "backend_request_failed", err, map[string]any{
			"op":          requestErr.Op,
			"status_code": requestErr.StatusCode,
		})
		detail := requestErr.Op
		if requestErr.Err != nil {
			detail = requestErr.Err.Error()
		}
		respondWithError(c, http.StatusBadGateway, ErrBackend, newErrorDetail("backend", detail))
	default:
		logError(c, "session_operation_failed", err, nil)
		respondWithError(c, http.StatusInternalServerError, ErrInternalServer)
	}
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// respondCreated sends a 201 Created response with data
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondNoContent sends a 204 No Content response
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func newErrorDetail(field, message string) model.ErrorDetail {
	return model.ErrorDetail{Field: field, Message: message}
}

// newErrorDetails creates error details ordered by field name
func newErrorDetails(fields map[string]string) []model.ErrorDetail {
	details := make([]model.ErrorDetail, 0, len(fields))
	for _, field := range sortedKeys(fields) {
		details = append(details, newErrorDetail(field, fields[field]))
	}
	return details
}
