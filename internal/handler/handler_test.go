package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/model"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
	"github.com/ridwanfathin/shelf-price-monitor/internal/upload"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, model.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondSessionError(c, err)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRespondSessionErrorStatusCodes(t *testing.T) {
	wrapped := func(err error) error { return &session.Error{Op: "test", Err: err} }

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", wrapped(fmt.Errorf("store 9: %w", domain.ErrNotFound)), http.StatusNotFound},
		{"selection full", wrapped(fmt.Errorf("%w: at most 10", upload.ErrSelectionFull)), http.StatusBadRequest},
		{"empty batch", wrapped(upload.ErrEmptyBatch), http.StatusBadRequest},
		{"batch running", wrapped(upload.ErrBatchInProgress), http.StatusConflict},
		{"invalid transition", wrapped(domain.ErrInvalidTransition), http.StatusConflict},
		{"no store", wrapped(session.ErrNoStoreSelected), http.StatusConflict},
		{"timeout", wrapped(&priceapi.RequestError{Op: "list_stores", Err: context.DeadlineExceeded}), http.StatusGatewayTimeout},
		{"backend", wrapped(&priceapi.RequestError{Op: "list_stores", StatusCode: 500, Err: errors.New("API error: 500")}), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serveError(t, tt.err)
			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, http.StatusText(tt.want), resp.Status)
		})
	}
}

func TestRespondSessionErrorValidationDetails(t *testing.T) {
	err := &session.Error{Op: "create_store", Err: &domain.ValidationError{Fields: map[string]string{
		"storeName": "is required",
		"branch":    "must be at most 100 characters",
	}}}

	w, resp := serveError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, ErrValidation, resp.Message)
	assert.Equal(t, []model.ErrorDetail{
		{Field: "branch", Message: "must be at most 100 characters"},
		{Field: "storeName", Message: "is required"},
	}, resp.Details)
}

func TestParseHelpers(t *testing.T) {
	price, err := parsePrice(" 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.5", price.String())

	_, err = parsePrice("twelve")
	assert.Error(t, err)

	date, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = parseDate("2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, 1, date.Day())

	_, err = parseDate("01/05/2024")
	assert.Error(t, err)

	at, err := parseTimestamp("2024-05-01T10:30")
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.Equal(t, 30, at.Minute())
}

func TestPathParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "index", Value: "0"}}
	id, err := getPathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	index, err := getPathIndex(c, "index")
	require.NoError(t, err)
	assert.Zero(t, index)

	c.Params = gin.Params{{Key: "id", Value: "0"}, {Key: "index", Value: "x"}}
	_, err = getPathID(c, "id")
	assert.Error(t, err)
	_, err = getPathIndex(c, "index")
	assert.Error(t, err)
}
