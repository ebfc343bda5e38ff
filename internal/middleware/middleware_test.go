package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
)

func newRouter(buf *bytes.Buffer, cfg LoggerConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New(logger.Options{ServiceName: "test", Output: buf})

	r := gin.New()
	r.Use(RequestID(log), RequestLogger(log, cfg))
	r.POST("/api/stores", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 1, "storeName": "Corner", "apiKey": "leak"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestLoggerRedactsAndCarriesRequestID(t *testing.T) {
	buf := &bytes.Buffer{}
	r := newRouter(buf, LoggerConfig{LogBodies: true})

	req := httptest.NewRequest(http.MethodPost, "/api/stores", strings.NewReader(`{"storeName":"Corner","password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, float64(http.StatusCreated), entry["status"])

	headers := entry["headers"].(map[string]any)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])

	reqBody := entry["request_body"].(map[string]any)
	assert.Equal(t, "[REDACTED]", reqBody["password"])
	assert.Equal(t, "Corner", reqBody["storeName"])

	respBody := entry["response_body"].(map[string]any)
	assert.Equal(t, "[REDACTED]", respBody["apiKey"])
}

func TestRequestIDKeepsValidIncomingID(t *testing.T) {
	buf := &bytes.Buffer{}
	r := newRouter(buf, LoggerConfig{})

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	assert.NotContains(t, buf.String(), "response_body")
}

func TestRequestLoggerSkipsPaths(t *testing.T) {
	buf := &bytes.Buffer{}
	r := newRouter(buf, LoggerConfig{SkipPaths: []string{"/health"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Zero(t, buf.Len())
}

func TestParseAndRedactBodyTruncatesText(t *testing.T) {
	out := parseAndRedactBody([]byte(strings.Repeat("x", 400)))
	s, ok := out.(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(s, "... (truncated)"))
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://console.example.com"}))
	r.GET("/api/stores", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Origin", "https://console.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://console.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/stores", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSAnswersPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.POST("/api/uploads/submit", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/uploads/submit", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
