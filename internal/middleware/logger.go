package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
)

const maxLoggedBody = 2048

// sensitiveFields contains patterns for fields that should be redacted
var sensitiveFields = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"secret",
	"authorization",
	"credential",
	"cookie",
}

// sensitiveHeaderPattern matches headers whose values must not be logged
var sensitiveHeaderPattern = regexp.MustCompile(`(?i)authorization|api[-_]?key|token|secret|password|cookie|session`)

// bodyRecorder captures the response body for logging
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if room := maxLoggedBody - w.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		w.body.Write(b[:room])
	}
	return w.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the request logger
type LoggerConfig struct {
	// LogBodies adds redacted JSON request and response bodies to each entry
	LogBodies bool
	// SkipPaths are not logged at all
	SkipPaths []string
}

// RequestLogger logs one structured entry per request through log.
// Multipart bodies (photo uploads) are never captured, only their size.
func RequestLogger(log *logger.Logger, config LoggerConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		multipart := strings.HasPrefix(c.ContentType(), "multipart/")

		var requestBody []byte
		if config.LogBodies && !multipart && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		var recorder *bodyRecorder
		if config.LogBodies {
			recorder = &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
			c.Writer = recorder
		}

		c.Next()

		status := c.Writer.Status()
		level := zerolog.InfoLevel
		switch {
		case status >= 500:
			level = zerolog.ErrorLevel
		case status >= 400:
			level = zerolog.WarnLevel
		}

		event := log.Event(c.Request.Context(), level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Interface("headers", redactHeaders(c.Request.Header))

		if q := c.Request.URL.RawQuery; q != "" {
			event = event.Str("query", q)
		}
		if multipart {
			event = event.Int64("upload_bytes", c.Request.ContentLength)
		}
		if len(requestBody) > 0 {
			event = event.Interface("request_body", parseAndRedactBody(requestBody))
		}
		if recorder != nil && recorder.body.Len() > 0 {
			event = event.Interface("response_body", parseAndRedactBody(recorder.body.Bytes()))
		}
		if len(c.Errors) > 0 {
			event = event.Str("error", c.Errors.String())
		}
		event.Msg("request handled")
	}
}

// redactHeaders flattens headers and masks sensitive ones
func redactHeaders(headers map[string][]string) map[string]string {
	redacted := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaderPattern.MatchString(key) {
			redacted[key] = "[REDACTED]"
		} else {
			redacted[key] = strings.Join(values, ", ")
		}
	}
	return redacted
}

// parseAndRedactBody parses a JSON body and redacts sensitive fields.
// Non-JSON bodies are logged as truncated text.
func parseAndRedactBody(body []byte) any {
	var jsonBody any
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		s := string(body)
		if len(s) > 256 {
			s = s[:256] + "... (truncated)"
		}
		return s
	}
	redactSensitiveFields(jsonBody)
	return jsonBody
}

func redactSensitiveFields(data any) {
	switch v := data.(type) {
	case map[string]any:
		for key, value := range v {
			if isSensitiveField(key) {
				v[key] = "[REDACTED]"
			} else {
				redactSensitiveFields(value)
			}
		}
	case []any:
		for _, item := range v {
			redactSensitiveFields(item)
		}
	}
}

func isSensitiveField(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}
