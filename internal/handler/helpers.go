package handler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/middleware"
)

// getPathID retrieves a positive integer id path parameter
func getPathID(c *gin.Context, paramName string) (int64, error) {
	value := c.Param(paramName)
	if value == "" {
		return 0, fmt.Errorf("%s is required", paramName)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", paramName)
	}
	return id, nil
}

// getPathIndex retrieves a zero-based position path parameter
func getPathIndex(c *gin.Context, paramName string) (int, error) {
	index, err := strconv.Atoi(c.Param(paramName))
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid %s: must be a non-negative integer", paramName)
	}
	return index, nil
}

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// getQueryInt64 retrieves an optional positive id query parameter
func getQueryInt64(c *gin.Context, paramName string) (*int64, error) {
	valueStr := strings.TrimSpace(c.Query(paramName))
	if valueStr == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil || value <= 0 {
		return nil, fmt.Errorf("invalid %s: must be a positive integer", paramName)
	}
	return &value, nil
}

// getQueryString retrieves a trimmed string query parameter
func getQueryString(c *gin.Context, paramName string) string {
	return strings.TrimSpace(c.Query(paramName))
}

// parseDate parses a date string in YYYY-MM-DD format; empty yields nil
func parseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return &date, nil
}

// parsePrice parses a non-empty decimal price
func parsePrice(priceStr string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price: must be a decimal number")
	}
	return price, nil
}

// parseTimestamp parses an optional timestamp; empty yields nil
func parseTimestamp(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := domain.ParseTimestamp(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// logError logs a failed request through the request-scoped logger and
// records it on the context for the request logger
func logError(c *gin.Context, event string, err error, fields map[string]any) {
	log := middleware.GetLogger(c)
	ctx := c.Request.Context()
	if len(fields) > 0 {
		ctx = log.WithFields(ctx, fields)
	}
	log.Error(ctx, event, err)
	_ = c.Error(err)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
