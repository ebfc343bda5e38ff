package priceapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
)

// ExtractRequest is one photo submitted for extraction together with the
// shared batch context
type ExtractRequest struct {
	FileName  string
	MediaType string
	Body      io.Reader

	StoreID   *int64
	StoreName string
	Location  string
}

// Extract uploads one photo and returns the backend's per-file result.
// A 4xx/5xx answer that still carries a JSON envelope is returned as an
// unsuccessful result so its message reaches the user verbatim.
func (c *Client) Extract(ctx context.Context, in ExtractRequest) (*domain.ExtractResult, error) {
	const op = "extract"

	if in.Body == nil {
		return nil, &RequestError{
			Op:  op,
			Err: fmt.Errorf("no file content for %q", in.FileName),
		}
	}

	body, contentType, err := buildExtractForm(in)
	if err != nil {
		return nil, &RequestError{
			Op:  op,
			Err: fmt.Errorf("failed to build multipart form: %w", err),
		}
	}

	req, err := c.newRequest(ctx, op, http.MethodPost, "/api/products/extract", nil, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	status, respBody, err := c.send(op, req)
	if err != nil {
		return nil, err
	}

	result, err := parseExtractResponse(respBody)
	if err != nil {
		if status >= 400 {
			return nil, checkStatus(op, status, respBody)
		}
		return nil, &RequestError{
			Op:         op,
			StatusCode: status,
			Err:        err,
		}
	}

	if status >= 400 {
		result.Success = false
		if result.Message == "" {
			result.Message = fmt.Sprintf("%d %s", status, http.StatusText(status))
		}
	}
	return result, nil
}

// buildExtractForm writes the multipart body for an extraction request
func buildExtractForm(in ExtractRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	mediaType := in.MediaType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(in.FileName)))
	header.Set("Content-Type", mediaType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, in.Body); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	if in.StoreID != nil {
		if err := w.WriteField("store_id", strconv.FormatInt(*in.StoreID, 10)); err != nil {
			return nil, "", err
		}
	} else if name := strings.TrimSpace(in.StoreName); name != "" {
		if err := w.WriteField("store_name", name); err != nil {
			return nil, "", err
		}
	}
	if loc := strings.TrimSpace(in.Location); loc != "" {
		if err := w.WriteField("location", loc); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
