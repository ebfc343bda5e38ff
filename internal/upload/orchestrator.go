package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ridwanfathin/shelf-price-monitor/internal/domain"
	"github.com/ridwanfathin/shelf-price-monitor/internal/imageutil"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
	"github.com/ridwanfathin/shelf-price-monitor/internal/priceapi"
)

// ErrBatchInProgress is returned when a batch is submitted while another runs
var ErrBatchInProgress = errors.New("a batch is already in progress")

// ErrEmptyBatch is returned when there is nothing to submit
var ErrEmptyBatch = errors.New("no photos selected")

// Extractor submits one photo for extraction
type Extractor interface {
	Extract(ctx context.Context, in priceapi.ExtractRequest) (*domain.ExtractResult, error)
}

// Recorder receives per-photo and per-batch observations
type Recorder interface {
	ObserveExtraction(success bool, duration time.Duration, count, pendingReview int)
	ObserveBatch(files int)
}

// ProgressFunc is called after each photo completes, successful or not
type ProgressFunc func(completed, total int)

// BatchContext is shared by every photo of a batch. StoreID wins over StoreName.
type BatchContext struct {
	StoreID   *int64
	StoreName string
	Location  string
}

// FileResult is the outcome for one photo
type FileResult struct {
	Index              int                    `json:"index"`
	Name               string                 `json:"name"`
	Success            bool                   `json:"success"`
	Count              int                    `json:"count"`
	PendingReviewCount int                    `json:"pendingReviewCount"`
	Products           []domain.ExtractedItem `json:"products,omitempty"`
	Message            string                 `json:"message,omitempty"`
}

// BatchOutcome aggregates a finished batch
type BatchOutcome struct {
	BatchID            uuid.UUID    `json:"batchId"`
	Results            []FileResult `json:"results"`
	SuccessTotal       int          `json:"successTotal"`
	PendingReviewTotal int          `json:"pendingReviewTotal"`
	Succeeded          int          `json:"succeeded"`
	Failed             int          `json:"failed"`
}

// Options configures an Orchestrator
type Options struct {
	Logger   *logger.Logger
	Metrics  Recorder
	Resize   *imageutil.ResizeConfig
	Progress ProgressFunc
}

// Orchestrator submits batches one photo at a time. Request i+1 is issued
// only after the response to request i has been processed, and a failing
// photo never stops the rest of the batch.
type Orchestrator struct {
	api       Extractor
	selection *Selection
	log       *logger.Logger
	metrics   Recorder
	resize    *imageutil.ResizeConfig

	mu         sync.Mutex
	running    bool
	completed  int
	total      int
	onProgress ProgressFunc
}

// New creates an orchestrator bound to a selection
func New(api Extractor, selection *Selection, opts Options) *Orchestrator {
	if selection == nil {
		selection = NewSelection(DefaultLimits())
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		api:        api,
		selection:  selection,
		log:        log,
		metrics:    opts.Metrics,
		resize:     opts.Resize,
		onProgress: opts.Progress,
	}
}

// Selection returns the bound selection
func (o *Orchestrator) Selection() *Selection {
	return o.selection
}

// OnProgress replaces the progress observer
func (o *Orchestrator) OnProgress(fn ProgressFunc) {
	o.mu.Lock()
	o.onProgress = fn
	o.mu.Unlock()
}

// Running reports whether a batch is in flight
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// SubmitEnabled reports whether the submit control should be active
func (o *Orchestrator) SubmitEnabled() bool {
	return !o.Running() && o.selection.Len() > 0
}

// Progress returns the completed fraction of the current or last batch
func (o *Orchestrator) Progress() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.total == 0 {
		return 0
	}
	return float64(o.completed) / float64(o.total)
}

// SubmitSelection submits the current selection and clears it afterwards
func (o *Orchestrator) SubmitSelection(ctx context.Context, bc BatchContext) (*BatchOutcome, error) {
	files := o.selection.Files()
	outcome, err := o.SubmitBatch(ctx, files, bc)
	if err != nil {
		return nil, err
	}
	o.selection.Clear()
	return outcome, nil
}

// SubmitBatch uploads files in order and aggregates their results
func (o *Orchestrator) SubmitBatch(ctx context.Context, files []File, bc BatchContext) (*BatchOutcome, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, ErrBatchInProgress
	}
	o.running = true
	o.completed = 0
	o.total = len(files)
	progress := o.onProgress
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	outcome := &BatchOutcome{
		BatchID: uuid.New(),
		Results: make([]FileResult, 0, len(files)),
	}

	ctx = o.log.WithBatchID(ctx, outcome.BatchID.String())
	if bc.StoreID != nil {
		ctx = o.log.WithStoreID(ctx, *bc.StoreID)
	}
	o.log.Event(ctx, zerolog.InfoLevel).Int("files", len(files)).Msg("upload batch started")

	for i, f := range files {
		result := o.submitOne(ctx, i, f, bc)
		outcome.Results = append(outcome.Results, result)
		if result.Success {
			outcome.Succeeded++
			outcome.SuccessTotal += result.Count
			outcome.PendingReviewTotal += result.PendingReviewCount
		} else {
			outcome.Failed++
		}

		o.mu.Lock()
		o.completed = i + 1
		o.mu.Unlock()
		if progress != nil {
			progress(i+1, len(files))
		}
	}

	if o.metrics != nil {
		o.metrics.ObserveBatch(len(files))
	}
	o.log.Event(ctx, zerolog.InfoLevel).
		Int("succeeded", outcome.Succeeded).
		Int("failed", outcome.Failed).
		Int("extracted", outcome.SuccessTotal).
		Int("pending_review", outcome.PendingReviewTotal).
		Msg("upload batch finished")

	return outcome, nil
}

// submitOne never returns an error; every failure becomes a FileResult message
func (o *Orchestrator) submitOne(ctx context.Context, index int, f File, bc BatchContext) FileResult {
	result := FileResult{Index: index, Name: f.Name}
	start := time.Now()

	res, err := o.extract(ctx, f, bc)
	switch {
	case err != nil:
		result.Message = err.Error()
		o.log.Error(ctx, fmt.Sprintf("extraction of %s failed", f.Name), err)
	case !res.Success:
		result.Message = res.Message
		if strings.TrimSpace(result.Message) == "" {
			result.Message = "extraction failed"
		}
		o.log.Warn(ctx, fmt.Sprintf("extraction of %s rejected: %s", f.Name, result.Message))
	default:
		result.Success = true
		result.Count = res.Count
		result.PendingReviewCount = res.PendingReviewCount
		result.Products = res.Products
		result.Message = res.Message
	}

	if o.metrics != nil {
		o.metrics.ObserveExtraction(result.Success, time.Since(start), result.Count, result.PendingReviewCount)
	}
	return result
}

func (o *Orchestrator) extract(ctx context.Context, f File, bc BatchContext) (*domain.ExtractResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var (
		body      io.Reader = rc
		mediaType           = f.MediaType
	)
	if o.resize != nil && o.resize.MaxDimension > 0 {
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read image data: %w", err)
		}
		body = bytes.NewReader(data)

		// formats without a decoder (heic, tiff, bmp) go to the backend as is
		resized, err := imageutil.Downscale(data, f.MediaType, o.resize)
		switch {
		case errors.Is(err, imageutil.ErrUndecodable):
			o.log.Warn(ctx, fmt.Sprintf("sending %s without resizing: %v", f.Name, err))
		case err != nil:
			return nil, err
		default:
			body = bytes.NewReader(resized.Data)
			mediaType = resized.MediaType
		}
	}

	return o.api.Extract(ctx, priceapi.ExtractRequest{
		FileName:  f.Name,
		MediaType: mediaType,
		Body:      body,
		StoreID:   bc.StoreID,
		StoreName: bc.StoreName,
		Location:  bc.Location,
	})
}
