package ops

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/errors"
)

// BatchInput contains parameters for the Batch operation.
type BatchInput struct {
	Items        []ChartInput `json:"items"`
	IncludeMinor *bool        `json:"include_minor,omitempty"` // applies to items without their own setting
}

// BatchOutput contains the result of the Batch operation.
// Items and Errors are each in input order.
type BatchOutput struct {
	Items  []BatchItem  `json:"items"`
	Errors []BatchError `json:"errors"`
}

// BatchItem is one successfully cast chart.
type BatchItem struct {
	Index int          `json:"index"`
	Chart *ChartOutput `json:"chart"`
}

// BatchError represents an error for a specific input item.
type BatchError struct {
	Index   int    `json:"index"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Batch casts up to MaxBatchItems charts concurrently.
// Returns partial success with items and errors arrays. Only cancellation of
// ctx fails the batch as a whole.
func Batch(ctx context.Context, cfg *config.Config, input BatchInput) (*BatchOutput, error) {
	if len(input.Items) == 0 {
		return nil, errors.NewInvalidRequest("items must not be empty")
	}
	if len(input.Items) > MaxBatchItems {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("too many items: %d (max %d)", len(input.Items), MaxBatchItems))
	}

	limit := cfg.BatchConcurrency
	if limit < 1 {
		limit = 1
	}

	charts := make([]*ChartOutput, len(input.Items))
	failures := make([]error, len(input.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range input.Items {
		if item.IncludeMinor == nil {
			item.IncludeMinor = input.IncludeMinor
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			charts[i], failures[i] = Chart(cfg, item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &BatchOutput{
		Items:  []BatchItem{},
		Errors: []BatchError{},
	}
	for i := range input.Items {
		if failures[i] != nil {
			out.Errors = append(out.Errors, itemToError(i, failures[i]))
			continue
		}
		out.Items = append(out.Items, BatchItem{Index: i, Chart: charts[i]})
	}
	return out, nil
}

// itemToError converts a chart error to a BatchError.
func itemToError(index int, err error) BatchError {
	var nErr *errors.NatalError
	if stderrors.As(err, &nErr) {
		return BatchError{Index: index, Code: string(nErr.Code), Message: nErr.Message}
	}
	return BatchError{Index: index, Code: string(errors.ErrInternal), Message: err.Error()}
}
