package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/errors"
	"github.com/hpungsan/natal/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{cfg: cfg, logger: logger}
}

// Request types map one-to-one onto ops inputs, so decode targets them directly.

// HandleChart handles the chart_calculate tool call.
func (h *Handlers) HandleChart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ops.ChartInput](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Chart(h.cfg, input)
	if err != nil {
		return h.fail("chart_calculate", err), nil
	}

	return successResult(result)
}

// HandleAspects handles the chart_aspects tool call.
func (h *Handlers) HandleAspects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ops.AspectsInput](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Aspects(h.cfg, input)
	if err != nil {
		return h.fail("chart_aspects", err), nil
	}

	return successResult(result)
}

// HandleMoonSign handles the chart_moon_sign tool call.
func (h *Handlers) HandleMoonSign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ops.MoonSignInput](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.MoonSign(h.cfg, input)
	if err != nil {
		return h.fail("chart_moon_sign", err), nil
	}

	return successResult(result)
}

// HandleStrength handles the chart_strength tool call.
func (h *Handlers) HandleStrength(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ops.StrengthInput](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Strength(h.cfg, input)
	if err != nil {
		return h.fail("chart_strength", err), nil
	}

	return successResult(result)
}

// HandleBatch handles the chart_batch tool call.
func (h *Handlers) HandleBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ops.BatchInput](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Batch(ctx, h.cfg, input)
	if err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return errorResult(errors.NewCancelled("chart_batch")), nil
		}
		return h.fail("chart_batch", err), nil
	}

	return successResult(result)
}

// HandleCityList handles the city_list tool call.
func (h *Handlers) HandleCityList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ops.CitiesInput](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Cities(input)
	if err != nil {
		return h.fail("city_list", err), nil
	}

	return successResult(result)
}

// fail logs server-side failures before converting them to a tool result.
func (h *Handlers) fail(tool string, err error) *mcp.CallToolResult {
	var nErr *errors.NatalError
	if !stderrors.As(err, &nErr) || nErr.Status >= 500 {
		h.logger.Error("Tool call failed", zap.String("tool", tool), zap.Error(err))
	}
	return errorResult(err)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var nErr *errors.NatalError
	if stderrors.As(err, &nErr) {
		message := nErr.Message
		if err != error(nErr) {
			// Keep wrapper context such as "items[2]: ..."
			message = err.Error()
		}
		errorObj := map[string]any{
			"code":    nErr.Code,
			"message": message,
			"status":  nErr.Status,
		}
		if nErr.Code != errors.ErrInternal && nErr.Details != nil {
			errorObj["details"] = nErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
