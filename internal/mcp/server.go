package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/hpungsan/natal/internal/config"
)

// KnownTypes lists all valid type names.
var KnownTypes = []string{"chart", "city"}

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"chart_calculate": {
		def:     chartToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChart },
	},
	"chart_aspects": {
		def:     aspectsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAspects },
	},
	"chart_moon_sign": {
		def:     moonSignToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMoonSign },
	},
	"chart_strength": {
		def:     strengthToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStrength },
	},
	"chart_batch": {
		def:     batchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBatch },
	},
	"city_list": {
		def:     cityListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCityList },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ValidateDisabledTypes returns a list of unknown type names from the given list.
func ValidateDisabledTypes(names []string) []string {
	known := make(map[string]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	unknown := make([]string, 0)
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GetTypeForTool extracts the type name from a tool name.
// Tool names follow the pattern "type_action" (e.g., "chart_calculate" → "chart").
func GetTypeForTool(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// ExpandTypesToTools returns all tool names belonging to the given types.
func ExpandTypesToTools(types []string) []string {
	if len(types) == 0 {
		return nil
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	tools := make([]string, 0)
	for name := range toolRegistry {
		if typeSet[GetTypeForTool(name)] {
			tools = append(tools, name)
		}
	}
	return tools
}

// NewServer creates a new MCP server with the chart tools registered.
// Tools listed in cfg.DisabledTools or belonging to cfg.DisabledTypes
// are excluded from registration. Unknown names are logged and ignored.
func NewServer(cfg *config.Config, logger *zap.Logger, version string) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		"natal",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(cfg, logger)

	for _, name := range ValidateDisabledTools(cfg.DisabledTools) {
		logger.Warn("Unknown tool in disabled_tools", zap.String("tool", name))
	}
	for _, name := range ValidateDisabledTypes(cfg.DisabledTypes) {
		logger.Warn("Unknown type in disabled_types", zap.String("type", name))
	}

	// Build set of disabled tools: first expand types, then add individual tools
	disabled := make(map[string]bool)
	for _, tool := range ExpandTypesToTools(cfg.DisabledTypes) {
		disabled[tool] = true
	}
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	registered := 0
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
		registered++
	}
	logger.Info("MCP tools registered", zap.Int("count", registered), zap.Int("disabled", len(toolRegistry)-registered))

	return s
}

// Run starts the MCP server using stdio transport.
func Run(cfg *config.Config, logger *zap.Logger, version string) error {
	s := NewServer(cfg, logger, version)
	return server.ServeStdio(s)
}
