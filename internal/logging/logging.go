// Package logging builds the zap logger shared by the CLI, MCP and web surfaces.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger at the named level ("debug", "info",
// "warn" or "error"). An empty level means info. Output goes to stderr so
// stdout stays free for JSON results and the MCP stdio channel.
func New(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	if level = strings.TrimSpace(level); level != "" {
		lvl, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
