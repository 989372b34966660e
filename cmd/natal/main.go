package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/logging"
	"github.com/hpungsan/natal/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"chart": true, "aspects": true, "moon": true, "strength": true,
	"batch": true, "cities": true, "report": true, "web": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode(args []string) bool {
	if len(args) < 2 {
		return false // No args → MCP server
	}
	arg := args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v"
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion(args []string) bool {
	if len(args) < 2 {
		return false
	}
	arg := args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _   _    _  _____  _    _
  | \ | |  / \|_   _|/ \  | |
  |  \| | / _ \ | | / _ \ | |
  | |\  |/ ___ \| |/ ___ \| |___
  |_| \_/_/   \_\_/_/   \_\_____|

  Birth chart calculator

  Usage: natal <command> [options]
         natal --help

  MCP server mode requires piped input.`)
}

// loadConfig merges the global config with the nearest repo config.
func loadConfig() (*config.Config, error) {
	baseDir, err := config.DefaultBaseDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.Load(baseDir)
	}
	return config.LoadWithRepo(baseDir, cwd)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before config load
	if isHelpOrVersion(os.Args) {
		app := newCLIApp(nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(cfg, logger))
}

// run dispatches to CLI or MCP mode and returns the process exit code.
func run(cfg *config.Config, logger *zap.Logger) int {
	defer func() { _ = logger.Sync() }()

	// CLI mode: known subcommand
	if isCLIMode(os.Args) {
		app := newCLIApp(cfg, logger)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'natal --help' for usage.\n")
		return 1
	}

	// MCP server mode (default)
	if err := mcp.Run(cfg, logger, Version); err != nil {
		logger.Error("MCP server stopped", zap.Error(err))
		return 1
	}
	return 0
}
