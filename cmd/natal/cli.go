package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/errors"
	"github.com/hpungsan/natal/internal/ops"
	"github.com/hpungsan/natal/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config, logger *zap.Logger) *cli.App {
	app := &cli.App{
		Name:    "natal",
		Usage:   "Birth chart calculator",
		Version: Version,
		Commands: []*cli.Command{
			chartCmd(cfg),
			aspectsCmd(cfg),
			moonCmd(cfg),
			strengthCmd(cfg),
			batchCmd(cfg),
			citiesCmd(),
			reportCmd(cfg),
			webCmd(cfg, logger),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// birthFlags are shared by every command that casts a chart.
func birthFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Birth date (YYYY-MM-DD)", Required: true},
		&cli.StringFlag{Name: "time", Aliases: []string{"t"}, Usage: "Birth time (HH:MM, default 12:00)"},
		&cli.StringFlag{Name: "city", Aliases: []string{"c"}, Usage: "Birth city (see 'natal cities')"},
		&cli.Float64Flag{Name: "lat", Usage: "Latitude in degrees, north positive"},
		&cli.Float64Flag{Name: "lon", Usage: "Longitude in degrees, east positive"},
		&cli.StringFlag{Name: "timezone", Aliases: []string{"z"}, Usage: "Timezone label (display only)"},
	}
	return append(flags, extra...)
}

func aspectFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "minor", Usage: "Include minor aspects (default from config)"},
		&cli.StringFlag{Name: "exclude", Usage: "Comma-separated bodies left out of aspects"},
	}
}

// birthFromFlags reads the shared birth flags. Coordinates are only set when given.
func birthFromFlags(c *cli.Context) ops.Birth {
	b := ops.Birth{
		Date:     c.String("date"),
		Time:     c.String("time"),
		City:     c.String("city"),
		Timezone: c.String("timezone"),
	}
	if c.IsSet("lat") {
		lat := c.Float64("lat")
		b.Latitude = &lat
	}
	if c.IsSet("lon") {
		lon := c.Float64("lon")
		b.Longitude = &lon
	}
	return b
}

func minorFromFlags(c *cli.Context) *bool {
	if !c.IsSet("minor") {
		return nil
	}
	minor := c.Bool("minor")
	return &minor
}

func chartInputFromFlags(c *cli.Context) ops.ChartInput {
	return ops.ChartInput{
		Birth:         birthFromFlags(c),
		IncludeMinor:  minorFromFlags(c),
		ExcludeBodies: parseList(c.String("exclude")),
	}
}

// chartCmd creates the chart command.
func chartCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "Cast a full birth chart",
		Flags: birthFlags(aspectFlags()...),
		Action: func(c *cli.Context) error {
			output, err := ops.Chart(cfg, chartInputFromFlags(c))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// aspectsCmd creates the aspects command.
func aspectsCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "aspects",
		Usage: "List the aspects of a birth chart",
		Flags: birthFlags(aspectFlags()...),
		Action: func(c *cli.Context) error {
			output, err := ops.Aspects(cfg, ops.AspectsInput{
				Birth:         birthFromFlags(c),
				IncludeMinor:  minorFromFlags(c),
				ExcludeBodies: parseList(c.String("exclude")),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// moonCmd creates the moon command.
func moonCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "moon",
		Usage: "Show the moon sign",
		Flags: birthFlags(),
		Action: func(c *cli.Context) error {
			output, err := ops.MoonSign(cfg, ops.MoonSignInput{Birth: birthFromFlags(c)})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// strengthCmd creates the strength command.
func strengthCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "strength",
		Usage: "Show the dignity of one body",
		Flags: birthFlags(
			&cli.StringFlag{Name: "body", Aliases: []string{"b"}, Usage: "Body or point, e.g. venus", Required: true},
		),
		Action: func(c *cli.Context) error {
			output, err := ops.Strength(cfg, ops.StrengthInput{
				Birth: birthFromFlags(c),
				Body:  c.String("body"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// batchCmd creates the batch command.
func batchCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Cast several charts (reads a JSON array of chart requests from stdin)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "minor", Usage: "Include minor aspects for items without their own setting"},
		},
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("chart requests must be piped via stdin"))
			}

			data, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			input, err := parseBatchInput(data)
			if err != nil {
				return outputError(err)
			}
			if c.IsSet("minor") {
				input.IncludeMinor = minorFromFlags(c)
			}

			output, err := ops.Batch(c.Context, cfg, input)
			if err != nil {
				if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
					return outputError(errors.NewCancelled("batch"))
				}
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// citiesCmd creates the cities command.
func citiesCmd() *cli.Command {
	return &cli.Command{
		Name:  "cities",
		Usage: "List known birth cities",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "country", Usage: "Country code filter, e.g. US"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Cities(ops.CitiesInput{Country: c.String("country")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// reportCmd creates the report command.
func reportCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Print a birth chart as markdown",
		Flags: birthFlags(aspectFlags()...),
		Action: func(c *cli.Context) error {
			output, err := ops.Chart(cfg, chartInputFromFlags(c))
			if err != nil {
				return outputError(err)
			}
			_, err = io.WriteString(os.Stdout, ops.Report(output))
			return err
		},
	}
}

// webCmd creates the web command.
func webCmd(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the chart web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			bind, port := cfg.WebBind, cfg.WebPort
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			if c.IsSet("port") {
				port = c.Int("port")
			}
			if port <= 0 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("port must be between 1 and 65535, got %d", port)))
			}

			srv, err := web.NewServer(cfg, logger, Version, bind, port)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			return web.Run(srv, logger)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var nErr *errors.NatalError
	if stderrors.As(err, &nErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", nErr.Code, nErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(data), nil
}

// parseBatchInput accepts either a bare array of chart requests or a full
// {"items": [...]} object.
func parseBatchInput(data []byte) (ops.BatchInput, error) {
	var input ops.BatchInput
	if len(data) == 0 {
		return input, errors.NewInvalidRequest("items must not be empty")
	}

	if data[0] == '[' {
		if err := json.Unmarshal(data, &input.Items); err != nil {
			return input, errors.NewInvalidRequest("invalid batch JSON: " + err.Error())
		}
		return input, nil
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, errors.NewInvalidRequest("invalid batch JSON: " + err.Error())
	}
	return input, nil
}

// parseList splits a comma-separated string into a slice.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
