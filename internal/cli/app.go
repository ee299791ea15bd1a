// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the atlas command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/janderssonse/atlas/internal/adapters/network"
	"github.com/janderssonse/atlas/internal/adapters/restcountries"
	"github.com/janderssonse/atlas/internal/application"
	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/janderssonse/atlas/internal/cli/handlers"
	"github.com/janderssonse/atlas/internal/config"
	"github.com/janderssonse/atlas/internal/console"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/janderssonse/atlas/internal/logging"
	"github.com/janderssonse/atlas/internal/tui"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess        = 0  // Operation completed successfully
	ExitGeneralError   = 1  // Generic failure (catch-all)
	ExitUsageError     = 2  // Invalid command line usage
	ExitConfigError    = 3  // Configuration file error
	ExitNotFoundError  = 5  // Requested country not found
	ExitNetworkError   = 11 // Directory fetch failed
	ExitInterruptError = 14 // User interrupted (Ctrl+C)
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals

// ErrConflictingFormats is returned when more than one output format flag is given.
var ErrConflictingFormats = errors.New("only one of --json, --yaml and --plain may be used")

// CLI holds the parsed global flags and the services built from them.
type CLI struct {
	app    *cli.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	endpoint   string
	pageSize   int
	locale     string
	timeout    time.Duration
	logFile    string
	verbose    bool
	json       bool
	yaml       bool
	plain      bool
	quiet      bool

	cfg      config.Config
	language language.Tag
	pipeline *catalog.Pipeline
	logger   *logging.Logger
	client   *network.HTTPClient
	service  *application.CatalogService
	console  *console.OutputState
}

// NewCLI creates the CLI writing to the process's stdout and stderr.
func NewCLI() *CLI {
	return NewCLIWithWriters(os.Stdout, os.Stderr)
}

// NewCLIWithWriters creates the CLI with custom writers for testing.
func NewCLIWithWriters(stdout, stderr io.Writer) *CLI {
	app := &CLI{
		stdout:  stdout,
		stderr:  stderr,
		console: &console.OutputState{Err: stderr},
	}

	app.app = &cli.Command{
		Name:    "atlas",
		Usage:   "Browse the countries of the world from the terminal",
		Version: getVersion(),
		Suggest: true,
		Description: `Fetches the REST Countries directory once and lets you search it by
official name, sort it alphabetically and page through it.

QUICK START:
  atlas                                  # Interactive catalog
  atlas list --search land --sort desc   # One page as a table
  atlas show SWE                         # Details of one country
  atlas show FRA --field name.nativeName.fra.common

Values missing from the directory are shown as NF.`,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     app.globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return app.initConfig(ctx, cmd)
		},
		After: func(_ context.Context, _ *cli.Command) error {
			app.close()

			return nil
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return domain.NewExitError(ExitUsageError, err.Error(), err)
		},
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// App returns the root command of a CLI writing to stdout and stderr.
func App() *cli.Command {
	return NewCLI().app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

func (app *CLI) globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to the configuration file",
			Value:       config.DefaultConfigPath(),
			Sources:     cli.EnvVars("ATLAS_CONFIG"),
			Destination: &app.configPath,
		},
		&cli.StringFlag{
			Name:        "endpoint",
			Usage:       "country directory URL",
			Sources:     cli.EnvVars("ATLAS_ENDPOINT"),
			Destination: &app.endpoint,
		},
		&cli.IntFlag{
			Name:        "page-size",
			Usage:       "rows per page",
			Destination: &app.pageSize,
		},
		&cli.StringFlag{
			Name:        "locale",
			Usage:       "language used to sort names, e.g. en or sv",
			Destination: &app.locale,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "timeout for the directory fetch (0 = no timeout)",
			Destination: &app.timeout,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "diagnostic log file",
			Destination: &app.logFile,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "debug logging and technical error details",
			Aliases:     []string{"v"},
			Destination: &app.verbose,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "output structured JSON results",
			Aliases:     []string{"j"},
			Destination: &app.json,
		},
		&cli.BoolFlag{
			Name:        "yaml",
			Usage:       "output structured YAML results",
			Destination: &app.yaml,
		},
		&cli.BoolFlag{
			Name:        "plain",
			Usage:       "output tab-separated values without formatting for scripts",
			Destination: &app.plain,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Usage:       "suppress non-essential output",
			Aliases:     []string{"q"},
			Destination: &app.quiet,
		},
	}
}

// createAllCommands creates all CLI commands.
func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createBrowseCommand(),
		app.createListCommand(),
		app.createShowCommand(),
		app.createConfigCommand(),
		app.createVersionCommand(),
	}
}

// initConfig validates the global flags and merges them over the config file.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	formats := 0

	for _, set := range []bool{app.json, app.yaml, app.plain} {
		if set {
			formats++
		}
	}

	if formats > 1 {
		return ctx, domain.NewExitError(ExitUsageError, ErrConflictingFormats.Error(), ErrConflictingFormats)
	}

	app.console.SetMode(app.verbose, app.json || app.yaml, app.plain)

	cfg, err := config.Load(app.configPath)
	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, fmt.Sprintf("Configuration error: %v", err), err)
	}

	if cmd.IsSet("endpoint") {
		cfg.Endpoint = app.endpoint
	}

	if cmd.IsSet("page-size") {
		cfg.PageSize = app.pageSize
	}

	if cmd.IsSet("locale") {
		cfg.Locale = app.locale
	}

	if cmd.IsSet("timeout") {
		cfg.Timeout = app.timeout.String()
	}

	if cmd.IsSet("log-file") {
		cfg.LogFile = app.logFile
	}

	if err := cfg.Validate(); err != nil {
		return ctx, domain.NewExitError(ExitConfigError, fmt.Sprintf("Configuration error: %v", err), err)
	}

	app.cfg = cfg
	app.language, _ = cfg.Language()
	app.pipeline = catalog.NewPipeline(cfg.PageSize, app.language)

	return ctx, nil
}

// connect builds the logger, HTTP client and catalog service on first use.
// Interactive sessions never log to stderr because the TUI owns the terminal.
func (app *CLI) connect(interactive bool) error {
	if app.service != nil {
		return nil
	}

	logger, err := logging.New(logging.Options{
		Path:    app.cfg.LogFile,
		Level:   app.cfg.LogLevel,
		Verbose: app.verbose,
		Stderr:  app.verbose && !interactive,
	})
	if err != nil {
		return domain.NewExitError(ExitConfigError, fmt.Sprintf("Failed to open log: %v", err), err)
	}

	timeout, _ := app.cfg.TimeoutDuration()

	app.logger = logger
	app.client = network.NewHTTPClient(timeout, "atlas/"+getVersion())
	app.service = application.NewCatalogService(
		restcountries.NewSource(app.client, app.cfg.Endpoint),
		logger.Named("catalog"),
	)

	logger.Debug("Catalog service ready",
		zap.String("log", logger.Path()),
		zap.String("endpoint", app.cfg.Endpoint),
		zap.Int("pageSize", app.pipeline.PageSize()))

	return nil
}

// loadCountries fetches the directory for a one-shot command. Unlike the
// TUI, a failed fetch ends the command with a network exit code.
func (app *CLI) loadCountries(ctx context.Context, handler *handlers.BaseHandler) ([]domain.Country, error) {
	if err := app.connect(false); err != nil {
		return nil, err
	}

	app.console.Progressf("Fetching countries from %s", app.cfg.Endpoint)

	countries := app.service.Load(ctx)
	if err := app.service.Err(); err != nil {
		return nil, handler.Fail(ExitNetworkError, err, "")
	}

	if app.verbose {
		app.console.Successf("Loaded %d countries", len(countries))
	}

	return countries, nil
}

func (app *CLI) close() {
	if app.client != nil {
		app.client.CloseIdleConnections()
	}

	if app.logger != nil {
		if err := app.logger.Close(); err != nil {
			app.console.Warningf("%v", err)
		}
	}
}

func (app *CLI) handler() *handlers.BaseHandler {
	return handlers.NewBaseHandler(app.stdout, app.verbose, app.json, app.yaml, app.plain, app.quiet)
}

// defaultAction launches the TUI when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		message := fmt.Sprintf("'%s' is not a command. Run 'atlas --help' to see available commands.", cmd.Args().First())

		return domain.NewExitError(ExitUsageError, message, nil)
	}

	return app.runBrowse(ctx, cmd)
}

func (app *CLI) createBrowseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Open the interactive country catalog (default)",
		Description: `Opens the interactive catalog.

Navigation:
- / to search, esc to leave the search box
- s to toggle the sort order
- ←/→ or h/l to change page, 1-9 to jump to a page
- Enter to show a country, ? for all keys
- q or Ctrl+C to quit`,
		Action: app.runBrowse,
	}
}

// runBrowse handles the browse command.
func (app *CLI) runBrowse(ctx context.Context, _ *cli.Command) error {
	if err := app.connect(true); err != nil {
		return err
	}

	err := tui.LaunchInteractive(ctx, tui.Options{
		Loader:   app.service,
		Pipeline: app.pipeline,
		Language: app.language,
	})
	if err != nil {
		if app.verbose {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), err)
		}

		return domain.NewExitError(ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
	}

	return nil
}

func (app *CLI) createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the configuration in effect as TOML",
		Action: func(_ context.Context, _ *cli.Command) error {
			handler := app.handler()

			if handler.GetOutput().Structured() {
				return handler.GetOutput().Success("", app.cfg)
			}

			data, err := app.cfg.Marshal()
			if err != nil {
				return domain.NewExitError(ExitConfigError, err.Error(), err)
			}

			_, err = app.stdout.Write(data)

			return err
		},
	}
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			return app.handler().GetOutput().Success(getVersion(), map[string]string{"version": getVersion()})
		},
	}
}

// getVersion returns the linked-in version, falling back to module build info.
func getVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}
