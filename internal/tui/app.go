// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the interactive country catalog.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/janderssonse/atlas/internal/tui/models"
	"github.com/janderssonse/atlas/internal/tui/styles"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents different TUI screens.
type Screen int

// Define screen constants (use models constants for compatibility).
const (
	CatalogScreen Screen = Screen(models.CatalogScreen)
	HelpScreen    Screen = Screen(models.HelpScreen)
)

// Options wires the catalog screen to its data.
type Options struct {
	Loader   models.CountryLoader
	Pipeline *catalog.Pipeline
	Language language.Tag
}

// inputCapturer is implemented by screens that sometimes need plain keys
// such as "q" for themselves.
type inputCapturer interface {
	CapturesInput() bool
}

// App represents the main TUI application following tree-of-models pattern.
// The catalog screen lives for the whole session; other screens are created
// on first use and cached.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	currentScreen Screen
	contentModel  tea.Model
	catalog       *models.Catalog
	models        map[Screen]tea.Model
	ctx           context.Context

	quitting bool
}

// NewApp creates the application with the catalog as its first screen.
func NewApp(ctx context.Context, opts Options) *App {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Pipeline == nil {
		opts.Pipeline = catalog.NewPipeline(catalog.DefaultPageSize, opts.Language)
	}

	app := &App{
		styles:        styles.New(),
		currentScreen: CatalogScreen,
		models:        make(map[Screen]tea.Model),
		ctx:           ctx,
	}

	app.catalog = models.NewCatalog(ctx, app.styles, opts.Loader, opts.Pipeline, opts.Language)
	app.contentModel = app.catalog
	app.models[CatalogScreen] = app.catalog

	return app
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.contentModel.Init()
}

// Update implements the tea.Model interface with global navigation handling.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a, a.broadcast(msg)

	case models.NavigateMsg:
		return a.navigateToScreen(Screen(msg.Screen))

	case tea.KeyMsg:
		return a.handleKeyMessage(msg)

	default:
		return a, a.broadcast(msg)
	}
}

// broadcast sends msg to the catalog and, when another screen is shown, to
// that screen too. The catalog keeps receiving fetch results, spinner ticks
// and resizes while hidden.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	_, cmd := a.catalog.Update(msg)

	if a.currentScreen == CatalogScreen {
		return cmd
	}

	var contentCmd tea.Cmd

	a.contentModel, contentCmd = a.contentModel.Update(msg)
	a.models[a.currentScreen] = a.contentModel

	return tea.Batch(cmd, contentCmd)
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	return a.contentModel.View()
}

// GetCurrentScreen returns the current screen (for testing).
func (a *App) GetCurrentScreen() Screen {
	return a.currentScreen
}

// GetContentModel returns the current content model (for testing).
func (a *App) GetContentModel() tea.Model {
	return a.contentModel
}

// Catalog returns the catalog screen.
func (a *App) Catalog() *models.Catalog {
	return a.catalog
}

// LaunchInteractive starts the interactive TUI interface.
func LaunchInteractive(ctx context.Context, opts Options) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(ctx, opts).Run(ctx)
}

// handleKeyMessage processes global keys first, then delegates to the screen.
func (a *App) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd := a.handleGlobalKeys(msg); cmd != nil {
		return a, cmd
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, cmd
}

// handleGlobalKeys processes global key commands (quit only - idiomatic pattern).
func (a *App) handleGlobalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true

		return tea.Quit
	case "q":
		if capturer, ok := a.contentModel.(inputCapturer); ok && capturer.CapturesInput() {
			return nil
		}

		a.quitting = true

		return tea.Quit
	}

	return nil
}

// navigateToScreen switches to targetScreen, creating and sizing it on first use.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) navigateToScreen(targetScreen Screen) (tea.Model, tea.Cmd) {
	model, exists := a.models[targetScreen]
	if !exists {
		model = a.createModelForScreen(targetScreen)
		a.models[targetScreen] = model
	}

	a.currentScreen = targetScreen
	a.contentModel = model

	var cmds []tea.Cmd

	if !exists {
		cmds = append(cmds, model.Init())
	}

	if a.width > 0 && a.height > 0 {
		var cmd tea.Cmd

		a.contentModel, cmd = a.contentModel.Update(tea.WindowSizeMsg{
			Width:  a.width,
			Height: a.height,
		})
		a.models[targetScreen] = a.contentModel
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// createModelForScreen creates a new model based on the screen type.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) createModelForScreen(screen Screen) tea.Model {
	switch screen {
	case HelpScreen:
		return models.NewHelp(a.styles)
	default:
		return a.catalog
	}
}

// isTerminal checks if stdin and stdout are connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int
}
