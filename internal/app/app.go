// Package app wires configuration, logging, the editing engine and its
// front ends together.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/config"
	"github.com/dshills/richeditor/internal/engine"
	"github.com/dshills/richeditor/internal/engine/attach"
	"github.com/dshills/richeditor/internal/engine/block"
	"github.com/dshills/richeditor/internal/event"
	"github.com/dshills/richeditor/internal/imaging"
	"github.com/dshills/richeditor/internal/logging"
	"github.com/dshills/richeditor/internal/script"
	"github.com/dshills/richeditor/internal/terminal"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// ScriptPath runs a Lua script headlessly instead of the terminal UI.
	ScriptPath string

	// LogOutput receives logs when no log file is configured. The
	// terminal UI owns the screen, so it defaults to io.Discard.
	LogOutput io.Writer

	// ConfigOptions are passed through to config.Load.
	ConfigOptions []config.Option
}

// Application holds the shared components of one editor session.
type Application struct {
	cfg      config.Config
	logger   *zap.Logger
	closeLog func() error
	bus      *event.Bus
	stats    *Stats
	opts     Options
}

// New loads configuration and builds the logger and event bus.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.ConfigOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	logger, closeLog, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		Output:    out,
		Component: "richeditor",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	app := &Application{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		stats:    &Stats{},
		opts:     opts,
	}
	app.bus = event.NewBus(event.WithPanicHandler(func(ev any, r any) {
		logger.Error("event handler panicked", zap.Any("event", ev), zap.Any("recovered", r))
	}))
	if err := app.subscribe(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	return app, nil
}

// Config returns the loaded configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Stats returns the session counters.
func (app *Application) Stats() *Stats {
	return app.stats
}

// Run starts the script runner or the terminal UI, depending on Options.
func (app *Application) Run(ctx context.Context) error {
	if app.opts.ScriptPath != "" {
		return app.RunScript(ctx, app.opts.ScriptPath, os.Stdout)
	}
	return app.RunTerminal(ctx)
}

// Shutdown logs the session summary and closes the logger.
func (app *Application) Shutdown() {
	s := app.stats.Snapshot()
	app.logger.Info("session finished",
		zap.Uint64("inserted", s.BlocksInserted),
		zap.Uint64("removed", s.BlocksRemoved),
		zap.Uint64("textEdits", s.TextEdits),
		zap.Uint64("attached", s.ImagesAttached),
	)
	if err := app.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log: %v\n", err)
	}
}

func (app *Application) editorOptions(extra ...engine.Option) []engine.Option {
	opts := []engine.Option{
		engine.WithBus(app.bus),
		engine.WithLogger(app.logger.Named("engine")),
		engine.WithPlaceholder(app.cfg.Editor.Placeholder),
		engine.WithAttachDelay(app.cfg.Editor.AttachDelay()),
		engine.WithMaxImageWidth(app.cfg.Image.MaxWidth),
	}
	return append(opts, extra...)
}

// RunTerminal runs the interactive terminal UI until the user quits.
func (app *Application) RunTerminal(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	view := terminal.New(screen, terminal.WithLogger(app.logger.Named("terminal")))
	ed := engine.New(app.editorOptions(engine.WithPresenter(view), engine.WithHost(view))...)
	defer func() {
		if err := ed.Close(context.Background()); err != nil {
			app.logger.Warn("closing editor", zap.Error(err))
		}
	}()
	view.Attach(ed)

	return view.Run(ctx)
}

// RunScript runs the Lua script at path against a headless editor and
// writes the final block list to out.
func (app *Application) RunScript(ctx context.Context, path string, out io.Writer) error {
	sched := attach.NewManual()
	host := imageHost{width: script.DefaultViewportWidth}
	ed := engine.New(app.editorOptions(engine.WithScheduler(sched), engine.WithHost(host))...)
	defer func() { _ = ed.Close(ctx) }()

	state := script.NewState(script.WithOutput(out))
	defer state.Close()
	module := script.NewEditorModule(ed,
		script.WithViewportWidth(host.width),
		script.WithFlush(sched.RunPending),
	)
	if err := state.Register(module); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := state.DoFile(path); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	sched.RunPending()
	return script.WriteBlocks(out, ed.Blocks())
}

// imageHost is the engine.Host for headless runs.
type imageHost struct {
	width int
}

func (h imageHost) ViewportWidth() int { return h.width }

func (h imageHost) DecodeImage(path string, maxWidth int) (block.ImageRef, error) {
	return imaging.Decode(path, maxWidth)
}
