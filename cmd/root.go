// Package cmd implements the taskninja command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/taskninja/internal/board"
	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/command"
	"github.com/twiced-technology-gmbh/taskninja/internal/config"
	"github.com/twiced-technology-gmbh/taskninja/internal/logging"
	"github.com/twiced-technology-gmbh/taskninja/internal/output"
	"github.com/twiced-technology-gmbh/taskninja/internal/storage"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagConfigDir string
	flagJSON      bool
	flagCompact   bool
	flagNoColor   bool
	flagVerbose   bool
	flagWatch     bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "taskninja [flags] <operation> [arguments]",
		Short: "A personal task list for the terminal",
		Long: `taskninja keeps an ordered list of tasks with optional descriptions,
due dates, due times and flags. Run "taskninja help" for the operations.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runRoot,
	}

	addGlobalFlags(c.Flags())
	return c
}

func addGlobalFlags(fs *pflag.FlagSet) {
	// Operation arguments such as "-p 2" belong to the operation, not to cobra.
	fs.SetInterspersed(false)
	fs.StringVar(&flagConfigDir, "config-dir", "", "directory holding config.yml (default: user config dir)")
	fs.BoolVar(&flagJSON, "json", false, "output as JSON")
	fs.BoolVar(&flagCompact, "compact", false, "one line per task")
	fs.BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	fs.BoolVar(&flagNoColor, "no-color", false, "disable color output")
	fs.BoolVar(&flagVerbose, "verbose", false, "log debug messages to stderr")
	fs.BoolVar(&flagWatch, "watch", false, "open a live view of the task list")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	if output.Detect(flagJSON, flagCompact) == output.FormatJSON {
		output.JSONErrorFrom(os.Stdout, err)
	} else {
		fmt.Fprintln(os.Stderr, output.Message(err))
	}

	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(2) //nolint:mnd // exit code 2 for internal errors
}

func runRoot(c *cobra.Command, args []string) error {
	a, err := newApp(c.OutOrStdout(), c.ErrOrStderr())
	if err != nil {
		return err
	}
	if flagWatch {
		return a.watch(c.Context())
	}
	return a.run(args)
}

// app holds everything one invocation needs.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	store   *storage.Store
	palette output.Palette
	format  output.Format
	stdout  io.Writer
}

func newApp(stdout, stderr io.Writer) (*app, error) {
	level := ""
	if flagVerbose {
		level = "debug"
	}

	dir, err := resolveDir()
	if err != nil {
		return nil, clierr.New(clierr.InternalError, err.Error())
	}

	cfg, warning := config.LoadOrDefault(dir)
	if level == "" {
		level = cfg.LogLevel
	}
	logger := logging.New(stderr, level)
	switch {
	case warning == nil:
	case errors.Is(warning, config.ErrNotFound):
		logger.Warn("config not found, wrote default", "path", cfg.ConfigPath())
	default:
		logger.Warn("config", "err", warning)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		format: output.Detect(flagJSON, flagCompact),
		stdout: stdout,
	}
	a.palette = output.PlainPalette()
	if colorEnabled(stdout) {
		a.palette = output.NewPalette(cfg.Colors)
	}
	a.store = storage.New(cfg.DataPath(),
		storage.WithLogger(logger),
		storage.WithCalendar(cfg.ICSPath()))
	return a, nil
}

// resolveDir returns the config directory from --config-dir or the
// per-user default.
func resolveDir() (string, error) {
	if flagConfigDir != "" {
		return flagConfigDir, nil
	}
	return config.DefaultDir()
}

// colorEnabled reports whether styling should be written to w.
func colorEnabled(w io.Writer) bool {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) formatOptions() task.FormatOptions {
	return task.FormatOptions{
		Time24Hour:  a.cfg.Time24Hour,
		NumericDate: a.cfg.DateNumerical,
	}
}

func (a *app) renderer() board.Renderer {
	if a.format == output.FormatCompact {
		return output.NewCompactRenderer(a.palette, a.formatOptions())
	}
	return output.NewTaskRenderer(a.palette, a.formatOptions())
}

// run interprets one command line against the stored list and prints the
// response. Operation errors are responses too; only failures outside the
// interpreter are returned.
func (a *app) run(args []string) error {
	unlock, err := a.store.Lock()
	if err != nil {
		return clierr.New(clierr.InternalError, "locking task file: "+err.Error())
	}
	defer func() {
		if err := unlock(); err != nil {
			a.logger.Warn("releasing task file lock failed", "err", err)
		}
	}()

	list := a.store.LoadOrEmpty()
	opts := []command.Option{command.WithLogger(a.logger)}
	if a.cfg.ActivityLog {
		opts = append(opts, command.WithRecorder(board.NewActivityLog(a.cfg.ActivityLogPath())))
	}
	interp := command.New(list, a.store, a.renderer(), opts...)

	res, opErr := interp.Execute(args)
	return a.print(res, opErr)
}

func (a *app) print(res command.Result, opErr error) error {
	if a.format == output.FormatJSON {
		if opErr != nil {
			output.JSONErrorFrom(a.stdout, opErr)
			return nil
		}
		resp := output.SuccessResponse{OK: true, Tasks: res.Tasks}
		if !res.Listing {
			resp.Message = res.Message
		}
		return output.JSON(a.stdout, resp)
	}

	p := output.NewPrinter(a.stdout, a.palette)
	switch {
	case opErr != nil:
		p.Error(opErr)
	case res.Listing:
		p.Listing(res.Message)
	default:
		p.Success(res.Message)
	}
	return nil
}
