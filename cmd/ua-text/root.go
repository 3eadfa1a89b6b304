package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/uastack/ua-go/cmd/ua-text/commands"
	"github.com/uastack/ua-go/pkg/log"
)

// errInvalidInput is returned when a command printed an invalid result.
// The result has already been reported so main only sets the exit status.
var errInvalidInput = errors.New("invalid input")

// cli carries the state shared between the root command and subcommands.
type cli struct {
	out io.Writer

	configPath string
	flags      commands.Config

	cfg    commands.Config
	app    *commands.App
	closer io.Closer
}

// run executes ua-text with args and releases the trace log afterwards,
// including when the command failed.
func run(out, errOut io.Writer, args []string) error {
	root, c := newRootCmd(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	if cerr := c.teardown(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(out io.Writer) (*cobra.Command, *cli) {
	c := &cli{out: out}
	def := commands.DefaultConfig()

	root := &cobra.Command{
		Use:           "ua-text",
		Short:         "OPC UA text primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&c.flags.Output, "output", "o", def.Output, "Output format: text, json, yaml, cbor")
	pf.StringVar(&c.flags.LogLevel, "log-level", def.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&c.flags.LogFormat, "log-format", def.LogFormat, "Log format: text, json")
	pf.StringVar(&c.flags.TraceLog, "trace-log", "", "Write trace events to this .ulog file")

	root.AddCommand(
		c.urlCmd(),
		c.numberCmd(),
		c.statusCmd(),
		c.nodeIDCmd(),
		c.logCmd(),
		c.shellCmd(),
	)
	return root, c
}

// setup loads the config file, applies explicitly set flags on top and
// builds the App.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := commands.LoadConfig(c.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("output") {
		cfg.Output = c.flags.Output
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = c.flags.LogLevel
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = c.flags.LogFormat
	}
	if pf.Changed("trace-log") {
		cfg.TraceLog = c.flags.TraceLog
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	logger := newSlogLogger(cmd.ErrOrStderr(), cfg)

	var tracers []log.Logger
	if cfg.TraceLog != "" {
		fl, err := log.NewFileLogger(cfg.TraceLog)
		if err != nil {
			return fmt.Errorf("opening trace log: %w", err)
		}
		c.closer = fl
		tracers = append(tracers, fl)
	}
	// Trace events reach the operational log at debug level as well.
	tracers = append(tracers, log.NewSlogAdapter(logger))

	c.app = commands.NewApp(log.NewMultiLogger(tracers...), logger)
	logger.Debug("ua-text starting", "session_id", c.app.SessionID(), "output", cfg.Output)
	return nil
}

func (c *cli) teardown() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}

func newSlogLogger(w io.Writer, cfg commands.Config) *slog.Logger {
	level, _ := commands.ParseLogLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c *cli) render(v any) error {
	return commands.Render(c.out, c.cfg.Output, v)
}
