package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Tiliavir/timetraveler/internal/config"
	"github.com/Tiliavir/timetraveler/internal/prompt"
	"github.com/Tiliavir/timetraveler/internal/report"
	"github.com/Tiliavir/timetraveler/internal/session"
	"github.com/Tiliavir/timetraveler/internal/timecalc"
	"github.com/Tiliavir/timetraveler/internal/tzcatalog"
)

var (
	rootTimezone string
	rootConfig   string
	rootVerbose  bool
	rootNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "timetraveler",
	Short: "TimeTraveler – calculate the difference between two dates",
	Long: `timetraveler asks for two dates, each in its own timezone, and reports
the time between them in days, weekdays, complete weeks and one extra unit.
Settings are read from ~/.timetraveler/config.toml.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
	SilenceUsage:      true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// exitError carries a process exit code other than 1. Code 2 marks
// environment errors such as an unreadable config file.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func init() {
	rootCmd.PersistentFlags().StringVar(&rootTimezone, "timezone", "", "Default IANA timezone (e.g. Europe/Berlin); overrides config and host")
	rootCmd.PersistentFlags().StringVar(&rootConfig, "config", "", "Config file (default ~/.timetraveler/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(zonesCmd)
}

// app is the configuration every command shares. It is resolved once in
// setup and only read afterwards.
var app struct {
	cfg      config.Config
	catalog  *tzcatalog.Catalog
	timezone string
	unit     timecalc.Unit
	logger   *log.Logger
	styles   prompt.Styles
}

func setup(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "timetraveler"})
	logger.SetLevel(log.WarnLevel)
	if rootVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	app.logger = logger

	cfg, err := config.Load(rootConfig)
	switch {
	case errors.Is(err, config.ErrNoConfigFile):
		logger.Warn("using default configuration", "err", err)
	case err != nil:
		return &exitError{code: 2, err: err}
	}
	app.cfg = cfg

	catalog, err := tzcatalog.Load()
	if err != nil {
		return &exitError{code: 2, err: fmt.Errorf("loading timezone catalog: %w", err)}
	}
	app.catalog = catalog
	logger.Debug("timezone catalog loaded", "zones", catalog.Len())

	app.timezone = config.ResolveTimezone(rootTimezone, cfg, tzcatalog.HostDefault())
	if err := catalog.Validate(app.timezone); err != nil {
		if rootTimezone != "" {
			return fmt.Errorf("invalid --timezone value: %w", err)
		}
		logger.Warn("falling back to UTC", "err", err)
		app.timezone = "UTC"
	}

	app.unit, err = timecalc.ParseUnit(cfg.DefaultUnit)
	if err != nil {
		logger.Warn("invalid default_unit in config, using days", "err", err)
		app.unit = timecalc.Days
	}

	color := cfg.Color && !rootNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	app.styles = prompt.NewStyles(color)
	logger.Debug("defaults resolved", "timezone", app.timezone, "unit", app.unit, "color", color)
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var p prompt.Prompter
	if term.IsTerminal(int(os.Stdin.Fd())) {
		p = prompt.NewTerminal(os.Stdin, out, app.styles)
	} else {
		p = prompt.NewLine(cmd.InOrStdin(), out, app.styles)
	}

	fmt.Fprintln(out, app.styles.Header.Render("'TimeTraveler'"))
	fmt.Fprintln(out, app.styles.SubHeader.Render("This CLI tool allows you to calculate the difference between two dates"))
	fmt.Fprintln(out)

	s, err := session.New(p, app.catalog, session.Options{
		DefaultTimezone: app.timezone,
		DefaultUnit:     app.unit,
		Logger:          app.logger,
	})
	if err != nil {
		return err
	}

	res, err := s.Run()
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	b := report.Builder{Layout: app.cfg.DisplayLayout, Logger: app.logger}
	r, err := b.Build(res.From, res.To, res.Unit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return report.Render(out, r, "table", app.styles)
}
