package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/focustrack/internal/alert"
	"github.com/ayoisaiah/focustrack/internal/config"
	"github.com/ayoisaiah/focustrack/internal/logging"
	"github.com/ayoisaiah/focustrack/internal/osutil"
	"github.com/ayoisaiah/focustrack/internal/pathutil"
	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/static"
	"github.com/ayoisaiah/focustrack/internal/ui"
	"github.com/ayoisaiah/focustrack/stats"
	"github.com/ayoisaiah/focustrack/store"
	"github.com/ayoisaiah/focustrack/timer"
	"github.com/ayoisaiah/focustrack/tui"
)

const (
	envNoColor           = "NO_COLOR"
	envFocustrackNoColor = "FOCUSTRACK_NO_COLOR"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var errEmptyEditor = errors.New("no editor configured: set VISUAL or EDITOR")

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves file locations and reads the configuration. The
// first-run prompt is only offered to the timer.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	err := pathutil.Initialize()
	if err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{
		config.WithPaths(configPath, "", pathutil.LogFilePath()),
	}

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	cfg.System.DBPath = pathutil.DBFilePath(cfg.Store.Driver)

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func setupLogging(cfg *config.Config) (*slog.Logger, func() error, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	return logging.Setup(cfg.System.LogPath, level)
}

// defaultAction starts the interactive timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	defer closeLog()

	err = static.Install()
	if err != nil {
		logger.WarnContext(ctx.Context, "unable to install static files", slog.Any("error", err))
	}

	db, err := store.New(cfg.Store.Driver, cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	engine, err := timer.New(
		timer.WithStore(db),
		timer.WithDuration(cfg.Timer.Duration),
		timer.WithLogger(logger),
		timer.WithContext(ctx.Context),
	)
	if err != nil {
		return err
	}

	defer engine.Close()

	if cfg.Timer.Category != "" {
		err = engine.SelectCategory(cfg.Timer.Category)
		if err != nil {
			return err
		}
	}

	alerter := alert.New(alert.Options{
		Cmd:    cfg.Settings.Cmd,
		Icon:   alert.DefaultIcon(),
		Notify: cfg.Notifications.Enabled,
		Sound:  cfg.Notifications.Sound,
	}, logger)

	logger.InfoContext(
		ctx.Context,
		"starting timer",
		slog.Int("duration", cfg.Timer.Duration),
		slog.String("driver", cfg.Store.Driver),
	)

	return tui.Run(ctx.Context, engine, tui.Options{
		Alerter:        alerter,
		Logger:         logger,
		DarkTheme:      cfg.Display.DarkTheme,
		TwentyFourHour: cfg.Settings.TwentyFourHour,
	})
}

// editConfigAction handles the edit-config command which opens the
// configuration file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(runtime.GOOS),
	)

	args, err := shellquote.Split(editor)
	if err != nil {
		return fmt.Errorf("unable to parse editor command: %w", err)
	}

	if len(args) == 0 {
		return errEmptyEditor
	}

	args = append(args, cfg.System.ConfigPath)

	cmd := exec.CommandContext(ctx.Context, args[0], args[1:]...)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// outputFormat picks the format requested with --json or --yaml.
func outputFormat(ctx *cli.Context) string {
	switch {
	case ctx.Bool("json"):
		return formatJSON
	case ctx.Bool("yaml"):
		return formatYAML
	default:
		return formatTable
	}
}

// writeRecords prints records as a table, JSON or YAML.
func writeRecords(
	w io.Writer,
	records []session.Record,
	format string,
	twentyFourHour bool,
) error {
	if records == nil {
		records = []session.Record{}
	}

	switch format {
	case formatJSON:
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	case formatYAML:
		b, err := yaml.Marshal(records)
		if err != nil {
			return err
		}

		_, err = w.Write(b)

		return err
	default:
		return stats.PrintSessions(w, records, twentyFourHour)
	}
}

// listAction handles the list command and prints the recorded sessions,
// optionally limited with --since.
func listAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	since, err := config.Since(ctx, time.Now())
	if err != nil {
		return err
	}

	db, err := store.New(cfg.Store.Driver, cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	var records []session.Record

	if since.IsZero() {
		records, err = db.QueryAll(ctx.Context)
	} else {
		records, err = db.QueryRecent(ctx.Context, since)
	}

	if err != nil {
		return err
	}

	return writeRecords(config.Stdout, records, outputFormat(ctx), cfg.Settings.TwentyFourHour)
}

// statsAction prints the statistics report, or serves it over HTTP with
// --serve.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := store.New(cfg.Store.Driver, cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("serve") {
		logger, closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}

		defer closeLog()

		sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		pterm.Info.Printfln(
			"Serving statistics on http://localhost:%d/api/stats. Press Ctrl+C to stop",
			cfg.Stats.Port,
		)

		return stats.NewServer(db, time.Now, logger).ListenAndServe(sigCtx, cfg.Stats.Port)
	}

	s, err := stats.Compute(ctx.Context, db, time.Now())
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	return s.Render(config.Stdout)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envFocustrackNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focustrack")

	return nil
}
