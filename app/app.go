// Package app wires the focustrack command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focustrack/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focustrack app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focustrack",
		Usage: `
		Focustrack is a focus timer for the command-line. Pick a category, start
		the countdown and stay in the terminal: switching away pauses the timer
		and counts a distraction. Every session is saved for your statistics.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "list",
				Usage:  "List recorded sessions, newest first",
				Action: listAction,
				Flags: []cli.Flag{
					sinceFlag,
					jsonFlag,
					yamlFlag,
				},
			},
			{
				Name: "stats",
				Usage: `
				Show today's and all-time focus, the last seven days and the time
				spent on each category`,
				Action: statsAction,
				Flags: []cli.Flag{
					jsonFlag,
					serveFlag,
					statsPortFlag,
				},
			},
		},
		Flags: []cli.Flag{
			categoryFlag,
			durationFlag,
			disableNotificationFlag,
			disableSoundFlag,
			sessionCmdFlag,
			driverFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
