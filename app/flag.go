package app

import "github.com/urfave/cli/v2"

var (
	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Preselect the session category: Studying, Coding, Project, Reading, Revision or Break",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Session duration in minutes, from 1 to 120 (default: 25)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"dn"},
		Usage:   "Disable the system notification that appears after a session ends",
	}

	disableSoundFlag = &cli.BoolFlag{
		Name:    "disable-sound",
		Aliases: []string{"ds"},
		Usage:   "Disable the bell that plays when a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Session database: bolt or sqlite (default: bolt)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error (default: info)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions created after this time (e.g. '3 days ago', '2025-03-01')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the output as YAML",
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the statistics over HTTP instead of printing them",
	}

	statsPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server (default: 1111)",
	}
)
