package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// section renders a titled block of the help template.
func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
}

func helpText() string {
	var b strings.Builder

	b.WriteString(section("DESCRIPTION", "\t\t{{.Usage}}"))
	b.WriteString(section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	))
	b.WriteString(section("VERSION", "\t\t{{.Version}}"))
	b.WriteString(section(
		"COMMANDS",
		fmt.Sprintf(
			"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		),
	))
	b.WriteString(section(
		"OPTIONS",
		fmt.Sprintf(
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
			pterm.Green("-{{$element}}"),
			pterm.Green("--{{.Name}} {{.DefaultText}}"),
		),
	))
	b.WriteString(section("ENVIRONMENTAL VARIABLES", "\t\t"+envHelp()))
	b.WriteString(section("TIMER KEYS", "\t\t"+keysHelp()))

	return b.String()
}

func envHelp() string {
	return `
FOCUSTRACK_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

FOCUSTRACK_ENV: use a separate config file, database and log, e.g. FOCUSTRACK_ENV=dev.`
}

func keysHelp() string {
	return `
1-6: select a category. Up/Down: change the duration before choosing a category.

Space: start or pause. R: end the session early. Q: save and quit.

Switching away from the terminal pauses the timer and counts a distraction.`
}
