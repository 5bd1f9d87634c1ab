// Package ui provides themed colours and table output for the terminal
package ui

import (
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Hex colours a value with a "#RRGGBB" colour, or leaves it unstyled if hex
// is malformed.
func Hex(hex string, a any) string {
	rgb, err := pterm.NewRGBFromHEX(hex)
	if err != nil {
		return pterm.Sprint(a)
	}

	return rgb.Sprint(a)
}
