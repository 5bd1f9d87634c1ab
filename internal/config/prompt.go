package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/focustrack/internal/session"
)

const asciiLogo = `
  __                     _                  _    
 / _| ___   ___ _   _ __| |_ _ __ __ _  ___| | __
| |_ / _ \ / __| | | / _| __| '__/ _' |/ __| |/ /
|  _| (_) | (__| |_| \_ \ |_| | | (_| | (__|   < 
|_|  \___/ \___|\__,_|__/\__|_|  \__,_|\___|_|\_\`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Category string
	Duration int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. The prompt is only shown when the config file does not
// exist yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Duration: defaultDuration,
	}

	// Display welcome message
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure focustrack for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'focustrack edit-config' to change any settings.`, " ").
		Render()

	categories := []huh.Option[string]{
		huh.NewOption("Choose for each session", "").Selected(true),
	}

	for _, c := range session.Categories {
		categories = append(categories, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.Duration),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default category").
				Options(categories...).
				Value(&opts.Category),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	if opts.Duration > 0 {
		c.Timer.Duration = opts.Duration
	}

	if opts.Category == "" {
		c.Timer.Category = ""
		return nil
	}

	category, ok := session.ParseCategory(opts.Category)
	if !ok {
		return errUnknownCategory.Fmt(opts.Category, categoryList())
	}

	c.Timer.Category = category

	return nil
}
