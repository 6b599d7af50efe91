package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/benahmedanass/pomodoro/internal/core/config"
	"github.com/benahmedanass/pomodoro/internal/printer"
)

type ConfigCmd struct {
	flags *Flags

	// flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the configuration file",
				UsageText:   "pomodoro config validate [--format text|json]",
				Description: "Validates clocks, durations, theme, data paths, and the cue hook.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})
	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	warnings := cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		return cmd.outputJSON(c, err, warnings)
	}

	return cmd.outputText(printer.Ctx(ctx), err, warnings)
}

func (cmd *ConfigCmd) outputJSON(c *cli.Command, vErr error, warnings []config.ValidationWarning) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []string                   `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    vErr == nil,
		Errors:   flattenErrors(vErr),
		Warnings: warnings,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *ConfigCmd) outputText(p *printer.Printer, vErr error, warnings []config.ValidationWarning) error {
	for _, w := range warnings {
		if w.Item != "" {
			p.Warnf("%s.%s: %s", w.Category, w.Item, w.Message)
			continue
		}
		p.Warnf("%s: %s", w.Category, w.Message)
	}

	if vErr == nil {
		p.Successf("Configuration is valid")
		return nil
	}

	msgs := flattenErrors(vErr)
	for _, m := range msgs {
		p.Errorf("%s", m)
	}
	p.Printf("")
	p.Errorf("%d error(s) found", len(msgs))
	return cli.Exit("", 1)
}

// flattenErrors unwraps criterio field errors into per-field messages.
func flattenErrors(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		var out []string
		for _, fe := range fieldErrs {
			out = append(out, fmt.Sprintf("%s: %s", fe.Field, fe.Err))
		}
		return out
	}

	return []string{err.Error()}
}
