// Command scorectl scores a questionnaire from flags and writes the page QR
// code to disk.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/okian/cogscore/pkg/logger"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	debugFlagName  = "debug"
	formatFlagName = "format"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. Flags keep parse state, so every run gets
// fresh ones.
func newApp(out io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:            "scorectl",
		Version:         fmt.Sprintf("%s (%s - %s)", version, commit, date),
		HideHelpCommand: true,
		Usage:           "Predict a cognitive ability score and render the page QR code",
		Writer:          out,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:  debugFlagName,
				Usage: "Prints verbose logs (optional, default: false)",
			},
			&urfave.StringFlag{
				Name:  formatFlagName,
				Usage: "Output format [json, yaml]",
				Value: formatJSON,
			},
		},
		Commands: []*urfave.Command{
			newScoreCmd(),
			newQRCmd(),
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			if err := logger.InitWithFormat(logger.FormatText, os.Stderr); err != nil {
				return ctx, fmt.Errorf("initializing logging: %w", err)
			}
			level := "warn"
			if cmd.Bool(debugFlagName) {
				level = "debug"
			}
			if err := logger.SetLevelString(level); err != nil {
				return ctx, fmt.Errorf("setting log level: %w", err)
			}
			switch f := cmd.String(formatFlagName); f {
			case formatJSON, formatYAML:
				return ctx, nil
			case "yml":
				return ctx, cmd.Set(formatFlagName, formatYAML)
			default:
				return ctx, fmt.Errorf("unsupported format %q", f)
			}
		},
	}
}

func encode(cmd *urfave.Command, v any) error {
	w := cmd.Root().Writer
	if cmd.String(formatFlagName) == formatYAML {
		return yaml.NewEncoder(w).Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
