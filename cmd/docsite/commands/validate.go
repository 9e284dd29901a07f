package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

func (v *ValidateCmd) Run(root *CLI) error {
	cfg, err := config.Read(root.Config)
	if err != nil {
		return err
	}
	report := config.Validate(cfg)
	slog.Debug("Validated configuration", logfields.Path(root.Config), logfields.Issues(len(report.Issues)))

	out := root.Stdout()
	if v.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, is := range report.Issues {
			_, _ = fmt.Fprintf(out, "%s: %s\n", is.Field, is.Reason)
		}
		if report.OK() {
			_, _ = fmt.Fprintf(out, "%s is valid (snapshot %s)\n", root.Config, cfg.Snapshot()[:12])
		}
	}
	return report.Err()
}
