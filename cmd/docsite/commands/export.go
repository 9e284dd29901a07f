package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/export"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Target  []string `short:"t" default:"vitepress" enum:"vitepress,hugo" help:"Generator to export for (repeatable)"`
	Output  string   `short:"o" default:"." help:"Output directory"`
	Builtin bool     `name:"builtin" help:"Export the built-in configuration instead of the config file"`
}

func (e *ExportCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig(e.Builtin)
	if err != nil {
		return err
	}
	paths, err := export.NewWriter(e.Output).WriteAll(context.Background(), cfg, e.Target...)
	if err != nil {
		return err
	}
	for _, p := range paths {
		_, _ = fmt.Fprintln(root.Stdout(), p)
	}
	return nil
}
