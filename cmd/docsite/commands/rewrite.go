package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/rewrite"
)

// RewriteCmd implements the 'rewrite' command.
type RewriteCmd struct {
	Paths   []string `arg:"" help:"Content paths to rewrite"`
	Builtin bool     `name:"builtin" help:"Use the built-in configuration instead of the config file"`
}

func (r *RewriteCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig(r.Builtin)
	if err != nil {
		return err
	}
	rw, err := rewrite.Compile(cfg.Rewrites)
	if err != nil {
		return err
	}
	for _, p := range r.Paths {
		out, matched := rw.Rewrite(p)
		if matched {
			slog.Debug("Rewrote path", logfields.RewriteFrom(p), logfields.RewriteTo(out))
		}
		_, _ = fmt.Fprintf(root.Stdout(), "%s -> %s\n", p, out)
	}
	return nil
}
