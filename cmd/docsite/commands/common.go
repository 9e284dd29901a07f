package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file path" default:"docsite.yaml" env:"DOCSITE_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write the built-in site configuration to the config path"`
	Show     ShowCmd     `cmd:"" help:"Print the site configuration"`
	Validate ValidateCmd `cmd:"" help:"Validate the site configuration"`
	Export   ExportCmd   `cmd:"" help:"Render generator configuration files"`
	Rewrite  RewriteCmd  `cmd:"" help:"Apply rewrite rules to content paths"`
	Locale   LocaleCmd   `cmd:"" help:"Resolve the locale for a path or Accept-Language header"`
	Watch    WatchCmd    `cmd:"" help:"Re-export generator configuration whenever the site configuration changes"`

	stdout io.Writer `kong:"-"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Stdout is where commands print their results.
func (c *CLI) Stdout() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}

// SetStdout redirects command output.
func (c *CLI) SetStdout(w io.Writer) { c.stdout = w }

// loadConfig loads and validates the configured file, or returns the built-in
// configuration when builtin is set.
func (c *CLI) loadConfig(builtin bool) (*config.SiteConfig, error) {
	if builtin {
		return config.Default(), nil
	}
	return config.Load(c.Config)
}
