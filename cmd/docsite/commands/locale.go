package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/locale"
)

// LocaleCmd implements the 'locale' command.
type LocaleCmd struct {
	Path           string `arg:"" optional:"" help:"Request path to resolve"`
	AcceptLanguage string `short:"a" name:"accept-language" help:"Accept-Language header to negotiate against"`
	Builtin        bool   `name:"builtin" help:"Use the built-in configuration instead of the config file"`
}

func (l *LocaleCmd) Run(root *CLI) error {
	if l.Path == "" && l.AcceptLanguage == "" {
		return fmt.Errorf("a path or --accept-language is required")
	}
	cfg, err := root.loadConfig(l.Builtin)
	if err != nil {
		return err
	}
	res, err := locale.NewResolver(cfg.Locales)
	if err != nil {
		return err
	}

	out := root.Stdout()
	emit := func(source, key string) {
		le, _ := res.Entry(key)
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", source, key, le.Label, le.Lang, le.Link)
	}
	if l.Path != "" {
		emit(l.Path, res.Resolve(l.Path))
	}
	if l.AcceptLanguage != "" {
		emit(l.AcceptLanguage, res.Negotiate(l.AcceptLanguage))
	}
	return nil
}
