package commands

import "git.home.luguber.info/inful/docsite/internal/config"

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format  string `short:"f" default:"yaml" enum:"yaml,json" help:"Output format (yaml or json)"`
	Builtin bool   `name:"builtin" help:"Print the built-in configuration instead of the config file"`
}

func (s *ShowCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig(s.Builtin)
	if err != nil {
		return err
	}
	return config.Encode(root.Stdout(), cfg, config.Format(s.Format))
}
