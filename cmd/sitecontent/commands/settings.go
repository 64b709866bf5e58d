package commands

import (
	"gopkg.in/yaml.v3"
)

// SettingsCmd implements the 'settings' command.
type SettingsCmd struct{}

// Run prints the effective settings.
func (c *SettingsCmd) Run(g *Global, root *CLI) error {
	s, err := root.LoadSettings()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(g.Out)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return root.finish(g)
}
