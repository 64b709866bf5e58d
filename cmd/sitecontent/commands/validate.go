package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitecontent/internal/content"
	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Files  []string `arg:"" name:"file" help:"Content files to validate" type:"existingfile"`
	Kind   string   `short:"k" default:"article" help:"Kind for files whose metadata has no kind (page, article, quote)"`
	Strict bool     `help:"Exit non-zero when any item would be skipped"`
}

// Run executes the validate command.
func (c *ValidateCmd) Run(g *Global, root *CLI) error {
	kind, err := content.ParseKind(c.Kind)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid --kind").Build()
	}
	s, err := root.LoadSettings()
	if err != nil {
		return err
	}

	st := buildSite(g, s, c.Files, kind, "")
	skipped := 0
	for _, it := range st.items {
		if !content.IsValid(it.content, it.source, g.Logger) {
			skipped++
		}
	}
	if _, err := fmt.Fprintf(g.Out, "%d valid, %d skipped\n", len(st.items)-skipped, skipped); err != nil {
		return err
	}

	if err := root.finish(g); err != nil {
		return err
	}
	if c.Strict && skipped > 0 {
		return ferrors.ValidationError("content items failed validation").
			WithContext(logfields.KeyCount, skipped).
			Build()
	}
	return nil
}
