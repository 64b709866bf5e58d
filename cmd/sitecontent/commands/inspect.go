package commands

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecontent/internal/content"
	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
)

// InspectCmd implements the 'inspect' command.
type InspectCmd struct {
	Files   []string `arg:"" name:"file" help:"Content files; files without a renderer are indexed as static files" type:"existingfile"`
	Kind    string   `short:"k" default:"article" help:"Kind for files whose metadata has no kind (page, article, quote)"`
	SiteURL string   `name:"siteurl" help:"Rewrite links against this site URL instead of SITEURL"`
	JSON    bool     `help:"Emit JSON instead of a YAML stream"`
}

type report struct {
	File         string   `json:"file" yaml:"file"`
	Kind         string   `json:"kind" yaml:"kind"`
	Title        string   `json:"title,omitempty" yaml:"title,omitempty"`
	Slug         string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	Lang         string   `json:"lang,omitempty" yaml:"lang,omitempty"`
	Template     string   `json:"template" yaml:"template"`
	Status       string   `json:"status" yaml:"status"`
	LocaleDate   string   `json:"locale_date,omitempty" yaml:"locale_date,omitempty"`
	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	SaveAs       string   `json:"save_as,omitempty" yaml:"save_as,omitempty"`
	Summary      string   `json:"summary" yaml:"summary"`
	Translations []string `json:"translations,omitempty" yaml:"translations,omitempty"`
	Problems     []string `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Run executes the inspect command.
func (c *InspectCmd) Run(g *Global, root *CLI) error {
	kind, err := content.ParseKind(c.Kind)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid --kind").Build()
	}
	s, err := root.LoadSettings()
	if err != nil {
		return err
	}

	st := buildSite(g, s, c.Files, kind, c.SiteURL)
	reports := make([]report, 0, len(st.items))
	for _, it := range st.items {
		reports = append(reports, describe(it))
	}

	if c.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else if err := writeYAMLStream(g, reports); err != nil {
		return err
	}
	return root.finish(g)
}

func describe(it item) report {
	c := it.content
	r := report{
		File:       it.source,
		Kind:       string(c.Kind()),
		Slug:       c.Slug(),
		Lang:       c.Lang(),
		Template:   c.Template(),
		Status:     string(c.Status()),
		LocaleDate: c.LocaleDate(),
		Summary:    c.Summary(),
	}
	r.Title, _ = c.Title()

	var err error
	if r.URL, err = c.URL(); err != nil {
		r.Problems = append(r.Problems, err.Error())
	}
	if r.SaveAs, err = c.SaveAs(); err != nil {
		r.Problems = append(r.Problems, err.Error())
	}
	if err := c.CheckProperties(); err != nil {
		r.Problems = append(r.Problems, err.Error())
	}
	for _, t := range c.Translations() {
		r.Translations = append(r.Translations, t.Lang()+":"+t.RelativeFilename(""))
	}
	return r
}

// writeYAMLStream writes one YAML document per report.
func writeYAMLStream(g *Global, reports []report) error {
	enc := yaml.NewEncoder(g.Out)
	enc.SetIndent(2)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return enc.Close()
}
