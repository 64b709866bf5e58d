package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecontent/cmd/sitecontent/commands"
	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Out: os.Stdout}

	ctx := kong.Parse(cli,
		kong.Name("sitecontent"),
		kong.Description("Inspect and validate static site content: URLs, links, summaries and mandatory fields."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)
	if err := ctx.Run(cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
