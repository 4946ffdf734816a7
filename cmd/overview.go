package cmd

import (
	"context"
	"flag"

	"github.com/etnz/election/renderer"
	"github.com/google/subcommands"
)

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display a table of all districts" }
func (*overviewCmd) Usage() string {
	return `tally overview

  Displays one line per district with its turnout shares and leading party,
  the national total, and the districts that were skipped.
`
}

func (*overviewCmd) SetFlags(f *flag.FlagSet) {}

func (*overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.OverviewMarkdown(tabulate()))
	return subcommands.ExitSuccess
}
