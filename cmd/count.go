package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/election"
	"github.com/etnz/election/renderer"
	"github.com/google/subcommands"
)

// countCmd holds the flags for the 'count' subcommand.
type countCmd struct {
	quiet bool
}

func (*countCmd) Name() string     { return "count" }
func (*countCmd) Synopsis() string { return "tally all districts and write their reports" }
func (*countCmd) Usage() string {
	return `tally count [-q]

  Reads every district file of the input folder, writes one report per
  district and the national report (TotalNacional.txt) in the output folder,
  then displays the national report. A district whose file name is already
  taken gets a numbered suffix, e.g. Lisboa_2.txt.

  A district that cannot be loaded or contains invalid counts is reported and
  skipped: the national report only includes the other districts.
`
}

func (c *countCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Do not display the national report.")
}

func (c *countCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res := tabulate()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output folder %q: %v\n", *outputDir, err)
		return subcommands.ExitFailure
	}

	files := reportFiles(res.Districts)
	for i, d := range res.Districts {
		if err := writeReport(files[i], election.NewDistrictReport(d.Name, d.Tally)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report of district %q: %v\n", d.Name, err)
			return subcommands.ExitFailure
		}
	}

	national := election.NewNationalReport(res.National)
	if err := writeReport(NationalFile, national); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing national report: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.quiet {
		text, err := renderer.RenderReport(national)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(text)
	}

	fmt.Fprintf(os.Stderr, "%d district reports written to %s, %d skipped.\n", len(res.Districts), *outputDir, len(res.Failures))
	return subcommands.ExitSuccess
}
