package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/election"
	"github.com/etnz/election/renderer"
	"github.com/google/subcommands"
)

type districtCmd struct {
	json bool
}

func (*districtCmd) Name() string     { return "district" }
func (*districtCmd) Synopsis() string { return "display the report of a single district file" }
func (*districtCmd) Usage() string {
	return `tally district [-json] <file>

  Tallies a single district file and displays its report. With -json the
  report is printed as JSON, percentages at full precision.
`
}

func (c *districtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
}

func (c *districtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one district file")
		return subcommands.ExitUsageError
	}

	record, err := election.LoadDistrict(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := election.Build(record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in district %q: %v\n", record.Name, err)
		return subcommands.ExitFailure
	}
	report := election.NewDistrictReport(record.Name, t)

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	text, err := renderer.RenderReport(report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(text)
	return subcommands.ExitSuccess
}
