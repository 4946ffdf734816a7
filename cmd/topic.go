package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/election/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation about input files and reports" }
func (*topicCmd) Usage() string {
	return `tally topic [<topic>...]

  Shows documentation for the given topics, the list of topics by default.
  Use "*" to show every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

// unknownTopics returns the requested topics that have no documentation.
func unknownTopics(requested, known []string) []string {
	var unknown []string
	for _, t := range requested {
		if t != "*" && t != "readme" && !slices.Contains(known, t) {
			unknown = append(unknown, t)
		}
	}
	return unknown
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	known, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	if unknown := unknownTopics(topics, known); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "Unknown topic %s, available topics are: %s\n", strings.Join(unknown, ", "), strings.Join(known, ", "))
		return subcommands.ExitUsageError
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
