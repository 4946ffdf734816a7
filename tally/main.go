package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/etnz/election/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	level := slog.LevelInfo
	if *cmd.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	sub := map[string]*complete.Command{
		"topic": {Args: predict.Set{"readme", "input", "reports", "*"}},
	}
	for _, c := range cmd.Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		flags := make(map[string]complete.Predictor)
		fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = predict.Nothing })
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	sub["district"].Args = predict.Files("*.json")

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"input-dir":  predict.Dirs("*"),
			"output-dir": predict.Dirs("*"),
			"v":          predict.Nothing,
		},
	}
}
