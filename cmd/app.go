// Package cmd implements the CLI application to tally election results.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/election"
	"github.com/etnz/election/renderer"
	"github.com/google/subcommands"
)

// Environment variables providing the defaults of the global flags.
const (
	EnvInputDir  = "TALLY_INPUT_DIR"
	EnvOutputDir = "TALLY_OUTPUT_DIR"
)

// NationalFile is the name of the national report in the output folder.
const NationalFile = "TotalNacional.txt"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, "election")
	}
	c.Register(&topicCmd{}, "documentation")
}

// Commands returns the election subcommands.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&countCmd{},
		&districtCmd{},
		&overviewCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inputDir = flag.String("input-dir", envOr(EnvInputDir, "dados"), "Folder containing the district files (*.json)")
var outputDir = flag.String("output-dir", envOr(EnvOutputDir, "resultados"), "Folder where reports are written")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose output")

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// tabulate reads every district file of the input folder.
// A missing input folder is not fatal: the result is simply empty.
func tabulate() *election.Results {
	paths, err := election.FindDistrictFiles(*inputDir)
	if err != nil {
		slog.Warn("no district to tabulate, the national report will be empty", "err", err)
	}
	slog.Debug("district files found", "dir", *inputDir, "count", len(paths))

	res := election.Tabulate(election.ReadDistricts(paths...))
	for _, d := range res.Districts {
		slog.Debug("district tabulated", "district", d.Name, "source", d.Source, "tally", d.Tally)
	}
	for _, err := range res.Failures {
		slog.Error("district skipped", "err", err)
	}
	return res
}

// reportFile returns the report file name of a district.
func reportFile(district string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(district) + ".txt"
}

// reportFiles returns the report file name of each district, in order.
// NationalFile is reserved, and names that clash with an earlier one, ignoring
// case, get a numbered suffix: "Lisboa_2.txt".
func reportFiles(districts []election.DistrictResult) []string {
	used := map[string]bool{strings.ToLower(NationalFile): true}
	files := make([]string, len(districts))
	for i, d := range districts {
		name := reportFile(d.Name)
		base := strings.TrimSuffix(name, ".txt")
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d.txt", base, n)
		}
		if name != reportFile(d.Name) {
			slog.Warn("report file name already taken", "district", d.Name, "file", name)
		}
		used[strings.ToLower(name)] = true
		files[i] = name
	}
	return files
}

// writeReport renders a report into the output folder.
func writeReport(filename string, r *election.Report) error {
	text, err := renderer.RenderReport(r)
	if err != nil {
		return err
	}
	path := filepath.Join(*outputDir, filename)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("error writing report %q: %w", path, err)
	}
	slog.Debug("report written", "path", path)
	return nil
}
