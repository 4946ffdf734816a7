package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/election"
	md "github.com/nao1215/markdown"
)

// OverviewMarkdown renders one table with every district and the national
// total, followed by the districts that could not be tabulated.
func OverviewMarkdown(res *election.Results) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Election Overview")

	row := func(r *election.Report) []string {
		leader := "-"
		if p, ok := r.Leader(); ok {
			leader = p.Party + " (" + p.Percent.String() + ")"
		}
		return []string{
			r.Name,
			strconv.Itoa(r.Ballots),
			r.PercentValid.String(),
			r.PercentBlank.String(),
			r.PercentNull.String(),
			leader,
		}
	}

	table := md.TableSet{
		Header: []string{"District", "Voters", "Valid", "Blank", "Null", "Leading party"},
	}
	for _, d := range res.Districts {
		table.Rows = append(table.Rows, row(election.NewDistrictReport(d.Name, d.Tally)))
	}
	table.Rows = append(table.Rows, row(election.NewNationalReport(res.National)))
	doc.Table(table)

	if len(res.Failures) > 0 {
		doc.H2("Skipped districts")
		var items []string
		for _, err := range res.Failures {
			items = append(items, err.Error())
		}
		doc.BulletList(items...)
	}

	return doc.String()
}
