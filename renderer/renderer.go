// Package renderer lays out election reports as text.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/election"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the folder of report templates.
var templates, _ = fs.Sub(templatesFS, "templates")

// RenderReport renders a district or national report.
//
// Both share the same layout: a title, four summary lines and the party
// results. The national report prefixes its summary lines with "Total".
func RenderReport(r *election.Report) (string, error) {
	partials := map[string]string{
		"report_title":   "report_title.md",
		"report_summary": "district_summary.md",
		"report_parties": "district_parties.md",
		"party_lines":    "party_lines.md",
	}
	if r.National {
		partials["report_summary"] = "national_summary.md"
		partials["report_parties"] = "national_parties.md"
	}
	return renderTemplate("report", "report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return "", fmt.Errorf("error reading main template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("error parsing main template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return "", fmt.Errorf("error reading partial template %q: %w", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("error parsing partial template %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
