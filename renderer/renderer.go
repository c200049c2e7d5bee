package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// pages holds every embedded template, named after its file.
var pages = template.Must(template.ParseFS(templates, "*.md"))

// ReportMarkdown renders the Report struct to a markdown string.
func ReportMarkdown(r *Report) string {
	return renderPage("report.md", r)
}

// renderPage executes the page template against data.
// A failure is rendered in place of the page, as a markdown quote.
func renderPage(page string, data any) string {
	var b strings.Builder
	if err := pages.ExecuteTemplate(&b, page, data); err != nil {
		return fmt.Sprintf("> cannot render %s: %v\n", strings.TrimSuffix(page, ".md"), err)
	}
	return b.String()
}
