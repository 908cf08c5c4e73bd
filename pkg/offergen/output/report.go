package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

type styles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	warn  lipgloss.Style
	faint lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#FFB347")),
		faint: r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// RenderReport writes a human-readable summary of a generation run:
// one line per document, then any warnings and a count.
func RenderReport(w io.Writer, report *models.Report) error {
	s := newStyles(w)

	var lines []string
	lines = append(lines, s.title.Render("Documenti in "+report.OutputDir))
	for _, o := range report.Outcomes {
		label := filepath.Base(o.Template)
		if o.Record > 0 {
			label = fmt.Sprintf("%s (riga %d)", label, o.Record)
		}
		if o.OK() {
			lines = append(lines, s.ok.Render("  ok    ")+filepath.Base(o.Path)+s.faint.Render("  "+label))
			continue
		}
		lines = append(lines, s.fail.Render("  error ")+label+s.faint.Render("  "+o.Error))
	}
	for _, warning := range report.Warnings {
		lines = append(lines, s.warn.Render("  warn  ")+warning)
	}

	summary := fmt.Sprintf("%d generati, %d falliti", report.Succeeded(), len(report.Failures()))
	if report.RunID != "" {
		summary += s.faint.Render("  run " + report.RunID)
	}
	lines = append(lines, summary)

	_, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, lines...)+"\n")
	return err
}

// RenderVariables writes one line per variable of a sheet: "A1: text" for
// scanned cells, "name = value" for named values and one line per record.
func RenderVariables(w io.Writer, sheet *models.SheetData) error {
	s := newStyles(w)

	var b strings.Builder
	b.WriteString(s.title.Render(sheet.Name))
	if sheet.Range != "" {
		b.WriteString(s.faint.Render("  " + sheet.Range))
	}
	b.WriteString("\n")

	for _, v := range sheet.Variables {
		if v.Scalar() && v.Name == v.Coordinate {
			fmt.Fprintf(&b, "  %s: %s\n", v.Coordinate, models.Display(v.Value))
			continue
		}
		if v.Scalar() {
			fmt.Fprintf(&b, "  %s %s = %s\n", s.faint.Render(v.Coordinate), v.Name, models.Display(v.Value))
			continue
		}
		fields := make([]string, 0, len(sheet.Headers))
		for _, h := range sheet.Headers {
			fields = append(fields, h+"="+models.Display(v.Data[h]))
		}
		fmt.Fprintf(&b, "  %s %s\n", s.faint.Render(fmt.Sprintf("riga %d", v.Row)), strings.Join(fields, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
