// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/suggest"
	"github.com/jonathan/resume-editor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintDocument outputs a human-readable summary of the resume document.
func (p *Printer) PrintDocument(doc types.ResumeDocument) {
	var sb strings.Builder

	name := doc.CvName
	if name == "" {
		name = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("CV:       %s\n", name))
	if doc.Contact.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Contact.FullName))
	}
	if items := rendering.ContactItems(doc.Contact); len(items) > 0 {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", strings.Join(items, " | ")))
	}
	if loc := rendering.LocationLine(doc.Contact); loc != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", loc))
	}
	sb.WriteString("\n")

	for i, id := range doc.SectionOrder {
		sb.WriteString(fmt.Sprintf("%d. %-10s %s\n", i+1, id.Title(), sectionSummary(doc, id)))
	}

	if len(doc.Experiences) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(doc.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := doc.Experiences[i]
			sb.WriteString(fmt.Sprintf("  [%d] %s @ %s", i, e.Position, e.Company))
			if dates := rendering.DateRange(e.StartDate, e.EndDate); dates != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", dates))
			}
			sb.WriteString("\n")
		}
		if len(doc.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experiences)-maxItemsToShow))
		}
	}

	if len(doc.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(doc.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := doc.Education[i]
			sb.WriteString(fmt.Sprintf("  [%d] %s", i, e.School))
			if e.Degree != "" {
				sb.WriteString(fmt.Sprintf(", %s", e.Degree))
			}
			sb.WriteString("\n")
		}
		if len(doc.Education) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Education)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

func sectionSummary(doc types.ResumeDocument, id types.SectionID) string {
	if !doc.HasContent(id) {
		return "(empty)"
	}
	switch id {
	case types.SectionSummary:
		return fmt.Sprintf("%d line(s)", len(richtext.Lines(richtext.Fragment(doc.Summary))))
	case types.SectionExperience:
		return fmt.Sprintf("%d entries", len(doc.Experiences))
	case types.SectionEducation:
		return fmt.Sprintf("%d entries", len(doc.Education))
	case types.SectionSkills:
		return strings.Join(doc.Skills, ", ")
	case types.SectionCourses:
		return strings.Join(doc.Courses, ", ")
	}
	return ""
}

// PrintStyle outputs the document style and the page metrics it resolves to.
func (p *Printer) PrintStyle(ds types.DocumentStyle) {
	dims := style.ResolvePageDimensions(ds.PageSize)
	cs := style.ResolveContentStyle(ds)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Font:         %s (%s)\n", ds.Font, cs.FontFamily))
	sb.WriteString(fmt.Sprintf("Font size:    %gpt\n", ds.FontSize))
	sb.WriteString(fmt.Sprintf("Line spacing: %g\n", ds.LineSpacing))
	sb.WriteString(fmt.Sprintf("Margins:      %gmm\n", ds.Margins))
	sb.WriteString(fmt.Sprintf("Page:         %s (%g x %g mm)\n", ds.PageSize, dims.WidthMM, dims.HeightMM))
	sb.WriteString(fmt.Sprintf("Content area: %g x %g mm", style.ContentWidthMM(ds), style.ContentHeightMM(ds)))

	p.printBox("DOCUMENT STYLE", sb.String())
}

// PrintStyleAdjustments lists the style values that were clamped.
func (p *Printer) PrintStyleAdjustments(adjusted []*style.InvalidValueError) {
	if len(adjusted) == 0 {
		return
	}

	var sb strings.Builder
	for i, a := range adjusted {
		sb.WriteString(fmt.Sprintf("⚠ %s", a.Error()))
		if i < len(adjusted)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("STYLE VALUES ADJUSTED", sb.String())
}

// PrintPagination outputs the measured heights and the page split.
func (p *Printer) PrintPagination(st pagination.State) {
	var sb strings.Builder

	if !st.Measured {
		sb.WriteString("Measurement unavailable, single page\n")
	}
	sb.WriteString(fmt.Sprintf("Available: %.1fpx  Safe: %.1fpx\n", st.AvailableHeight, st.SafeHeight))
	if st.Measured {
		sb.WriteString(fmt.Sprintf("Total:     %.1fpx\n", st.TotalHeight))
	}
	sb.WriteString("\n")

	for i, id := range st.SectionIDs {
		page := 1
		if st.HasSplit() && i > st.SplitIndex {
			page = 2
		}
		height := "-"
		if i < len(st.SectionHeights) {
			height = fmt.Sprintf("%.1fpx", st.SectionHeights[i])
		}
		sb.WriteString(fmt.Sprintf("p%d  %-10s %s\n", page, id.Title(), height))
	}
	sb.WriteString(fmt.Sprintf("\nPages: %d", st.PageCount()))
	if st.HasSplit() {
		sb.WriteString(fmt.Sprintf(" (split after #%d)", st.SplitIndex+1))
	}

	p.printBox("PAGINATION", sb.String())
}

// PrintSuggestion outputs a generated bullet line.
func (p *Printer) PrintSuggestion(target string, s suggest.Suggestion) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:  %s\n", target))
	sb.WriteString(fmt.Sprintf("Request: %s\n\n", s.RequestID))
	sb.WriteString(s.Line)
	p.printBox("SUGGESTED BULLET", sb.String())
}
