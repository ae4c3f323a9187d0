package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// DisplayOptions are the preview toggles. They never affect the split.
type DisplayOptions struct {
	ShowPageNumbers bool
	ShowNameOnPage2 bool
}

// Layout assigns sections to pages.
type Layout struct {
	Page1 []types.SectionID
	Page2 []types.SectionID
}

// NewLayout builds the page layout of doc from a pagination state.
func NewLayout(doc types.ResumeDocument, st pagination.State) Layout {
	p1, p2 := pagination.Partition(doc.SectionOrder, st)
	return Layout{Page1: p1, Page2: p2}
}

// TemplateData represents the data structure passed to the preview template
type TemplateData struct {
	Title      string
	Stylesheet template.CSS
	Measure    bool
	Pages      []PageData
}

// PageData is one printed page.
type PageData struct {
	Number    int
	ShowName  bool
	Name      string
	PageLabel string
	Contact   []string
	Location  string
	Sections  []SectionData
}

// SectionData is one rendered section. Empty sections keep a marker element.
type SectionData struct {
	ID      types.SectionID
	Title   string
	Empty   bool
	Body    template.HTML
	Entries []EntryData
	Items   []string
}

// EntryData is one experience or education entry.
type EntryData struct {
	Title       string
	Dates       string
	Subtitle    string
	Description template.HTML
}

var previewTemplate = template.Must(parseTemplate("preview.html.tmpl"))

// parseTemplate reads and parses an embedded template file
func parseTemplate(name string) (*template.Template, error) {
	content, err := templateFiles.ReadFile("templates/" + name)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("template file not found: %s", name),
			Cause:   err,
		}
	}

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// RenderPreview renders the paged preview of doc as a standalone HTML document.
func RenderPreview(doc types.ResumeDocument, layout Layout, opts DisplayOptions) (string, error) {
	pages := []PageData{buildPage(doc, 1, layout.Page1, opts)}
	if len(layout.Page2) > 0 {
		pages = append(pages, buildPage(doc, 2, layout.Page2, opts))
	}
	return execute(TemplateData{
		Title:      documentTitle(doc),
		Stylesheet: stylesheet(doc.DocumentStyle),
		Pages:      pages,
	})
}

// RenderMeasureHTML renders every section on a single page of unbounded
// height, at the real content width, for measurement.
func RenderMeasureHTML(doc types.ResumeDocument) (string, error) {
	return execute(TemplateData{
		Title:      documentTitle(doc),
		Stylesheet: stylesheet(doc.DocumentStyle),
		Measure:    true,
		Pages:      []PageData{buildPage(doc, 1, doc.SectionOrder, DisplayOptions{})},
	})
}

func execute(data TemplateData) (string, error) {
	var result strings.Builder
	if err := previewTemplate.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

func documentTitle(doc types.ResumeDocument) string {
	if doc.CvName != "" {
		return doc.CvName
	}
	if doc.Contact.FullName != "" {
		return doc.Contact.FullName
	}
	return "Untitled"
}

func buildPage(doc types.ResumeDocument, number int, sections []types.SectionID, opts DisplayOptions) PageData {
	page := PageData{
		Number:   number,
		Name:     doc.Contact.FullName,
		ShowName: doc.Contact.FullName != "" && (number == 1 || opts.ShowNameOnPage2),
	}
	if number > 1 && opts.ShowPageNumbers {
		page.PageLabel = "Page " + strconv.Itoa(number)
	}
	if number == 1 {
		page.Contact = ContactItems(doc.Contact)
		page.Location = LocationLine(doc.Contact)
	}
	for _, id := range sections {
		page.Sections = append(page.Sections, buildSection(doc, id))
	}
	return page
}

func buildSection(doc types.ResumeDocument, id types.SectionID) SectionData {
	sec := SectionData{ID: id, Title: id.Title(), Empty: !doc.HasContent(id)}
	if sec.Empty {
		return sec
	}

	switch id {
	case types.SectionSummary:
		sec.Body = SanitizeFragment(richtext.Fragment(doc.Summary))
	case types.SectionExperience:
		for _, e := range doc.Experiences {
			sec.Entries = append(sec.Entries, EntryData{
				Title:       e.Position,
				Dates:       DateRange(e.StartDate, e.EndDate),
				Subtitle:    e.Company,
				Description: SanitizeFragment(richtext.Fragment(e.Description)),
			})
		}
	case types.SectionEducation:
		for _, e := range doc.Education {
			sec.Entries = append(sec.Entries, EntryData{
				Title:       e.School,
				Dates:       DateRange(e.StartDate, e.EndDate),
				Subtitle:    joinNonEmpty(" • ", e.Degree, e.Field),
				Description: SanitizeFragment(richtext.Fragment(e.Description)),
			})
		}
	case types.SectionSkills:
		sec.Items = doc.Skills
	case types.SectionCourses:
		sec.Items = doc.Courses
	}
	return sec
}

// ContactItems returns the non-empty contact values in display order.
func ContactItems(c types.ContactInfo) []string {
	var items []string
	for _, v := range []string{c.Email, c.Phone, c.LinkedIn, c.Website} {
		if v = strings.TrimSpace(v); v != "" {
			items = append(items, v)
		}
	}
	return items
}

// LocationLine returns country and state, each gated by its show flag.
func LocationLine(c types.ContactInfo) string {
	var country, state string
	if c.ShowCountry {
		country = c.Country
	}
	if c.ShowState {
		state = c.State
	}
	return joinNonEmpty(", ", country, state)
}

// DateRange formats an entry's dates as "start - end".
func DateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return strings.TrimSpace(start) + " - " + strings.TrimSpace(end)
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func stylesheet(ds types.DocumentStyle) template.CSS {
	page := style.ResolvePageDimensions(ds.PageSize)
	cs := style.ResolveContentStyle(ds)
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	var sb strings.Builder
	fmt.Fprintf(&sb, "@page { size: %smm %smm; margin: 0; }\n", f(page.WidthMM), f(page.HeightMM))
	sb.WriteString("body { margin: 0; background: #eee; }\n")
	fmt.Fprintf(&sb, ".page { position: relative; width: %smm; height: %smm; margin: 0 auto; overflow: hidden; background: white; color: black; "+
		"font-family: \"%s\", serif; font-size: %spt; line-height: %s; break-after: page; }\n",
		f(page.WidthMM), f(page.HeightMM), cs.FontFamily, f(cs.FontSizePt), f(cs.LineHeight))
	sb.WriteString(".page:last-child { break-after: auto; }\n")
	fmt.Fprintf(&sb, ".page-content { position: absolute; top: %[1]smm; left: %[1]smm; right: %[1]smm; bottom: %[1]smm; overflow: hidden; }\n", f(ds.Margins))
	fmt.Fprintf(&sb, ".measure .page { height: auto; }\n.measure .page-content { position: static; padding: 0 %smm; overflow: visible; }\n", f(ds.Margins))
	fmt.Fprintf(&sb, ".page-header { text-align: center; margin-bottom: 16px; }\n.full-name { font-size: %spt; font-weight: bold; }\n", f(cs.FontSizePt*1.5))
	sb.WriteString(".page-number { font-weight: bold; }\n")
	sb.WriteString(".contact, .location { text-align: center; margin-bottom: 8px; }\n.contact .sep { margin: 0 6px; }\n")
	sb.WriteString(".resume-section { margin-bottom: 24px; }\n.resume-section.empty { margin: 0; }\n")
	sb.WriteString(".section-title { font-weight: bold; border-bottom: 1px solid black; margin-bottom: 8px; }\n")
	sb.WriteString(".entry { margin-bottom: 16px; }\n.entry-head { display: flex; justify-content: space-between; align-items: baseline; }\n")
	sb.WriteString(".entry-title { font-weight: bold; }\n.entry-subtitle { margin-bottom: 8px; }\n")
	sb.WriteString(".rich ul, .rich ol { margin: 0; padding-left: 1.2em; }\n")
	return template.CSS(sb.String())
}
