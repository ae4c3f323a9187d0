package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() types.ResumeDocument {
	doc := types.NewDocument()
	doc.Contact = types.ContactInfo{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "",
		Website:     "ada.dev",
		Country:     "United Kingdom",
		State:       "London",
		ShowCountry: true,
		ShowState:   true,
	}
	doc.Summary = "<b>Mathematician</b> <script>alert(1)</script>"
	doc.Experiences = []types.Experience{{Company: "Analytical Engines", Position: "Engineer", StartDate: "1842", EndDate: "1843", Description: "<ul><li>Wrote notes</li></ul>"}}
	doc.Education = []types.Education{{School: "Home", Degree: "Tutoring", Field: "Mathematics"}}
	doc.Skills = []string{"Go", "SQL"}
	return doc
}

func parseHTML(t *testing.T, out string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	return doc
}

func TestRenderPreview_SinglePage(t *testing.T) {
	doc := sampleDocument()
	layout := NewLayout(doc, pagination.State{SplitIndex: pagination.NoSplit})

	out, err := RenderPreview(doc, layout, DisplayOptions{ShowPageNumbers: true})
	require.NoError(t, err)

	html := parseHTML(t, out)
	assert.Equal(t, 1, html.Find(".page").Length())
	assert.Equal(t, "Ada Lovelace", html.Find("#resume-page1 .full-name").Text())
	assert.Equal(t, 0, html.Find(".page-number").Length())

	var ids []string
	html.Find(".resume-section").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-section")
		ids = append(ids, id)
	})
	assert.Equal(t, []string{"summary", "experience", "education", "skills", "courses"}, ids)

	assert.True(t, html.Find(`[data-section="courses"]`).HasClass("empty"))
	assert.Equal(t, "Go • SQL", html.Find(`[data-section="skills"] .items`).Text())
	assert.Equal(t, "Tutoring • Mathematics", html.Find(`[data-section="education"] .entry-subtitle`).Text())
	assert.Equal(t, "1842 - 1843", html.Find(`[data-section="experience"] .entry-dates`).Text())
	assert.Equal(t, 1, html.Find(`[data-section="experience"] .rich ul li`).Length())
	assert.Equal(t, 0, html.Find("script").Length())
	assert.Equal(t, "United Kingdom, London", html.Find(".location").Text())
	assert.Equal(t, 2, html.Find(".contact > span:not(.sep)").Length())
}

func TestRenderPreview_TwoPages(t *testing.T) {
	doc := sampleDocument()
	layout := NewLayout(doc, pagination.State{SplitIndex: 1})

	tests := []struct {
		name         string
		opts         DisplayOptions
		wantName     bool
		wantPageText string
	}{
		{"defaults", DisplayOptions{}, false, ""},
		{"page numbers", DisplayOptions{ShowPageNumbers: true}, false, "Page 2"},
		{"name on page two", DisplayOptions{ShowNameOnPage2: true}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderPreview(doc, layout, tt.opts)
			require.NoError(t, err)

			html := parseHTML(t, out)
			require.Equal(t, 2, html.Find(".page").Length())
			page2 := html.Find("#resume-page2")
			assert.Equal(t, tt.wantName, page2.Find(".full-name").Length() == 1)
			assert.Equal(t, tt.wantPageText, page2.Find(".page-number").Text())
			assert.Equal(t, 0, page2.Find(".contact").Length())
			assert.Equal(t, 2, html.Find("#resume-page1 .resume-section").Length())
			assert.Equal(t, 3, page2.Find(".resume-section").Length())
		})
	}
}

func TestRenderPreview_UsesResolvedStyle(t *testing.T) {
	doc := sampleDocument()
	doc.DocumentStyle.PageSize = types.PageLetter
	doc.DocumentStyle.Font = types.FontTimesNewRoman
	doc.DocumentStyle.Margins = 15

	out, err := RenderPreview(doc, NewLayout(doc, pagination.State{SplitIndex: pagination.NoSplit}), DisplayOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, "width: 216mm; height: 279mm")
	assert.Contains(t, out, `font-family: "times new roman", serif`)
	assert.Contains(t, out, "top: 15mm; left: 15mm; right: 15mm; bottom: 15mm")
	assert.Contains(t, out, "font-size: 11pt")
	assert.Contains(t, out, "font-size: 16.5pt")
}

func TestRenderMeasureHTML(t *testing.T) {
	doc := sampleDocument()
	doc.SectionOrder = []types.SectionID{"skills", "summary", "courses", "education", "experience"}

	out, err := RenderMeasureHTML(doc)
	require.NoError(t, err)

	html := parseHTML(t, out)
	assert.True(t, html.Find("body").HasClass("measure"))
	assert.Equal(t, 1, html.Find("#resume-content").Length())
	first, _ := html.Find(".resume-section").First().Attr("data-section")
	assert.Equal(t, "skills", first)
	assert.Equal(t, 5, html.Find(".resume-section").Length())
}

func TestLocationLine(t *testing.T) {
	tests := []struct {
		name    string
		contact types.ContactInfo
		want    string
	}{
		{"both", types.ContactInfo{Country: "US", State: "CA", ShowCountry: true, ShowState: true}, "US, CA"},
		{"country only", types.ContactInfo{Country: "US", State: "CA", ShowCountry: true}, "US"},
		{"state only", types.ContactInfo{Country: "US", State: "CA", ShowState: true}, "CA"},
		{"hidden", types.ContactInfo{Country: "US", State: "CA"}, ""},
		{"flag without value", types.ContactInfo{State: "CA", ShowCountry: true, ShowState: true}, "CA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationLine(tt.contact))
		})
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2020 - 2022", DateRange("2020", "2022"))
	assert.Equal(t, "2020 - ", DateRange("2020", ""))
	assert.Equal(t, "", DateRange("", ""))
}

func TestSanitizeFragment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"<b>bold</b>", "<b>bold</b>"},
		{`<a href="https://go.dev" onclick="x()">go</a>`, `<a href="https://go.dev">go</a>`},
		{`<a href="javascript:alert(1)">x</a>`, `<a>x</a>`},
		{"<font color=red>red</font>", "red"},
		{"a<script>alert(1)</script>b", "ab"},
		{`<span style="color:red">s</span>`, "<span>s</span>"},
		{"<ul><li>one</li></ul>", "<ul><li>one</li></ul>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(SanitizeFragment(richtext.Fragment(tt.in))), "input %q", tt.in)
	}
}
