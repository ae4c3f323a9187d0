package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/suggest"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewDocument()
	doc.CvName = "backend"
	doc.Contact = types.ContactInfo{FullName: "Ada Lovelace", Email: "ada@example.com", Country: "UK", ShowCountry: true}
	doc.Summary = "one<br>two"
	doc.Experiences = []types.Experience{{Company: "Acme", Position: "Engineer", StartDate: "2020", EndDate: "2022"}}
	doc.Skills = []string{"Go", "SQL"}

	p.PrintDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME DOCUMENT")
	assert.Contains(t, output, "backend")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "ada@example.com")
	assert.Contains(t, output, "Location: UK")
	assert.Contains(t, output, "2 line(s)")
	assert.Contains(t, output, "Engineer @ Acme (2020 - 2022)")
	assert.Contains(t, output, "Go, SQL")
	assert.Contains(t, output, "(empty)")
}

func TestPrintDocument_ManyEntries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.NewDocument()
	for i := 0; i < 8; i++ {
		doc.Experiences = append(doc.Experiences, types.Experience{Company: "Acme"})
	}

	p.PrintDocument(doc)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintStyle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStyle(types.DefaultDocumentStyle())
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT STYLE")
	assert.Contains(t, output, "MERRIWEATHER (merriweather)")
	assert.Contains(t, output, "11pt")
	assert.Contains(t, output, "A4 (210 x 297 mm)")
	assert.Contains(t, output, "170 x 257 mm")
}

func TestPrintStyleAdjustments(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStyleAdjustments(nil)
	assert.Empty(t, buf.String())

	_, adjusted := style.ClampFontSize(40)
	p.PrintStyleAdjustments([]*style.InvalidValueError{adjusted})
	assert.Contains(t, buf.String(), "STYLE VALUES ADJUSTED")
	assert.Contains(t, buf.String(), "fontSize")
}

func TestPrintPagination(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	st := pagination.State{
		SectionIDs:      types.AllSections(),
		SectionHeights:  []float64{100, 900, 0, 0, 0},
		TotalHeight:     1000,
		AvailableHeight: 971.5,
		SafeHeight:      738.3,
		SplitIndex:      0,
		Measured:        true,
	}

	p.PrintPagination(st)
	output := buf.String()

	assert.Contains(t, output, "PAGINATION")
	assert.Contains(t, output, "p1  SUMMARY")
	assert.Contains(t, output, "p2  EXPERIENCE")
	assert.Contains(t, output, "900.0px")
	assert.Contains(t, output, "Pages: 2 (split after #1)")
}

func TestPrintPagination_Unmeasured(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPagination(pagination.SinglePage(types.NewDocument()))

	assert.Contains(t, buf.String(), "Measurement unavailable")
	assert.Contains(t, buf.String(), "Pages: 1")
}

func TestPrintSuggestion(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	id := uuid.New()

	p.PrintSuggestion("experience:0", suggest.Suggestion{RequestID: id, Line: "• Led a team"})

	assert.Contains(t, buf.String(), id.String())
	assert.Contains(t, buf.String(), "• Led a team")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("•", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
	assert.Contains(t, buf.String(), "...")
}
