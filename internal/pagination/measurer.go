package pagination

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

// Measurement is the rendered height of every section, in the document's
// section order, plus the height of the whole content area (px).
type Measurement struct {
	Heights []float64
	Total   float64
}

// Measurer reports rendered section heights for a document.
type Measurer interface {
	Measure(ctx context.Context, doc types.ResumeDocument) (*Measurement, error)
}

// StaticMeasurer returns fixed heights regardless of the document.
type StaticMeasurer struct {
	Heights []float64
	// Total defaults to the sum of Heights when zero.
	Total float64
}

func (s StaticMeasurer) Measure(ctx context.Context, doc types.ResumeDocument) (*Measurement, error) {
	if len(s.Heights) == 0 {
		return nil, ErrMeasurementUnavailable
	}
	total := s.Total
	if total == 0 {
		for _, h := range s.Heights {
			total += h
		}
	}
	return &Measurement{Heights: append([]float64(nil), s.Heights...), Total: total}, nil
}

const (
	pxPerPt        = 96.0 / 72.0
	avgGlyphEm     = 0.5
	titleScale     = 1.2
	sectionSpacing = 12.0
	entrySpacing   = 6.0
)

// Estimator approximates rendered heights from character counts and the
// resolved style. It has no font metrics and ignores word boundaries.
type Estimator struct{}

func (Estimator) Measure(ctx context.Context, doc types.ResumeDocument) (*Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, &MeasurementError{Message: "estimate cancelled", Cause: err}
	}

	m := newMetrics(doc.DocumentStyle)
	heights := make([]float64, len(doc.SectionOrder))
	total := m.headerHeight(doc.Contact)
	for i, id := range doc.SectionOrder {
		heights[i] = m.sectionHeight(doc, id)
		total += heights[i]
	}
	return &Measurement{Heights: heights, Total: total}, nil
}

type metrics struct {
	lineHeight   float64
	charsPerLine int
}

func newMetrics(ds types.DocumentStyle) metrics {
	cs := style.ResolveContentStyle(ds)
	fontPx := cs.FontSizePt * pxPerPt
	widthPx := style.MMToPx(style.ContentWidthMM(ds))
	cpl := int(widthPx / (fontPx * avgGlyphEm))
	if cpl < 1 {
		cpl = 1
	}
	return metrics{lineHeight: fontPx * cs.LineHeight, charsPerLine: cpl}
}

func (m metrics) lines(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := 0
	for _, l := range strings.Split(text, "\n") {
		runes := utf8.RuneCountInString(l)
		n += max(1, int(math.Ceil(float64(runes)/float64(m.charsPerLine))))
	}
	return n
}

func (m metrics) textHeight(text string) float64 {
	return float64(m.lines(text)) * m.lineHeight
}

func (m metrics) headerHeight(c types.ContactInfo) float64 {
	h := 0.0
	if c.FullName != "" {
		h += m.lineHeight * 1.5
	}
	if c.Email != "" || c.Phone != "" || c.LinkedIn != "" || c.Website != "" {
		h += m.lineHeight
	}
	if (c.ShowCountry && c.Country != "") || (c.ShowState && c.State != "") {
		h += m.lineHeight
	}
	return h
}

func (m metrics) sectionHeight(doc types.ResumeDocument, id types.SectionID) float64 {
	if !doc.HasContent(id) {
		return 0
	}
	h := m.lineHeight*titleScale + sectionSpacing

	switch id {
	case types.SectionSummary:
		h += m.textHeight(richtext.PlainText(richtext.Fragment(doc.Summary)))
	case types.SectionExperience:
		for _, e := range doc.Experiences {
			h += 2*m.lineHeight + entrySpacing
			h += m.textHeight(richtext.PlainText(richtext.Fragment(e.Description)))
		}
	case types.SectionEducation:
		for _, e := range doc.Education {
			h += 2*m.lineHeight + entrySpacing
			h += m.textHeight(richtext.PlainText(richtext.Fragment(e.Description)))
		}
	case types.SectionSkills:
		h += m.textHeight(strings.Join(doc.Skills, ", "))
	case types.SectionCourses:
		h += m.textHeight(strings.Join(doc.Courses, ", "))
	}
	return h
}
