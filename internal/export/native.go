package export

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

const (
	mmPerPt        = 25.4 / 72
	sectionGapMM   = 6.0
	entryGapMM     = 4.0
	headerGapMM    = 4.0
	titleRuleGapMM = 1.5
)

// NativeRenderer draws the resume with the PDF core fonts. It needs no
// browser, at the cost of approximate typography. Text that does not fit a
// page is clipped like the preview clips it.
type NativeRenderer struct{}

func (r *NativeRenderer) RenderPDF(ctx context.Context, doc types.ResumeDocument, st pagination.State, opts rendering.DisplayOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Message: "render cancelled", Cause: err}
	}

	w := newPDFWriter(doc.DocumentStyle)
	layout := rendering.NewLayout(doc, st)

	w.page(doc, 1, layout.Page1, opts)
	if len(layout.Page2) > 0 {
		w.page(doc, 2, layout.Page2, opts)
	}

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// CoreFont maps a document font to the closest PDF core font.
func CoreFont(f types.Font) string {
	switch f {
	case types.FontArial, types.FontHelvetica, types.FontCalibri:
		return "Helvetica"
	default:
		return "Times"
	}
}

type pdfWriter struct {
	pdf        *fpdf.Fpdf
	tr         func(string) string
	family     string
	sizePt     float64
	lineMM     float64
	contentW   float64
	bottomMM   float64
	overflowed bool
}

func newPDFWriter(ds types.DocumentStyle) *pdfWriter {
	dims := style.ResolvePageDimensions(ds.PageSize)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: dims.WidthMM, Ht: dims.HeightMM},
	})
	pdf.SetMargins(ds.Margins, ds.Margins, ds.Margins)
	pdf.SetAutoPageBreak(false, ds.Margins)

	return &pdfWriter{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		family:   CoreFont(ds.Font),
		sizePt:   ds.FontSize,
		lineMM:   ds.FontSize * ds.LineSpacing * mmPerPt,
		contentW: style.ContentWidthMM(ds),
		bottomMM: dims.HeightMM - ds.Margins,
	}
}

func (w *pdfWriter) page(doc types.ResumeDocument, number int, sections []types.SectionID, opts rendering.DisplayOptions) {
	w.pdf.AddPage()
	w.overflowed = false

	name := strings.TrimSpace(doc.Contact.FullName)
	if name != "" && (number == 1 || opts.ShowNameOnPage2) {
		w.font("B", w.sizePt*1.5)
		w.line(name, "C", w.sizePt*1.5*mmPerPt*1.2)
	}
	if number > 1 && opts.ShowPageNumbers {
		w.font("B", w.sizePt)
		w.line("Page "+strconv.Itoa(number), "C", w.lineMM)
	}
	if number == 1 {
		w.font("", w.sizePt)
		if items := rendering.ContactItems(doc.Contact); len(items) > 0 {
			w.line(strings.Join(items, " | "), "C", w.lineMM)
		}
		if loc := rendering.LocationLine(doc.Contact); loc != "" {
			w.line(loc, "C", w.lineMM)
		}
	}
	w.pdf.Ln(headerGapMM)

	for _, id := range sections {
		if doc.HasContent(id) {
			w.section(doc, id)
		}
	}
}

func (w *pdfWriter) section(doc types.ResumeDocument, id types.SectionID) {
	w.font("B", w.sizePt)
	w.line(id.Title(), "L", w.lineMM)
	if !w.overflowed {
		y := w.pdf.GetY() + 0.5
		left, _, _, _ := w.pdf.GetMargins()
		w.pdf.Line(left, y, left+w.contentW, y)
		w.pdf.Ln(titleRuleGapMM)
	}

	w.font("", w.sizePt)
	switch id {
	case types.SectionSummary:
		w.fragment(richtext.Fragment(doc.Summary))
	case types.SectionExperience:
		for _, e := range doc.Experiences {
			w.entry(e.Position, rendering.DateRange(e.StartDate, e.EndDate), e.Company, richtext.Fragment(e.Description))
		}
	case types.SectionEducation:
		for _, e := range doc.Education {
			subtitle := strings.Join(nonEmpty(e.Degree, e.Field), " • ")
			w.entry(e.School, rendering.DateRange(e.StartDate, e.EndDate), subtitle, richtext.Fragment(e.Description))
		}
	case types.SectionSkills:
		w.paragraph(strings.Join(doc.Skills, " • "))
	case types.SectionCourses:
		w.paragraph(strings.Join(doc.Courses, " • "))
	}
	w.pdf.Ln(sectionGapMM)
}

func (w *pdfWriter) entry(title, dates, subtitle string, description richtext.Fragment) {
	if !w.fits(w.lineMM) {
		return
	}
	y := w.pdf.GetY()
	w.font("B", w.sizePt)
	w.pdf.CellFormat(w.contentW, w.lineMM, w.tr(title), "", 0, "L", false, 0, "")
	left, _, _, _ := w.pdf.GetMargins()
	w.pdf.SetXY(left, y)
	w.font("", w.sizePt)
	w.pdf.CellFormat(w.contentW, w.lineMM, w.tr(dates), "", 1, "R", false, 0, "")

	if subtitle != "" {
		w.line(subtitle, "L", w.lineMM)
	}
	w.fragment(description)
	w.pdf.Ln(entryGapMM)
}

func (w *pdfWriter) fragment(f richtext.Fragment) {
	for _, l := range richtext.Lines(f) {
		w.paragraph(l)
	}
}

// paragraph writes wrapped text, clipping whole lines at the page bottom.
func (w *pdfWriter) paragraph(text string) {
	for _, l := range w.pdf.SplitText(w.tr(text), w.contentW) {
		if !w.fits(w.lineMM) {
			return
		}
		w.pdf.CellFormat(w.contentW, w.lineMM, l, "", 1, "L", false, 0, "")
	}
}

func (w *pdfWriter) line(text, align string, h float64) {
	if !w.fits(h) {
		return
	}
	w.pdf.CellFormat(w.contentW, h, w.tr(text), "", 1, align, false, 0, "")
}

func (w *pdfWriter) fits(h float64) bool {
	if w.overflowed || w.pdf.GetY()+h > w.bottomMM {
		w.overflowed = true
		return false
	}
	return true
}

func (w *pdfWriter) font(styleStr string, sizePt float64) {
	w.pdf.SetFont(w.family, styleStr, sizePt)
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
