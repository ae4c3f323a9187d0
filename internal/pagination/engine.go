package pagination

import (
	"context"
	"log"

	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

// Engine measures a document and computes its split.
type Engine struct {
	Measurer     Measurer
	SafetyFactor float64
}

// NewEngine creates an engine with the default safety factor.
func NewEngine(m Measurer) *Engine {
	return &Engine{Measurer: m, SafetyFactor: DefaultSafetyFactor}
}

// Paginate never fails: when measurement is unavailable it returns a
// single-page state with Measured set to false.
func (e *Engine) Paginate(ctx context.Context, doc types.ResumeDocument) State {
	if e.Measurer == nil {
		log.Printf("[PAGINATION] No measurer configured, keeping single page")
		return SinglePage(doc)
	}

	m, err := e.Measurer.Measure(ctx, doc)
	if err != nil {
		log.Printf("[PAGINATION] Measurement unavailable: %v", err)
		return SinglePage(doc)
	}
	if m == nil || len(m.Heights) != len(doc.SectionOrder) {
		got := 0
		if m != nil {
			got = len(m.Heights)
		}
		log.Printf("[PAGINATION] Measured %d sections, expected %d, keeping single page", got, len(doc.SectionOrder))
		return SinglePage(doc)
	}

	page := style.ResolvePageDimensions(doc.DocumentStyle.PageSize)
	st := ComputeSplit(m.Heights, m.Total, page.HeightMM, doc.DocumentStyle.Margins, e.safetyFactor())
	st.SectionIDs = append([]types.SectionID(nil), doc.SectionOrder...)
	return st
}

func (e *Engine) safetyFactor() float64 {
	if e.SafetyFactor <= 0 || e.SafetyFactor > 1 {
		return DefaultSafetyFactor
	}
	return e.SafetyFactor
}

// SinglePage returns the unmeasured fallback state for doc.
func SinglePage(doc types.ResumeDocument) State {
	page := style.ResolvePageDimensions(doc.DocumentStyle.PageSize)
	available := style.MMToPx(page.HeightMM) - 2*style.MMToPx(doc.DocumentStyle.Margins)
	return State{
		SectionIDs:      append([]types.SectionID(nil), doc.SectionOrder...),
		AvailableHeight: available,
		SafeHeight:      available * DefaultSafetyFactor,
		SplitIndex:      NoSplit,
	}
}
