package pagination

import (
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

// NoSplit marks a state whose content fits on one page.
const NoSplit = -1

// DefaultSafetyFactor is the share of the available height that page one is
// allowed to fill once the content overflows. It leaves room for the header
// and for measurement slop.
const DefaultSafetyFactor = 0.76

// State is the derived pagination of a document. It is never persisted.
type State struct {
	SectionIDs      []types.SectionID `json:"sectionIds"`
	SectionHeights  []float64         `json:"sectionHeights"`
	TotalHeight     float64           `json:"totalHeight"`
	AvailableHeight float64           `json:"availableHeight"`
	SafeHeight      float64           `json:"safeHeight"`
	SplitIndex      int               `json:"splitIndex"`
	Measured        bool              `json:"measured"`
}

// HasSplit reports whether the content continues on a second page.
func (s State) HasSplit() bool {
	return s.SplitIndex != NoSplit
}

// PageCount returns 1 or 2.
func (s State) PageCount() int {
	if s.HasSplit() {
		return 2
	}
	return 1
}

// ComputeSplit runs the fitting heuristic over measured section heights (px).
func ComputeSplit(heights []float64, total, pageHeightMM, marginsMM, safetyFactor float64) State {
	available := style.MMToPx(pageHeightMM) - 2*style.MMToPx(marginsMM)
	safe := available * safetyFactor

	st := State{
		SectionHeights:  append([]float64(nil), heights...),
		TotalHeight:     total,
		AvailableHeight: available,
		SafeHeight:      safe,
		SplitIndex:      NoSplit,
		Measured:        true,
	}
	if total <= available {
		return st
	}

	accumulated := 0.0
	for i, h := range heights {
		if accumulated+h > safe {
			if i == 0 {
				st.SplitIndex = 0
			} else {
				st.SplitIndex = i - 1
			}
			return st
		}
		accumulated += h
	}
	return st
}

// Partition assigns section ids to pages. Sections up to and including the
// split index go to page one.
func Partition(order []types.SectionID, st State) (page1, page2 []types.SectionID) {
	if !st.HasSplit() || st.SplitIndex >= len(order)-1 {
		return append([]types.SectionID(nil), order...), nil
	}
	page1 = append([]types.SectionID(nil), order[:st.SplitIndex+1]...)
	page2 = append([]types.SectionID(nil), order[st.SplitIndex+1:]...)
	return page1, page2
}
