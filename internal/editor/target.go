package editor

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/types"
)

// Target names a rich-text field: the summary or the description of one
// experience or education entry.
type Target struct {
	Section types.SectionID
	Index   int
}

// ParseTarget parses "summary", "experience:N" or "education:N".
func ParseTarget(s string) (Target, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	name, index, hasIndex := strings.Cut(s, ":")

	switch types.SectionID(name) {
	case types.SectionSummary:
		if hasIndex {
			return Target{}, &TargetError{Input: s, Message: "summary takes no index"}
		}
		return Target{Section: types.SectionSummary}, nil
	case types.SectionExperience, types.SectionEducation:
		if !hasIndex {
			return Target{}, &TargetError{Input: s, Message: "missing entry index"}
		}
		i, err := strconv.Atoi(index)
		if err != nil || i < 0 {
			return Target{}, &TargetError{Input: s, Message: "entry index must be a non-negative integer"}
		}
		return Target{Section: types.SectionID(name), Index: i}, nil
	default:
		return Target{}, &TargetError{Input: s, Message: "expected summary, experience:N or education:N"}
	}
}

func (t Target) String() string {
	if t.Section == types.SectionSummary {
		return string(t.Section)
	}
	return string(t.Section) + ":" + strconv.Itoa(t.Index)
}

// fragment returns the current content of t in doc.
func (t Target) fragment(doc types.ResumeDocument) (richtext.Fragment, error) {
	switch t.Section {
	case types.SectionSummary:
		return richtext.Fragment(doc.Summary), nil
	case types.SectionExperience:
		if t.Index >= len(doc.Experiences) {
			return "", &document.IndexError{Section: t.Section, Index: t.Index, Len: len(doc.Experiences)}
		}
		return richtext.Fragment(doc.Experiences[t.Index].Description), nil
	case types.SectionEducation:
		if t.Index >= len(doc.Education) {
			return "", &document.IndexError{Section: t.Section, Index: t.Index, Len: len(doc.Education)}
		}
		return richtext.Fragment(doc.Education[t.Index].Description), nil
	default:
		return "", &TargetError{Input: t.String(), Message: "not a rich-text field"}
	}
}

// update writes f into t through the store.
func (t Target) update(store *document.Store, f richtext.Fragment) error {
	switch t.Section {
	case types.SectionSummary:
		store.UpdateSummary(f)
		return nil
	case types.SectionExperience:
		return store.UpdateExperienceDescription(t.Index, f)
	case types.SectionEducation:
		return store.UpdateEducationDescription(t.Index, f)
	default:
		return &TargetError{Input: t.String(), Message: "not a rich-text field"}
	}
}
