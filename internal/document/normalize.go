package document

import (
	"strings"

	"github.com/jonathan/resume-editor/internal/ordering"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

// Normalize brings a document in line with the document invariants: style
// values are clamped, skills are trimmed and deduplicated, empty rich text
// collapses to "" and nil lists become empty. An empty section order is
// replaced by the default one; any other invalid order is left for the
// caller to reject.
func Normalize(doc types.ResumeDocument) (types.ResumeDocument, []*style.InvalidValueError) {
	out := doc.Clone()

	var adjusted []*style.InvalidValueError
	out.DocumentStyle, adjusted = style.Clamp(out.DocumentStyle)

	if out.Experiences == nil {
		out.Experiences = []types.Experience{}
	}
	for i := range out.Experiences {
		out.Experiences[i].Description = normalizeFragment(out.Experiences[i].Description)
	}
	if out.Education == nil {
		out.Education = []types.Education{}
	}
	for i := range out.Education {
		out.Education[i].Description = normalizeFragment(out.Education[i].Description)
	}

	out.Skills = uniqueStrings(out.Skills)
	if len(out.Courses) > 0 {
		out.Courses = nonEmptyStrings(out.Courses)
	}
	out.Summary = normalizeFragment(out.Summary)

	if len(out.SectionOrder) == 0 {
		out.SectionOrder = ordering.DefaultSectionOrder()
	}

	return out, adjusted
}

func normalizeFragment(s string) string {
	return richtext.Serialize(richtext.Normalize(richtext.Deserialize(s)))
}

// uniqueStrings trims values and drops blanks and repeats. The first
// occurrence wins. Comparison is case sensitive.
func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func nonEmptyStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
