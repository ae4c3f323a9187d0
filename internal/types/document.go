// Package types provides type definitions for the resume document and its settings.
package types

import (
	"github.com/go-playground/validator/v10"
)

// SectionID identifies one of the top-level resume sections.
type SectionID string

// Section identifiers. The section order is always a permutation of these five.
const (
	SectionSummary    SectionID = "summary"
	SectionExperience SectionID = "experience"
	SectionEducation  SectionID = "education"
	SectionSkills     SectionID = "skills"
	SectionCourses    SectionID = "courses"
)

// AllSections returns the section identifiers in their default order.
func AllSections() []SectionID {
	return []SectionID{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionCourses}
}

// Title returns the heading printed above the section.
func (s SectionID) Title() string {
	switch s {
	case SectionSummary:
		return "SUMMARY"
	case SectionExperience:
		return "EXPERIENCE"
	case SectionEducation:
		return "EDUCATION"
	case SectionSkills:
		return "SKILLS"
	case SectionCourses:
		return "COURSES"
	default:
		return string(s)
	}
}

// IsKnown reports whether s is one of the five section identifiers.
func (s SectionID) IsKnown() bool {
	for _, id := range AllSections() {
		if id == s {
			return true
		}
	}
	return false
}

// ContactInfo holds the header fields of the resume.
type ContactInfo struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedIn    string `json:"linkedin"`
	Website     string `json:"website"`
	Country     string `json:"country"`
	State       string `json:"state"`
	ShowCountry bool   `json:"showCountry"`
	ShowState   bool   `json:"showState"`
}

// Experience is one entry of the experience section. Description is an HTML fragment.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one entry of the education section. Description is an optional HTML fragment.
type Education struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
}

// ResumeDocument is the root aggregate persisted as a single JSON blob.
type ResumeDocument struct {
	Contact       ContactInfo   `json:"contact"`
	Experiences   []Experience  `json:"experiences"`
	Education     []Education   `json:"education"`
	Skills        []string      `json:"skills" validate:"unique"`
	Courses       []string      `json:"courses,omitempty"`
	Summary       string        `json:"summary"`
	DocumentStyle DocumentStyle `json:"documentStyle"`
	CvName        string        `json:"cvName"`
	SectionOrder  []SectionID   `json:"sectionOrder" validate:"len=5,unique,dive,oneof=summary experience education skills courses"`
}

// NewDocument returns an empty document with default style and section order.
func NewDocument() ResumeDocument {
	return ResumeDocument{
		Experiences:   []Experience{},
		Education:     []Education{},
		Skills:        []string{},
		DocumentStyle: DefaultDocumentStyle(),
		SectionOrder:  AllSections(),
	}
}

// Clone returns a deep copy of the document.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experiences = append([]Experience{}, d.Experiences...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]string{}, d.Skills...)
	if d.Courses != nil {
		out.Courses = append([]string{}, d.Courses...)
	}
	out.SectionOrder = append([]SectionID{}, d.SectionOrder...)
	return out
}

// HasContent reports whether the given section has anything to render.
func (d ResumeDocument) HasContent(id SectionID) bool {
	switch id {
	case SectionSummary:
		return d.Summary != ""
	case SectionExperience:
		return len(d.Experiences) > 0
	case SectionEducation:
		return len(d.Education) > 0
	case SectionSkills:
		return len(d.Skills) > 0
	case SectionCourses:
		return len(d.Courses) > 0
	default:
		return false
	}
}

// Validate checks the document invariants using the validator.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
