package document

import (
	"bytes"
	"encoding/json"
	"log"
	"sync"

	"github.com/jonathan/resume-editor/internal/ordering"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/schemas"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

// Listener receives the committed document after every successful mutation.
type Listener func(doc types.ResumeDocument)

// Store is the single owner of the resume document. Mutations are applied in
// the order they are issued and each replaces only the slice it targets.
// Listeners run synchronously, in commit order, before the next mutation starts.
type Store struct {
	commitMu  sync.Mutex
	mu        sync.RWMutex
	doc       types.ResumeDocument
	listeners []Listener
}

// NewStore creates a store holding a default document.
func NewStore() *Store {
	return &Store{doc: types.NewDocument()}
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() types.ResumeDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Subscribe registers a commit listener.
func (s *Store) Subscribe(l Listener) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()
	s.listeners = append(s.listeners, l)
}

// commit applies mutate to a copy of the document. When mutate reports a
// change, the copy is normalized, installed and handed to the listeners.
func (s *Store) commit(mutate func(doc *types.ResumeDocument) bool) bool {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	next := s.Snapshot()
	if !mutate(&next) {
		return false
	}
	next, adjusted := Normalize(next)
	for _, a := range adjusted {
		log.Printf("[DOCUMENT] %v", a)
	}

	s.mu.Lock()
	s.doc = next
	s.mu.Unlock()

	for _, l := range s.listeners {
		l(next.Clone())
	}
	return true
}

// UpdateContact replaces the contact block.
func (s *Store) UpdateContact(c types.ContactInfo) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.Contact = c
		return true
	})
}

// UpdateExperiences replaces the experience list.
func (s *Store) UpdateExperiences(list []types.Experience) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.Experiences = append([]types.Experience{}, list...)
		return true
	})
}

// UpdateEducation replaces the education list.
func (s *Store) UpdateEducation(list []types.Education) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.Education = append([]types.Education{}, list...)
		return true
	})
}

// UpdateSkills replaces the skill list. Blank and repeated skills are dropped.
func (s *Store) UpdateSkills(list []string) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.Skills = append([]string{}, list...)
		return true
	})
}

// UpdateCourses replaces the course list.
func (s *Store) UpdateCourses(list []string) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.Courses = append([]string{}, list...)
		return true
	})
}

// UpdateSummary replaces the summary fragment.
func (s *Store) UpdateSummary(f richtext.Fragment) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.Summary = richtext.Serialize(f)
		return true
	})
}

// UpdateDocumentStyle merges a partial style update and clamps the result.
// The returned values describe adjustments; they are not failures.
func (s *Store) UpdateDocumentStyle(p style.Patch) []*style.InvalidValueError {
	var adjusted []*style.InvalidValueError
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.DocumentStyle, adjusted = style.Merge(doc.DocumentStyle, p)
		return true
	})
	return adjusted
}

// UpdateCvName sets the document name used for exported files.
func (s *Store) UpdateCvName(name string) {
	s.commit(func(doc *types.ResumeDocument) bool {
		doc.CvName = name
		return true
	})
}

// UpdateExperienceDescription replaces the description of experience i.
func (s *Store) UpdateExperienceDescription(i int, f richtext.Fragment) error {
	var err error
	s.commit(func(doc *types.ResumeDocument) bool {
		if i < 0 || i >= len(doc.Experiences) {
			err = &IndexError{Section: types.SectionExperience, Index: i, Len: len(doc.Experiences)}
			return false
		}
		doc.Experiences[i].Description = richtext.Serialize(f)
		return true
	})
	return err
}

// UpdateEducationDescription replaces the description of education entry i.
func (s *Store) UpdateEducationDescription(i int, f richtext.Fragment) error {
	var err error
	s.commit(func(doc *types.ResumeDocument) bool {
		if i < 0 || i >= len(doc.Education) {
			err = &IndexError{Section: types.SectionEducation, Index: i, Len: len(doc.Education)}
			return false
		}
		doc.Education[i].Description = richtext.Serialize(f)
		return true
	})
	return err
}

// AddSkill appends a skill unless it is blank or already present.
func (s *Store) AddSkill(skill string) bool {
	return s.commit(func(doc *types.ResumeDocument) bool {
		before := len(doc.Skills)
		doc.Skills = uniqueStrings(append(doc.Skills, skill))
		return len(doc.Skills) != before
	})
}

// RemoveSkill removes a skill if present.
func (s *Store) RemoveSkill(skill string) bool {
	return s.commit(func(doc *types.ResumeDocument) bool {
		for i, v := range doc.Skills {
			if v == skill {
				doc.Skills = append(doc.Skills[:i:i], doc.Skills[i+1:]...)
				return true
			}
		}
		return false
	})
}

// MoveSkill moves skill from to the position of skill to.
func (s *Store) MoveSkill(from, to string) bool {
	return s.commit(func(doc *types.ResumeDocument) bool {
		var moved bool
		doc.Skills, moved = ordering.Move(doc.Skills, from, to)
		return moved
	})
}

// MoveSection moves section from to the position of section to.
func (s *Store) MoveSection(from, to types.SectionID) bool {
	return s.commit(func(doc *types.ResumeDocument) bool {
		var moved bool
		doc.SectionOrder, moved = ordering.Move(doc.SectionOrder, from, to)
		return moved
	})
}

// Reset restores the default document.
func (s *Store) Reset() {
	s.commit(func(doc *types.ResumeDocument) bool {
		*doc = types.NewDocument()
		return true
	})
}

// Import replaces the whole document with a serialized one. On failure the
// current document is left untouched and no listener runs.
func (s *Store) Import(data []byte) error {
	doc, err := Decode(data)
	if err != nil {
		return err
	}
	s.commit(func(current *types.ResumeDocument) bool {
		*current = doc
		return true
	})
	return nil
}

// Export serializes the current document.
func (s *Store) Export() ([]byte, error) {
	return Encode(s.Snapshot())
}

// Decode parses and normalizes a serialized document. Fields missing from
// the payload keep their default values.
func Decode(data []byte) (types.ResumeDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return types.ResumeDocument{}, &MalformedDocumentError{Message: "empty payload"}
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return types.ResumeDocument{}, &MalformedDocumentError{Message: "schema validation failed", Cause: err}
	}

	doc := types.NewDocument()
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.ResumeDocument{}, &MalformedDocumentError{Message: "failed to decode JSON", Cause: err}
	}

	doc, adjusted := Normalize(doc)
	for _, a := range adjusted {
		log.Printf("[DOCUMENT] Import: %v", a)
	}

	if err := ordering.ValidateSectionOrder(doc.SectionOrder); err != nil {
		return types.ResumeDocument{}, &MalformedDocumentError{Message: "invalid section order", Cause: err}
	}
	if err := doc.Validate(); err != nil {
		return types.ResumeDocument{}, &MalformedDocumentError{Message: "document invariants violated", Cause: err}
	}
	return doc, nil
}

// Encode serializes a document deterministically: two-space indentation and
// a trailing newline.
func Encode(doc types.ResumeDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
