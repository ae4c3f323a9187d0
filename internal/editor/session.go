package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/richtext"
	"github.com/jonathan/resume-editor/internal/storage"
	"github.com/jonathan/resume-editor/internal/suggest"
	"github.com/jonathan/resume-editor/internal/types"
)

// Options configures a session.
type Options struct {
	Blobs     storage.BlobStore
	Engine    *pagination.Engine
	Suggester *suggest.Suggester
	// Key defaults to storage.DefaultKey.
	Key     string
	Verbose bool
}

// Session owns the document of one editing run. After every commit it
// recomputes pagination from the committed document and then persists it.
type Session struct {
	ctx       context.Context
	store     *document.Store
	engine    *pagination.Engine
	blobs     storage.BlobStore
	key       string
	suggester *suggest.Suggester
	tracker   *suggest.Tracker
	verbose   bool

	mu      sync.RWMutex
	state   pagination.State
	saveErr error
}

// Open restores the saved document, if any, and starts tracking changes.
// A missing document keeps the defaults; so does a malformed one, which is
// logged. ctx bounds the measurement and persistence work of later commits.
func Open(ctx context.Context, opts Options) (*Session, error) {
	if opts.Blobs == nil {
		return nil, fmt.Errorf("a blob store is required")
	}
	engine := opts.Engine
	if engine == nil {
		engine = pagination.NewEngine(pagination.Estimator{})
	}
	key := opts.Key
	if key == "" {
		key = storage.DefaultKey
	}

	s := &Session{
		ctx:       ctx,
		store:     document.NewStore(),
		engine:    engine,
		blobs:     opts.Blobs,
		key:       key,
		suggester: opts.Suggester,
		tracker:   suggest.NewTracker(),
		verbose:   opts.Verbose,
	}

	data, err := opts.Blobs.Load(ctx, key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if s.verbose {
			log.Printf("[SESSION] No saved document under %q, starting empty", key)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load saved document: %w", err)
	default:
		if err := s.store.Import(data); err != nil {
			log.Printf("[SESSION] Ignoring saved document: %v", err)
		} else if s.verbose {
			log.Printf("[SESSION] Restored document from %q", key)
		}
	}

	s.setState(s.engine.Paginate(ctx, s.store.Snapshot()))
	s.store.Subscribe(s.onCommit)
	return s, nil
}

// onCommit runs inside the store's commit, so it never overlaps another commit.
func (s *Session) onCommit(doc types.ResumeDocument) {
	s.setState(s.engine.Paginate(s.ctx, doc))
	s.save(s.ctx, doc)
}

func (s *Session) save(ctx context.Context, doc types.ResumeDocument) {
	data, err := document.Encode(doc)
	if err == nil {
		err = s.blobs.Save(ctx, s.key, data)
	}

	s.mu.Lock()
	s.saveErr = err
	s.mu.Unlock()

	if err != nil {
		log.Printf("[SESSION] Failed to save document: %v", err)
	}
}

func (s *Session) setState(st pagination.State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	if s.verbose {
		log.Printf("[SESSION] Pagination: split=%d measured=%t", st.SplitIndex, st.Measured)
	}
}

// Store returns the document store for targeted updates.
func (s *Session) Store() *document.Store {
	return s.store
}

// Snapshot returns a copy of the current document.
func (s *Session) Snapshot() types.ResumeDocument {
	return s.store.Snapshot()
}

// Pagination returns the state computed after the latest commit.
func (s *Session) Pagination() pagination.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.SectionIDs = append([]types.SectionID(nil), st.SectionIDs...)
	st.SectionHeights = append([]float64(nil), st.SectionHeights...)
	return st
}

// Pages returns the page layout of the current document.
func (s *Session) Pages() rendering.Layout {
	return rendering.NewLayout(s.store.Snapshot(), s.Pagination())
}

// Reset restores the default document.
func (s *Session) Reset() {
	s.store.Reset()
}

// Import replaces the document. A malformed payload leaves it unchanged.
func (s *Session) Import(data []byte) error {
	return s.store.Import(data)
}

// Export serializes the current document.
func (s *Session) Export() ([]byte, error) {
	return s.store.Export()
}

// Flush retries the last save if it failed and returns the remaining error.
func (s *Session) Flush(ctx context.Context) error {
	if s.LastSaveError() == nil {
		return nil
	}
	s.save(ctx, s.store.Snapshot())
	return s.LastSaveError()
}

// LastSaveError returns the error of the most recent save, if any.
func (s *Session) LastSaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveErr
}

// Close releases the blob store.
func (s *Session) Close() error {
	return s.blobs.Close()
}

// Suggest generates a bullet line for target and appends it to the field.
// The field is left untouched on failure, and a result overtaken by a newer
// request for the same target is dropped with ErrStaleSuggestion.
func (s *Session) Suggest(ctx context.Context, target Target, hint string) (suggest.Suggestion, error) {
	if s.suggester == nil {
		return suggest.Suggestion{}, &suggest.GenerationFailedError{Message: "suggestions are not configured"}
	}

	existing, err := target.fragment(s.store.Snapshot())
	if err != nil {
		return suggest.Suggestion{}, err
	}

	key := target.String()
	id := s.tracker.Begin(key)
	defer s.tracker.Finish(key, id)

	sug, err := s.suggester.Suggest(ctx, suggest.Request{ID: id, Context: hint, Existing: existing})
	if err != nil {
		return sug, err
	}
	if !s.tracker.IsCurrent(key, id) {
		return sug, ErrStaleSuggestion
	}

	current, err := target.fragment(s.store.Snapshot())
	if err != nil {
		return sug, err
	}
	updated, err := richtext.AppendLine(current, sug.Line)
	if err != nil {
		return sug, err
	}
	return sug, target.update(s.store, updated)
}

// Field returns the current content of the rich-text field named by target.
func (s *Session) Field(target Target) (richtext.Fragment, error) {
	return target.fragment(s.store.Snapshot())
}

// Format applies a formatting command to the rich-text field named by target.
func (s *Session) Format(target Target, cmd richtext.Command, rng richtext.Range, value string) error {
	current, err := target.fragment(s.store.Snapshot())
	if err != nil {
		return err
	}
	updated, err := richtext.Apply(current, cmd, rng, value)
	if err != nil {
		return err
	}
	if updated == current {
		return nil
	}
	return target.update(s.store, updated)
}
