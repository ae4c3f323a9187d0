package suggest

import (
	"context"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/prompts"
	"github.com/jonathan/resume-editor/internal/richtext"
)

// DefaultRetryDelay is the pause before the single retry of a transient failure.
const DefaultRetryDelay = 2 * time.Second

// Request asks for one new bullet line. ID may be left zero.
type Request struct {
	ID       uuid.UUID
	Context  string
	Existing richtext.Fragment
}

// Suggestion is a generated bullet line and the request it answers.
type Suggestion struct {
	RequestID uuid.UUID
	Line      string
}

// Suggester generates bullet lines through an LLM client.
type Suggester struct {
	Client     llm.Client
	Tier       llm.ModelTier
	RetryDelay time.Duration
	Verbose    bool

	pickVerb func() string
}

// New creates a suggester with the default tier and retry delay.
func New(client llm.Client) *Suggester {
	return &Suggester{
		Client:     client,
		Tier:       llm.TierLite,
		RetryDelay: DefaultRetryDelay,
	}
}

// Suggest generates one bullet line that does not repeat the existing ones.
// A transient failure is retried once after RetryDelay.
func (s *Suggester) Suggest(ctx context.Context, req Request) (Suggestion, error) {
	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	if s.Client == nil {
		return Suggestion{RequestID: id}, &GenerationFailedError{Message: "no language model configured"}
	}

	existing := richtext.Lines(req.Existing)
	prompt, err := BuildPrompt(req.Context, existing)
	if err != nil {
		return Suggestion{RequestID: id}, &GenerationFailedError{Message: "failed to build prompt", Cause: err}
	}

	line, err := s.generate(ctx, prompt, existing)
	if err != nil && llm.IsTransient(err) {
		log.Printf("[SUGGEST] Transient failure for request %s, retrying in %s", id, s.RetryDelay)
		select {
		case <-ctx.Done():
			return Suggestion{RequestID: id}, &GenerationFailedError{Message: "cancelled before retry", Cause: ctx.Err()}
		case <-time.After(s.RetryDelay):
		}
		line, err = s.generate(ctx, prompt, existing)
	}
	if err != nil {
		return Suggestion{RequestID: id}, &GenerationFailedError{Message: "failed to generate bullet point", Cause: err}
	}

	if s.Verbose {
		log.Printf("[SUGGEST] Request %s produced a %d-character line", id, len(line))
	}
	return Suggestion{RequestID: id, Line: line}, nil
}

func (s *Suggester) generate(ctx context.Context, prompt string, existing []string) (string, error) {
	raw, err := s.Client.GenerateContent(ctx, prompt, s.Tier)
	if err != nil {
		return "", err
	}
	pick := s.pickVerb
	if pick == nil {
		pick = randomVerb
	}
	return PostProcess(llm.CleanText(raw), existing, pick)
}

func randomVerb() string {
	return ActionVerbs[rand.IntN(len(ActionVerbs))]
}

// BuildPrompt fills the bullet prompt with the context and the existing lines.
func BuildPrompt(context string, existing []string) (string, error) {
	tmpl, err := prompts.Get(prompts.SuggestFile, prompts.KeyBulletPoint)
	if err != nil {
		return "", err
	}

	existingText := ""
	if len(existing) > 0 {
		section, err := prompts.Get(prompts.SuggestFile, prompts.KeyExistingBullets)
		if err != nil {
			return "", err
		}
		trimmed := make([]string, len(existing))
		for i, e := range existing {
			trimmed[i] = strings.TrimSpace(e)
		}
		existingText = prompts.Format(section, map[string]string{"Bullets": strings.Join(trimmed, "\n")})
	}

	return prompts.Format(tmpl, map[string]string{
		"Context":     strings.TrimSpace(context),
		"Existing":    existingText,
		"ActionVerbs": strings.Join(ActionVerbs, ", "),
	}), nil
}

// Tracker remembers the latest request per target so that late answers to
// superseded requests can be dropped.
type Tracker struct {
	mu     sync.Mutex
	latest map[string]uuid.UUID
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uuid.UUID)}
}

// Begin starts a new request for target, superseding any earlier one.
func (t *Tracker) Begin(target string) uuid.UUID {
	id := uuid.New()
	t.mu.Lock()
	t.latest[target] = id
	t.mu.Unlock()
	return id
}

// IsCurrent reports whether id is the latest request for target.
func (t *Tracker) IsCurrent(target string, id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[target] == id
}

// Finish forgets target if id is still its latest request.
func (t *Tracker) Finish(target string, id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest[target] == id {
		delete(t.latest, target)
	}
}
