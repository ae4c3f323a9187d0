package suggest

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ActionVerbs are the verbs a suggested bullet must start with.
var ActionVerbs = []string{
	"Developed", "Implemented", "Led", "Increased", "Reduced",
	"Managed", "Created", "Optimized", "Streamlined", "Launched",
}

const (
	bulletPrefix        = "• "
	minLength           = 10
	similarityThreshold = 0.7
)

var (
	bulletPattern   = regexp.MustCompile(`•[^•\n]+`)
	sentencePattern = regexp.MustCompile(`[A-Z][^.!?]*[.!?]`)
	quotePattern    = regexp.MustCompile(`^["']|["']$`)
	nonWordPattern  = regexp.MustCompile(`\W+`)
)

// PostProcess turns raw model output into a single "• " bullet line.
// pickVerb supplies the verb prepended to a bullet that lacks one.
func PostProcess(raw string, existing []string, pickVerb func() string) (string, error) {
	text := strings.TrimSpace(raw)

	if m := bulletPattern.FindString(text); m != "" {
		text = strings.TrimSpace(m)
	} else if m := sentencePattern.FindString(text); m != "" {
		text = bulletPrefix + strings.TrimSpace(m)
	} else if startsWithActionVerb(text) {
		text = bulletPrefix + text
	} else {
		words := strings.Split(text, " ")
		idx := -1
		for i, w := range words {
			if isActionVerb(w) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return "", ErrNoBullet
		}
		text = bulletPrefix + strings.Join(words[idx:], " ")
	}

	text = quotePattern.ReplaceAllString(text, "")
	if !strings.HasPrefix(text, "•") {
		text = bulletPrefix + text
	}

	if utf8.RuneCountInString(text) < minLength || !strings.Contains(text, " ") {
		return "", ErrTooShort
	}

	for _, e := range existing {
		if Similarity(e, text) > similarityThreshold {
			return "", ErrTooSimilar
		}
	}

	body := strings.Replace(text, bulletPrefix, "", 1)
	if !startsWithActionVerb(body) {
		text = bulletPrefix + pickVerb() + " " + body
	}
	return text, nil
}

// Similarity is the share of a's words found in b, over the number of
// distinct words in both.
func Similarity(a, b string) float64 {
	words1 := nonWordPattern.Split(strings.ToLower(a), -1)
	words2 := nonWordPattern.Split(strings.ToLower(b), -1)

	in2 := make(map[string]bool, len(words2))
	union := make(map[string]bool, len(words1)+len(words2))
	for _, w := range words2 {
		in2[w] = true
		union[w] = true
	}

	intersection := 0
	for _, w := range words1 {
		if in2[w] {
			intersection++
		}
		union[w] = true
	}
	return float64(intersection) / float64(len(union))
}

func startsWithActionVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, v := range ActionVerbs {
		if strings.HasPrefix(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

func isActionVerb(word string) bool {
	for _, v := range ActionVerbs {
		if strings.EqualFold(v, word) {
			return true
		}
	}
	return false
}
