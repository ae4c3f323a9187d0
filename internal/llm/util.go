package llm

import "strings"

// CleanText removes markdown code fences and surrounding quotes from a
// plain-text response.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	for _, q := range []string{`"`, `'`, "“", "”"} {
		text = strings.TrimPrefix(text, q)
		text = strings.TrimSuffix(text, q)
	}
	return strings.TrimSpace(text)
}
