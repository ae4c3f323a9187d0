package richtext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is an HTML fragment holding a formatted free-text field.
type Fragment string

// Serialize returns the fragment in its stored form.
func Serialize(f Fragment) string {
	return string(f)
}

// Deserialize restores a fragment from its stored form.
func Deserialize(s string) Fragment {
	return Fragment(s)
}

// parse builds a detached <div> holding the fragment's nodes.
func parse(f Fragment) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(string(f)), context)
	if err != nil {
		return nil, &ParseError{Message: "failed to parse fragment", Cause: err}
	}
	root := element(atom.Div)
	for _, n := range nodes {
		detach(n)
		root.AppendChild(n)
	}
	return root, nil
}

// PlainText returns the visible text of f with one newline per line break.
// Offsets of a Range are rune offsets into this string.
func PlainText(f Fragment) string {
	root, err := parse(f)
	if err != nil {
		return ""
	}
	return joinLines(flatten(root))
}

// Lines returns the non-blank visible lines of f, trimmed.
func Lines(f Fragment) []string {
	var out []string
	for _, l := range strings.Split(PlainText(f), "\n") {
		l = strings.TrimSpace(strings.ReplaceAll(l, "\u00a0", " "))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Normalize collapses fragments that carry no visible content, such as a
// lone <br> or empty formatting tags, to the empty fragment. Anything else
// is returned unchanged.
func Normalize(f Fragment) Fragment {
	if f == "" {
		return f
	}
	root, err := parse(f)
	if err != nil {
		return f
	}
	doc := goquery.NewDocumentFromNode(root)
	if doc.Find("a[href], img").Length() > 0 {
		return f
	}
	if isBlank(doc.Text()) {
		return ""
	}
	return f
}

// IsEmpty reports whether f has no visible content.
func IsEmpty(f Fragment) bool {
	return Normalize(f) == ""
}

// AppendLine adds text as a new last line of f. When f ends in a list the
// line becomes a new item of that list.
func AppendLine(f Fragment, text string) (Fragment, error) {
	root, err := parse(Normalize(f))
	if err != nil {
		return f, err
	}
	lines := flatten(root)
	for len(lines) > 0 && lines[len(lines)-1].empty() {
		lines = lines[:len(lines)-1]
	}

	kind := plainLine
	if len(lines) > 0 {
		kind = lines[len(lines)-1].kind
	}
	l := newLine(kind)
	l.holder.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	lines = append(lines, l)

	return Fragment(rebuild(lines)), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " ")) == ""
}
