package richtext

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Command names a formatting operation.
type Command string

const (
	CommandBold          Command = "bold"
	CommandItalic        Command = "italic"
	CommandUnderline     Command = "underline"
	CommandLink          Command = "link"
	CommandUnorderedList Command = "unorderedList"
	CommandOrderedList   Command = "orderedList"
)

// Commands returns the supported command vocabulary.
func Commands() []Command {
	return []Command{CommandBold, CommandItalic, CommandUnderline, CommandLink, CommandUnorderedList, CommandOrderedList}
}

// ParseCommand maps a command name to a Command.
func ParseCommand(name string) (Command, error) {
	for _, c := range Commands() {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", &CommandError{Command: Command(name), Message: "unknown command"}
}

// Range selects visible text by rune offsets, End exclusive.
type Range struct {
	Start int
	End   int
}

// IsEmpty reports whether the range selects nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// inline tags that already satisfy a command, first entry is the one created
var inlineTags = map[Command][]atom.Atom{
	CommandBold:      {atom.B, atom.Strong},
	CommandItalic:    {atom.I, atom.Em},
	CommandUnderline: {atom.U},
	CommandLink:      {atom.A},
}

// Apply returns a new fragment with cmd applied to the text selected by rng.
// The input fragment is not modified. value carries the URL of a link.
func Apply(f Fragment, cmd Command, rng Range, value string) (Fragment, error) {
	if _, inline := inlineTags[cmd]; !inline && cmd != CommandUnorderedList && cmd != CommandOrderedList {
		return f, &CommandError{Command: cmd, Message: "unknown command"}
	}
	value = strings.TrimSpace(value)
	if cmd == CommandLink && value == "" {
		return f, &CommandError{Command: cmd, Message: "link requires a URL"}
	}

	root, err := parse(f)
	if err != nil {
		return f, err
	}
	lines := flatten(root)

	length := utf8.RuneCountInString(joinLines(lines))
	if rng.Start < 0 || rng.End < rng.Start || rng.End > length {
		return f, &RangeError{Range: rng, Length: length}
	}
	if rng.IsEmpty() {
		return f, nil
	}

	switch cmd {
	case CommandUnorderedList:
		applyList(lines, bulletLine, rng)
	case CommandOrderedList:
		applyList(lines, numberedLine, rng)
	default:
		applyInline(lines, inlineTags[cmd], value, rng)
	}

	return Normalize(Fragment(rebuild(lines))), nil
}

type textSpan struct {
	node  *html.Node
	start int
	end   int
}

func applyInline(lines []*line, tags []atom.Atom, href string, rng Range) {
	var targets []textSpan
	offset := 0
	for _, l := range lines {
		for _, n := range textNodes(l.holder) {
			size := utf8.RuneCountInString(n.Data)
			from := max(rng.Start, offset) - offset
			to := min(rng.End, offset+size) - offset
			if from < to && !insideAny(n, tags) {
				targets = append(targets, textSpan{node: n, start: from, end: to})
			}
			offset += size
		}
		offset++
	}

	for _, t := range targets {
		wrap(t, func() *html.Node {
			el := element(tags[0])
			if tags[0] == atom.A {
				el.Attr = []html.Attribute{{Key: "href", Val: href}}
			}
			return el
		})
	}
}

// applyList turns every line touched by rng into an item of the given list
// kind. When all touched lines already are such items they become plain lines.
func applyList(lines []*line, kind listKind, rng Range) {
	var touched []*line
	offset := 0
	for _, l := range lines {
		end := offset + l.length()
		if offset < rng.End && end >= rng.Start {
			touched = append(touched, l)
		}
		offset = end + 1
	}

	target := plainLine
	for _, l := range touched {
		if l.kind != kind {
			target = kind
			break
		}
	}
	for _, l := range touched {
		l.kind = target
	}
}

func wrap(t textSpan, newElement func() *html.Node) {
	runes := []rune(t.node.Data)
	parent := t.node.Parent

	if t.start > 0 {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: string(runes[:t.start])}, t.node)
	}
	el := newElement()
	el.AppendChild(&html.Node{Type: html.TextNode, Data: string(runes[t.start:t.end])})
	parent.InsertBefore(el, t.node)
	if t.end < len(runes) {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: string(runes[t.end:])}, t.node)
	}
	parent.RemoveChild(t.node)
}

func textNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out = append(out, c)
			continue
		}
		out = append(out, textNodes(c)...)
	}
	return out
}

func insideAny(n *html.Node, tags []atom.Atom) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, t := range tags {
			if p.DataAtom == t {
				return true
			}
		}
	}
	return false
}
