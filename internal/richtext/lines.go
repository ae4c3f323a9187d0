package richtext

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// listKind tags a line with the list it belongs to, if any.
type listKind int

const (
	plainLine listKind = iota
	bulletLine
	numberedLine
)

// line is one visual line of a fragment. Its nodes live under holder, a
// detached element that is never serialized itself.
type line struct {
	holder *html.Node
	kind   listKind
}

func newLine(kind listKind) *line {
	return &line{holder: &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}, kind: kind}
}

func (l *line) empty() bool {
	return l.holder.FirstChild == nil
}

func (l *line) text() string {
	var sb strings.Builder
	collectText(l.holder, &sb)
	return sb.String()
}

func (l *line) length() int {
	return utf8.RuneCountInString(l.text())
}

// lineBuilder flattens a node tree into lines. Line breaks come from <br>
// and from block element boundaries; inline elements that contain breaks
// are split into one shallow copy per line.
type lineBuilder struct {
	lines   []*line
	pending bool
}

func newLineBuilder() *lineBuilder {
	return &lineBuilder{lines: []*line{newLine(plainLine)}}
}

func (b *lineBuilder) current() *line {
	return b.lines[len(b.lines)-1]
}

func (b *lineBuilder) add(n *html.Node, kind listKind) {
	if b.pending && !b.current().empty() {
		b.lines = append(b.lines, newLine(kind))
	}
	b.pending = false
	cur := b.current()
	if cur.empty() {
		cur.kind = kind
	}
	detach(n)
	cur.holder.AppendChild(n)
}

func (b *lineBuilder) breakLine(kind listKind) {
	b.lines = append(b.lines, newLine(kind))
	b.pending = false
}

func (b *lineBuilder) startBlock() {
	if !b.current().empty() {
		b.lines = append(b.lines, newLine(plainLine))
	}
	b.pending = false
}

func (b *lineBuilder) endBlock() {
	b.pending = true
}

func (b *lineBuilder) walk(n *html.Node, kind listKind) {
	for _, c := range children(n) {
		switch {
		case c.Type == html.TextNode:
			if isListContainer(n) && strings.TrimSpace(c.Data) == "" {
				continue
			}
			b.add(c, kind)
		case c.Type != html.ElementNode:
			continue
		case c.DataAtom == atom.Br:
			b.breakLine(kind)
		case c.DataAtom == atom.Ul:
			b.startBlock()
			b.walk(c, bulletLine)
			b.endBlock()
		case c.DataAtom == atom.Ol:
			b.startBlock()
			b.walk(c, numberedLine)
			b.endBlock()
		case isBlock(c):
			b.startBlock()
			b.walk(c, kind)
			b.endBlock()
		case hasBreak(c):
			sub := newLineBuilder()
			sub.walk(c, kind)
			for i, sl := range sub.lines {
				if i > 0 {
					b.breakLine(sl.kind)
				}
				if sl.empty() {
					continue
				}
				clone := shallowClone(c)
				moveChildren(sl.holder, clone)
				b.add(clone, sl.kind)
			}
		default:
			b.add(c, kind)
		}
	}
}

// flatten splits the children of root into lines, detaching them from root.
func flatten(root *html.Node) []*line {
	b := newLineBuilder()
	b.walk(root, plainLine)
	return b.lines
}

// rebuild serializes lines back into a fragment. Consecutive list lines of
// the same kind share one list element; plain lines are separated by <br>.
func rebuild(lines []*line) string {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	var list *html.Node
	prev := listKind(-1)

	for _, l := range lines {
		switch l.kind {
		case plainLine:
			list = nil
			if prev == plainLine {
				root.AppendChild(element(atom.Br))
			}
			moveChildren(l.holder, root)
		default:
			if list == nil || prev != l.kind {
				tag := atom.Ul
				if l.kind == numberedLine {
					tag = atom.Ol
				}
				list = element(tag)
				root.AppendChild(list)
			}
			li := element(atom.Li)
			moveChildren(l.holder, li)
			list.AppendChild(li)
		}
		prev = l.kind
	}

	return renderChildren(root)
}

// joinLines returns the visible text of lines joined by newlines.
func joinLines(lines []*line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text()
	}
	return strings.Join(texts, "\n")
}

func collectText(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		collectText(c, sb)
	}
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func moveChildren(from, to *html.Node) {
	for _, c := range children(from) {
		from.RemoveChild(c)
		to.AppendChild(c)
	}
}

func shallowClone(n *html.Node) *html.Node {
	clone := &html.Node{Type: n.Type, Data: n.Data, DataAtom: n.DataAtom, Namespace: n.Namespace}
	clone.Attr = append([]html.Attribute(nil), n.Attr...)
	return clone
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

func isListContainer(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol)
}

var blockAtoms = map[atom.Atom]bool{
	atom.Div: true, atom.P: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Section: true,
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockAtoms[n.DataAtom]
}

func hasBreak(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Br || isBlock(c) || hasBreak(c) {
			return true
		}
	}
	return false
}

// voidAtoms are the elements html.Render closes XHTML style ("<br/>").
var voidAtoms = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true, atom.Embed: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Keygen: true, atom.Link: true,
	atom.Meta: true, atom.Param: true, atom.Source: true, atom.Track: true, atom.Wbr: true,
}

// renderChildren serializes the children of n. Void elements are written as
// "<br>" so untouched markup keeps the form the editor produced it in.
func renderChildren(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(&sb, c)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n *html.Node) {
	if n.Type != html.ElementNode || !hasVoid(n) {
		_ = html.Render(sb, n)
		return
	}
	if voidAtoms[n.DataAtom] {
		var tag strings.Builder
		_ = html.Render(&tag, shallowClone(n))
		sb.WriteString(strings.TrimSuffix(tag.String(), "/>") + ">")
		return
	}

	var empty strings.Builder
	_ = html.Render(&empty, shallowClone(n))
	closing := "</" + n.Data + ">"
	sb.WriteString(strings.TrimSuffix(empty.String(), closing))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c)
	}
	sb.WriteString(closing)
}

// hasVoid reports whether n is or contains a void element.
func hasVoid(n *html.Node) bool {
	if n.Type == html.ElementNode && voidAtoms[n.DataAtom] {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasVoid(c) {
			return true
		}
	}
	return false
}
