package rendering

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-editor/internal/richtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags are kept as is; other elements are replaced by their children.
var allowedTags = map[atom.Atom]bool{
	atom.B: true, atom.Strong: true, atom.I: true, atom.Em: true, atom.U: true,
	atom.A: true, atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Br: true,
	atom.Div: true, atom.P: true, atom.Span: true,
}

// droppedTags are removed together with their content.
var droppedTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Iframe: true, atom.Object: true,
	atom.Embed: true, atom.Template: true, atom.Noscript: true,
}

// SanitizeFragment reduces a rich-text fragment to the formatting vocabulary
// of the editor so it can be embedded in the preview. Links keep only an
// http, https or mailto href; every other attribute is stripped.
func SanitizeFragment(f richtext.Fragment) template.HTML {
	if f == "" {
		return ""
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(string(f)), context)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(richtext.PlainText(f)))
	}
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		switch {
		case droppedTags[n.DataAtom]:
			s.Remove()
		case !allowedTags[n.DataAtom]:
			s.ReplaceWithSelection(s.Contents())
		case n.DataAtom == atom.A:
			href, _ := s.Attr("href")
			n.Attr = nil
			if safeHref(href) {
				n.Attr = []html.Attribute{{Key: "href", Val: strings.TrimSpace(href)}}
			}
		default:
			n.Attr = nil
		}
	})

	out, err := doc.Html()
	if err != nil {
		return template.HTML(template.HTMLEscapeString(richtext.PlainText(f)))
	}
	return template.HTML(out)
}

func safeHref(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:")
}
