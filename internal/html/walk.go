// internal/html/walk.go
//
// Tree-walking and text-normalization primitives shared by the
// extraction functions in this package. Everything here operates on a
// raw golang.org/x/net/html node; the Document wrapper and the
// higher-level extractors (title, body text, hrefs) live in the
// sibling files.

package html

import (
	"strings"
	"unicode"

	xhtml "golang.org/x/net/html"
)

// findElementsByTag appends every element node under n (n included)
// whose tag matches, case-insensitively, to out.
func findElementsByTag(n *xhtml.Node, tag string, out *[]*xhtml.Node) {
	walk(n, func(node *xhtml.Node) {
		if node.Type == xhtml.ElementNode && strings.EqualFold(node.Data, tag) {
			*out = append(*out, node)
		}
	})
}

// walk visits n and every descendant, depth-first, in document order.
func walk(n *xhtml.Node, visit func(*xhtml.Node)) {
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

// textContent returns the whitespace-normalized concatenation of every
// text node under n, with no separator inserted between siblings. Used
// for short fragments like <title> where runs of inline markup aren't
// expected.
func textContent(n *xhtml.Node) string {
	var b strings.Builder
	walk(n, func(node *xhtml.Node) {
		if node.Type == xhtml.TextNode {
			b.WriteString(node.Data)
		}
	})
	return cleanWhitespace(b.String())
}

// collectTextSpaced appends each non-blank text node under n to parts,
// trimmed of leading/trailing whitespace. Used for body text, where
// adjacent inline elements must not have their words run together.
func collectTextSpaced(n *xhtml.Node, parts *[]string) {
	walk(n, func(node *xhtml.Node) {
		if node.Type != xhtml.TextNode {
			return
		}
		if s := strings.TrimSpace(node.Data); s != "" {
			*parts = append(*parts, s)
		}
	})
}

// cleanWhitespace collapses every run of whitespace in s to a single
// space and trims the result.
func cleanWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
