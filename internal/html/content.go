// internal/html/content.go
//
// Title and body-text extraction used to build search index entries.

package html

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// ExtractTitle returns the text of the document's first <title>
// element, or "" if it has none.
func ExtractTitle(doc *Document) string {
	title, ok := firstElementByTag(doc, "title")
	if !ok {
		return ""
	}
	return textContent(title)
}

// firstElementByTag returns the first element under doc's root
// matching tag, case-insensitively.
func firstElementByTag(doc *Document, tag string) (*xhtml.Node, bool) {
	if doc == nil || doc.Root == nil {
		return nil, false
	}
	var nodes []*xhtml.Node
	findElementsByTag(doc.Root, tag, &nodes)
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// HasBody reports whether the document contains a <body> element.
func HasBody(doc *Document) bool {
	_, ok := firstElementByTag(doc, "body")
	return ok
}

// BodyText concatenates the text nodes of the first <body> element,
// separated by single spaces, and collapses whitespace. Unlike
// textContent (used for short fragments like titles and link text),
// this explicitly joins each text node with a space so that adjacent
// inline elements don't run their words together.
func BodyText(doc *Document) string {
	body, ok := firstElementByTag(doc, "body")
	if !ok {
		return ""
	}

	var parts []string
	collectTextSpaced(body, &parts)
	return cleanWhitespace(strings.Join(parts, " "))
}
