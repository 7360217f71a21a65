// internal/html/links.go
//
// Link extraction helpers for the crawl pipeline: raw anchor hrefs
// (classification into gateway/external/relative happens downstream,
// in internal/pipeline, since it needs the current work key) and
// meta-refresh redirect detection inside <noscript> blocks.

package html

import (
	"bytes"
	"strings"

	xhtml "golang.org/x/net/html"
)

// ExtractHrefs returns the href attribute, trimmed of surrounding
// whitespace, of every <a> element that has one, in document order,
// including empty and duplicate values. <a> elements without an href
// are skipped. Callers decide how to classify and resolve each one.
func ExtractHrefs(doc *Document) []string {
	if doc == nil || doc.Root == nil {
		return nil
	}

	var nodes []*xhtml.Node
	findElementsByTag(doc.Root, "a", &nodes)

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		for _, attr := range n.Attr {
			if strings.EqualFold(attr.Key, "href") {
				out = append(out, strings.TrimSpace(attr.Val))
				break
			}
		}
	}
	return out
}

// NoscriptInnerHTML renders the serialized inner markup of the first
// <noscript> element in the document, or ok=false if there is none.
// Detection of a meta-refresh redirect scans this raw markup rather
// than parsed attributes, matching how gateways embed the refresh tag
// as literal text inside noscript fallbacks.
func NoscriptInnerHTML(doc *Document) (string, bool) {
	if doc == nil || doc.Root == nil {
		return "", false
	}

	var nodes []*xhtml.Node
	findElementsByTag(doc.Root, "noscript", &nodes)
	if len(nodes) == 0 {
		return "", false
	}

	var buf bytes.Buffer
	for child := nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xhtml.TextNode {
			// noscript content is raw text; write it unescaped.
			buf.WriteString(child.Data)
			continue
		}
		if err := xhtml.Render(&buf, child); err != nil {
			return "", false
		}
	}
	return buf.String(), true
}

// DetectMetaRefresh scans noscript inner markup for a meta refresh tag
// and returns the redirect target named by its url= parameter.
func DetectMetaRefresh(innerHTML string) (target string, ok bool) {
	if !strings.Contains(innerHTML, `meta http-equiv="refresh"`) {
		return "", false
	}
	idx := strings.Index(innerHTML, "url=")
	if idx < 0 {
		return "", false
	}
	rest := innerHTML[idx+len("url="):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
