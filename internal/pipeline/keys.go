// internal/pipeline/keys.go
//
// Work-key normalization and link-to-work-key resolution. A work key
// is either a bare CID or a CID followed by a relative path, joined by
// exactly one '/'.
package pipeline

import "strings"

// normalizeWorkKey collapses runs of '/' into a single '/' and strips
// a trailing slash, so path segments always join with exactly one
// separator regardless of how the pieces were concatenated upstream.
func normalizeWorkKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	lastSlash := false
	for _, r := range key {
		if r == '/' {
			if lastSlash {
				continue
			}
			lastSlash = true
		} else {
			lastSlash = false
		}
		b.WriteRune(r)
	}
	out := b.String()
	return strings.TrimSuffix(out, "/")
}

// directoryOf truncates a work key at its last '/', returning the
// whole key unchanged if it has none.
func directoryOf(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[:idx]
	}
	return key
}

// legacyPrefix is an unexplained ad-hoc rule inherited unchanged: some
// relative links are emitted with a "../A" prefix that does not
// correspond to any real directory traversal and must simply be
// stripped before the link is joined onto the current work key's
// directory.
const legacyPrefix = "../A"

// resolveHref classifies href relative to gatewayHost and the work key
// currently being processed, returning the work key to enqueue and
// whether href names any in-gateway content at all (external links,
// anchors, and empty hrefs return ok=false).
func resolveHref(href, gatewayHost, effectiveKey string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	for _, scheme := range []string{"http://", "https://"} {
		prefix := scheme + gatewayHost + "/ipfs/"
		if strings.HasPrefix(href, prefix) {
			return normalizeWorkKey(strings.TrimPrefix(href, prefix)), true
		}
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return "", false // external link, not a gateway reference
	}

	h := strings.TrimPrefix(href, legacyPrefix)
	newKey := directoryOf(effectiveKey) + "/" + h
	return normalizeWorkKey(newKey), true
}
