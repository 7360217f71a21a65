package pipeline

import "testing"

func TestNormalizeWorkKey(t *testing.T) {
	cases := map[string]string{
		"Qm1":           "Qm1",
		"Qm1/sub":       "Qm1/sub",
		"Qm1//sub":      "Qm1/sub",
		"Qm1///a//b":    "Qm1/a/b",
		"Qm1/sub/":      "Qm1/sub",
		"Qm1//":         "Qm1",
	}
	for in, want := range cases {
		if got := normalizeWorkKey(in); got != want {
			t.Errorf("normalizeWorkKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveHrefGatewayPrefixed(t *testing.T) {
	key, ok := resolveHref("http://ipfs.io/ipfs/Qm2/foo", "ipfs.io", "Qm1")
	if !ok || key != "Qm2/foo" {
		t.Fatalf("got (%q, %v), want (Qm2/foo, true)", key, ok)
	}
}

func TestResolveHrefExternalIgnored(t *testing.T) {
	_, ok := resolveHref("https://example.com/page", "ipfs.io", "Qm1")
	if ok {
		t.Fatalf("expected external link to be ignored")
	}
}

func TestResolveHrefAnchorAndEmptyIgnored(t *testing.T) {
	for _, href := range []string{"", "#section"} {
		if _, ok := resolveHref(href, "ipfs.io", "Qm1"); ok {
			t.Fatalf("expected href %q to be ignored", href)
		}
	}
}

func TestResolveHrefRelative(t *testing.T) {
	key, ok := resolveHref("sub/index.html", "ipfs.io", "Qm1")
	if !ok || key != "Qm1/sub/index.html" {
		t.Fatalf("got (%q, %v), want (Qm1/sub/index.html, true)", key, ok)
	}
}

func TestResolveHrefLegacyPrefixStripped(t *testing.T) {
	key, ok := resolveHref("../A/foo", "ipfs.io", "Qm1/sub")
	if !ok || key != "Qm1/foo" {
		t.Fatalf("got (%q, %v), want (Qm1/foo, true)", key, ok)
	}
}
