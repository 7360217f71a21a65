// internal/pipeline/pipeline.go
//
// Package pipeline implements the per-work-item fetch → parse →
// redirect-resolve → extract → publish sequence a worker runs for
// each popped work key. It is the generalized, content-addressed
// replacement for a URL-frontier crawler's single-page visit logic:
// where that crawler resolved relative hrefs against a base URL and
// handed the fetched page to a Visitor, this pipeline resolves them
// against a work key's gateway path and writes directly into the
// shared index Store.
package pipeline

import (
	"context"
	"strings"

	gcerrors "github.com/Nibir1/gatecrawl/internal/errors"
	"github.com/Nibir1/gatecrawl/internal/fetch"
	gchtml "github.com/Nibir1/gatecrawl/internal/html"
	"github.com/Nibir1/gatecrawl/internal/index"
	"github.com/Nibir1/gatecrawl/internal/log"
)

// excerptLength is the maximum number of characters (not bytes) kept
// in a Result's excerpt.
const excerptLength = 128

// minKeywordLength is the token length a word must exceed to be
// indexed: tokens of this length or shorter are skipped.
const minKeywordLength = 3

// Pipeline runs the fetch/parse/extract sequence for one work key
// against one gateway host, reading and writing through store.
type Pipeline struct {
	Fetcher     *fetch.Fetcher
	Store       *index.Store
	GatewayHost string
	Logger      log.Logger
}

// New constructs a Pipeline.
func New(fetcher *fetch.Fetcher, store *index.Store, gatewayHost string, logger log.Logger) *Pipeline {
	return &Pipeline{Fetcher: fetcher, Store: store, GatewayHost: gatewayHost, Logger: logger}
}

// Run executes the full pipeline for workKey. It never returns an
// error to the caller: every failure is logged and handled in place
// (dropped, or re-enqueued on a redirect-follow timeout), matching the
// worker pool's "abandon or re-enqueue, never propagate" contract.
func (p *Pipeline) Run(ctx context.Context, workKey string) {
	url := fetch.GatewayURL(p.GatewayHost, workKey)

	resp, err := p.Fetcher.Get(ctx, url)
	if err != nil {
		p.Logger.Warnf("fetch %s failed: %v", url, err)
		return
	}

	doc, err := gchtml.ParseDocument(resp.Body)
	if err != nil {
		p.Logger.Warnf("parse %s failed: %v", url, err)
		return
	}

	effectiveKey := workKey
	effectiveURL := url

	if inner, ok := gchtml.NoscriptInnerHTML(doc); ok {
		if target, ok := gchtml.DetectMetaRefresh(inner); ok {
			effectiveKey = normalizeWorkKey(workKey + "/" + target)
			effectiveURL = effectiveURL + "/" + target

			resp2, err2 := p.Fetcher.Get(ctx, effectiveURL)
			if err2 != nil {
				if gcerrors.IsTimeout(err2) {
					p.Logger.Warnf("redirect-follow %s timed out, re-enqueueing %s", effectiveURL, effectiveKey)
					p.Store.Enqueue(effectiveKey)
				} else {
					p.Logger.Warnf("redirect-follow %s failed: %v", effectiveURL, err2)
				}
				return
			}

			doc, err = gchtml.ParseDocument(resp2.Body)
			if err != nil {
				p.Logger.Warnf("parse redirect target %s failed: %v", effectiveURL, err)
				return
			}
		}
	}

	if !gchtml.HasBody(doc) {
		return
	}

	title := gchtml.ExtractTitle(doc)
	content := gchtml.BodyText(doc)

	if strings.Contains(content, "no link named") {
		p.Logger.Warnf("gateway could not resolve a link referenced by %s", effectiveKey)
	}

	p.enqueueLinks(doc, effectiveKey)

	keywordCounts := p.indexKeywords(effectiveKey, content)

	excerpt := content
	if runes := []rune(excerpt); len(runes) > excerptLength {
		excerpt = string(runes[:excerptLength])
	}

	p.Store.Publish(&index.Result{
		WorkKey:  effectiveKey,
		Title:    title,
		Excerpt:  excerpt,
		Keywords: keywordCounts,
	})
}

func (p *Pipeline) enqueueLinks(doc *gchtml.Document, effectiveKey string) {
	for _, href := range gchtml.ExtractHrefs(doc) {
		key, ok := resolveHref(href, p.GatewayHost, effectiveKey)
		if !ok {
			continue
		}
		p.Store.Enqueue(key)
	}
}

func (p *Pipeline) indexKeywords(workKey, content string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range strings.Fields(content) {
		if len(tok) <= minKeywordLength {
			continue
		}
		word := strings.ToLower(tok)
		counts[word]++
		p.Store.InsertKeyword(workKey, word)
	}
	return counts
}
