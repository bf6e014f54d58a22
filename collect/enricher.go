// Package collect turns captured post batches into snapshots. It enriches
// each post's outbound links with fetched page summaries and wraps the
// batch in a timestamped snapshot ready for storage.
package collect

import (
	"context"

	"github.com/goromian/tweetsnap"
)

// Ensure LinkEnricher implements tweetsnap.Enricher at compile time.
var _ tweetsnap.Enricher = (*LinkEnricher)(nil)

// LinkEnricher fetches each URL carried by a post and attaches an extracted
// summary of the page. Failures never propagate as errors: an unreachable
// or unparseable page becomes a sentinel result so the post's link list and
// its enrichment results stay index-aligned.
type LinkEnricher struct {
	Fetcher   tweetsnap.Fetcher
	Extractor tweetsnap.Extractor
}

// Enrich resolves every URL on the post in order. A post with no URLs comes
// back with an empty, non-nil result slice so it still counts as enriched.
func (e *LinkEnricher) Enrich(ctx context.Context, post tweetsnap.Post) tweetsnap.Post {
	results := make([]tweetsnap.EnrichmentResult, 0, len(post.URLs))
	for _, url := range post.URLs {
		results = append(results, e.enrichURL(ctx, url))
	}
	post.LinkedContent = results
	return post
}

func (e *LinkEnricher) enrichURL(ctx context.Context, url string) tweetsnap.EnrichmentResult {
	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failedResult(url, err)
	}

	extracted, err := e.Extractor.Extract(html)
	if err != nil {
		return failedResult(url, err)
	}

	return tweetsnap.EnrichmentResult{
		URL:         url,
		Title:       extracted.Title,
		Description: extracted.Description,
		Content:     extracted.Content,
	}
}

func failedResult(url string, err error) tweetsnap.EnrichmentResult {
	return tweetsnap.EnrichmentResult{
		URL:     url,
		Title:   tweetsnap.FetchErrorTitle,
		Content: err.Error(),
	}
}
