package tweetsnap

import "context"

// NoTitle is the title recorded when a fetched page has no <title> element.
const NoTitle = "No title found"

// FetchErrorTitle marks an EnrichmentResult produced from a failed fetch.
// The failure reason is carried in the result's Content field.
const FetchErrorTitle = "Error fetching content"

// Post is one captured social-media message with its metadata and outbound
// links. The capture agent creates it; the enricher sets LinkedContent once;
// it is never mutated again.
type Post struct {
	Author    string   `json:"author"`
	Text      string   `json:"text"`
	Timestamp string   `json:"timestamp"`
	URLs      []string `json:"urls"`
	Index     int      `json:"index"`

	// LinkedContent holds one EnrichmentResult per entry in URLs, in the
	// same order. Nil until the post has been enriched; an enriched post
	// with no URLs carries an empty, non-nil slice.
	LinkedContent []EnrichmentResult `json:"linkedContent"`
}

// Enriched reports whether the post has been through link enrichment.
func (p *Post) Enriched() bool {
	return p.LinkedContent != nil
}

// EnrichmentResult is the extracted summary of one of a post's outbound
// links. Immutable once constructed. A failed fetch is represented as data:
// Title is FetchErrorTitle and Content carries the failure message.
type EnrichmentResult struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Failed reports whether the result records a fetch or extraction failure.
func (r *EnrichmentResult) Failed() bool {
	return r.Title == FetchErrorTitle
}

// Enricher attaches extracted link summaries to a post.
type Enricher interface {
	// Enrich fetches each of the post's URLs and returns a copy of the
	// post with LinkedContent populated in URL order. Per-URL failures
	// are recorded as error-sentinel results and never abort the post.
	Enrich(ctx context.Context, post Post) Post
}
