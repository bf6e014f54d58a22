package tweetsnap

// Character caps applied to extracted page text. The batch enrichment path
// keeps excerpts shorter than the one-shot fetch endpoint; the two limits
// are intentionally distinct.
const (
	// BatchContentLimit caps excerpts attached during batch enrichment.
	BatchContentLimit = 1000

	// DirectContentLimit caps excerpts returned by the direct
	// fetch-and-summarize endpoint.
	DirectContentLimit = 2000
)

// ExtractResult holds the text summary extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, or NoTitle when the page has none.
	Title string `json:"title"`

	// Description is the page's meta description; empty when absent.
	Description string `json:"description"`

	// Content is a plain-text excerpt with whitespace collapsed,
	// truncated to the extractor's configured character cap.
	Content string `json:"content"`
}

// Extractor produces a bounded plain-text summary from raw HTML.
// Absence of a title or description is a normal, representable outcome,
// not an error.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
