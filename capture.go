package tweetsnap

import "strings"

// Source classification values for collection runs. Profile captures use the
// profile's name instead.
const (
	SourceTimeline     = "timeline"
	SourceHomeTimeline = "home_timeline"
)

// PostParser extracts posts from a captured page's HTML. Implementations
// dedupe each post's URLs in insertion order and drop platform-internal
// links.
type PostParser interface {
	// ParsePosts returns up to limit posts in page order.
	ParsePosts(html string, limit int) ([]Post, error)
}

// SourceFromURL classifies the collection source from the captured page URL:
// the home feed, a profile page (classified by its trailing path segment),
// or the generic timeline.
func SourceFromURL(pageURL string) string {
	if strings.Contains(pageURL, "/home") {
		return SourceHomeTimeline
	}
	trimmed := strings.TrimSuffix(pageURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		if seg := trimmed[i+1:]; seg != "" && !strings.Contains(seg, ".") {
			return seg
		}
	}
	return SourceTimeline
}
