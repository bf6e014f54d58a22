// Package goquery implements post parsing from rendered timeline HTML.
// It mirrors the DOM selectors the browser capture agent uses, so HTML
// saved from a timeline page parses into the same post batches the agent
// would submit.
package goquery

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/goromian/tweetsnap"
)

// Ensure PostParser implements tweetsnap.PostParser at compile time.
var _ tweetsnap.PostParser = (*PostParser)(nil)

// profileHrefRe matches a bare profile link path like "/username".
var profileHrefRe = regexp.MustCompile(`^/([^/]+)$`)

// PostParser extracts posts from timeline HTML using the platform's
// data-testid attributes.
type PostParser struct{}

// NewPostParser creates a new PostParser.
func NewPostParser() *PostParser {
	return &PostParser{}
}

// ParsePosts parses up to limit posts from the given HTML. A limit of zero
// or less falls back to the default batch size. Posts keep their on-page
// order and carry their position as Index.
func (p *PostParser) ParsePosts(html string, limit int) ([]tweetsnap.Post, error) {
	if limit <= 0 {
		limit = tweetsnap.DefaultPostLimit
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINVALID, "parsing HTML: %v", err)
	}

	posts := []tweetsnap.Post{}
	doc.Find(`article[data-testid="tweet"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		posts = append(posts, parsePost(sel, i))
		return true
	})

	return posts, nil
}

func parsePost(sel *goquery.Selection, index int) tweetsnap.Post {
	timestamp, ok := sel.Find("time").First().Attr("datetime")
	if !ok {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	return tweetsnap.Post{
		Author:    parseAuthor(sel),
		Text:      strings.TrimSpace(sel.Find(`[data-testid="tweetText"]`).First().Text()),
		Timestamp: timestamp,
		URLs:      parseURLs(sel),
		Index:     index,
	}
}

// parseAuthor finds the posting account's handle. It first looks for a bare
// profile link, then falls back to the User-Name block, skipping the
// platform's internal "/i/" routes.
func parseAuthor(sel *goquery.Selection) string {
	if href, ok := sel.Find(`a[role="link"]`).First().Attr("href"); ok {
		if m := profileHrefRe.FindStringSubmatch(href); m != nil {
			return m[1]
		}
	}

	author := "unknown"
	sel.Find(`[data-testid="User-Name"] a`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "/") {
			return true
		}
		segment, _, _ := strings.Cut(strings.TrimPrefix(href, "/"), "/")
		if segment == "" || segment == "i" {
			return true
		}
		author = segment
		return false
	})

	return author
}

// parseURLs gathers the post's outbound links in document order: external
// links first, then the platform's t.co shortlinks. Platform-internal links
// are dropped and duplicates are kept once.
func parseURLs(sel *goquery.Selection) []string {
	urls := []string{}
	seen := make(map[string]bool)

	add := func(href string) {
		if !seen[href] {
			seen[href] = true
			urls = append(urls, href)
		}
	}

	sel.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.Contains(href, "http") {
			return
		}
		if strings.Contains(href, "twitter.com") ||
			strings.Contains(href, "x.com") ||
			strings.Contains(href, "t.co") {
			return
		}
		add(href)
	})

	sel.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if strings.Contains(href, "t.co") {
			add(href)
		}
	})

	return urls
}
