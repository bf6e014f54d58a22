// Package gemini generates news reports from snapshots using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/extract"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// linkPreviewLimit caps how much of each linked article goes into the
// prompt. Full articles would blow up the context for large batches.
const linkPreviewLimit = 500

// DefaultKeywords pre-filters posts for report-worthy topics. A post that
// matches none of these but carries linked content is still included.
var DefaultKeywords = []string{
	"ai", "gpt", "llm", "machine learning", "deep learning",
	"neural", "transformer", "anthropic", "openai", "claude",
	"gemini", "chatgpt",
}

// Ensure Reporter implements tweetsnap.Reporter at compile time.
var _ tweetsnap.Reporter = (*Reporter)(nil)

// Reporter implements tweetsnap.Reporter using Google Gemini.
type Reporter struct {
	client   *genai.Client
	keywords []string
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithKeywords overrides the topic pre-filter keywords.
func WithKeywords(keywords []string) ReporterOption {
	return func(r *Reporter) {
		r.keywords = keywords
	}
}

// NewReporter creates a new Reporter.
func NewReporter(client *genai.Client, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		client:   client,
		keywords: DefaultKeywords,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report generates a markdown news report from the snapshot's posts.
func (r *Reporter) Report(ctx context.Context, snapshot *tweetsnap.Snapshot) (string, error) {
	if snapshot == nil {
		return "", tweetsnap.Errorf(tweetsnap.EINVALID, "snapshot required")
	}

	topics := FilterPosts(snapshot.Tweets, r.keywords)
	if len(topics) == 0 {
		return "", tweetsnap.Errorf(tweetsnap.ENOTFOUND, "no report-worthy posts in snapshot")
	}

	prompt := BuildUserPrompt(topics, snapshot.CollectedAt.Format("2006-01-02"))
	config := BuildConfig()

	result, err := r.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", tweetsnap.Errorf(tweetsnap.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an enthusiastic tech news editor. Write an upbeat markdown news digest from the collected posts. Start with a title that includes the given date, group related topics under markdown headings, and for each topic explain why it matters and what it could change, drawing on the linked articles where available. Base the report only on the material provided.",
			}},
		},
		Temperature: &temp,
	}
}

// FilterPosts keeps posts that mention one of the keywords or that carry
// successfully linked content. Matching is case-insensitive over the post
// text.
func FilterPosts(posts []tweetsnap.Post, keywords []string) []tweetsnap.Post {
	var topics []tweetsnap.Post
	for _, post := range posts {
		if len(post.LinkedContent) > 0 || matchesKeyword(post.Text, keywords) {
			topics = append(topics, post)
		}
	}
	return topics
}

func matchesKeyword(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// BuildUserPrompt renders the filtered posts as a topic list for the model.
func BuildUserPrompt(topics []tweetsnap.Post, date string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Date: %s\n", date)
	fmt.Fprintf(&sb, "Collected topics: %d\n", len(topics))

	for i, topic := range topics {
		fmt.Fprintf(&sb, "\n## Topic %d\n", i+1)
		fmt.Fprintf(&sb, "Author: @%s\n", topic.Author)
		fmt.Fprintf(&sb, "Post: %s\n", topic.Text)
		fmt.Fprintf(&sb, "Posted: %s\n", topic.Timestamp)

		if len(topic.LinkedContent) > 0 {
			sb.WriteString("Linked articles:\n")
			for _, link := range topic.LinkedContent {
				if link.Failed() {
					continue
				}
				fmt.Fprintf(&sb, "- URL: %s\n", link.URL)
				fmt.Fprintf(&sb, "  Title: %s\n", link.Title)
				if link.Description != "" {
					fmt.Fprintf(&sb, "  Description: %s\n", link.Description)
				}
				if link.Content != "" {
					fmt.Fprintf(&sb, "  Content: %s\n", extract.Truncate(link.Content, linkPreviewLimit))
				}
			}
		}
	}

	sb.WriteString("\nWrite the news report now.")
	return sb.String()
}
