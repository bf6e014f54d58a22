package gemini_test

import (
	"strings"
	"testing"

	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPosts(t *testing.T) {
	t.Parallel()

	t.Run("keeps keyword matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		posts := []tweetsnap.Post{
			{Text: "New LLM benchmark results"},
			{Text: "lunch was great"},
			{Text: "Anthropic shipped something"},
		}

		topics := gemini.FilterPosts(posts, gemini.DefaultKeywords)
		require.Len(t, topics, 2)
		assert.Equal(t, "New LLM benchmark results", topics[0].Text)
		assert.Equal(t, "Anthropic shipped something", topics[1].Text)
	})

	t.Run("keeps posts with linked content regardless of keywords", func(t *testing.T) {
		t.Parallel()

		posts := []tweetsnap.Post{
			{
				Text:          "interesting read",
				LinkedContent: []tweetsnap.EnrichmentResult{{URL: "http://a.example", Title: "A"}},
			},
		}

		topics := gemini.FilterPosts(posts, gemini.DefaultKeywords)
		assert.Len(t, topics, 1)
	})

	t.Run("drops everything else", func(t *testing.T) {
		t.Parallel()

		topics := gemini.FilterPosts([]tweetsnap.Post{{Text: "just vibes"}}, gemini.DefaultKeywords)
		assert.Empty(t, topics)
	})

	t.Run("custom keywords replace the defaults", func(t *testing.T) {
		t.Parallel()

		posts := []tweetsnap.Post{
			{Text: "rust 2.0 announced"},
			{Text: "new LLM dropped"},
		}

		topics := gemini.FilterPosts(posts, []string{"rust"})
		require.Len(t, topics, 1)
		assert.Equal(t, "rust 2.0 announced", topics[0].Text)
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	t.Run("renders topics with linked articles", func(t *testing.T) {
		t.Parallel()

		topics := []tweetsnap.Post{
			{
				Author:    "alice",
				Text:      "big model news",
				Timestamp: "2024-03-05T10:00:00.000Z",
				LinkedContent: []tweetsnap.EnrichmentResult{
					{URL: "http://a.example", Title: "A", Description: "about A", Content: "alpha body"},
				},
			},
			{Author: "bob", Text: "second topic"},
		}

		prompt := gemini.BuildUserPrompt(topics, "2024-03-05")

		assert.Contains(t, prompt, "Date: 2024-03-05")
		assert.Contains(t, prompt, "Collected topics: 2")
		assert.Contains(t, prompt, "## Topic 1")
		assert.Contains(t, prompt, "Author: @alice")
		assert.Contains(t, prompt, "Title: A")
		assert.Contains(t, prompt, "Description: about A")
		assert.Contains(t, prompt, "Content: alpha body")
		assert.Contains(t, prompt, "## Topic 2")
		assert.Contains(t, prompt, "Author: @bob")
	})

	t.Run("skips failed link results", func(t *testing.T) {
		t.Parallel()

		topics := []tweetsnap.Post{
			{
				Author: "alice",
				Text:   "mixed links",
				LinkedContent: []tweetsnap.EnrichmentResult{
					{URL: "http://bad.example", Title: tweetsnap.FetchErrorTitle, Content: "connection refused"},
					{URL: "http://good.example", Title: "Good"},
				},
			},
		}

		prompt := gemini.BuildUserPrompt(topics, "2024-03-05")

		assert.NotContains(t, prompt, "bad.example")
		assert.Contains(t, prompt, "Title: Good")
	})

	t.Run("truncates long article content", func(t *testing.T) {
		t.Parallel()

		topics := []tweetsnap.Post{
			{
				Author: "alice",
				Text:   "long read",
				LinkedContent: []tweetsnap.EnrichmentResult{
					{URL: "http://a.example", Title: "A", Content: strings.Repeat("x", 2000)},
				},
			},
		}

		prompt := gemini.BuildUserPrompt(topics, "2024-03-05")
		assert.NotContains(t, prompt, strings.Repeat("x", 600))
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()
	require.NotNil(t, config.SystemInstruction)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, float64(*config.Temperature), 0.001)
}
