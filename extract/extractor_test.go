package extract_test

import (
	"strings"
	"testing"

	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that Extractor implements tweetsnap.Extractor.
var _ tweetsnap.Extractor = (*extract.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, description and body text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title> Hi </title></head><body><script>x()</script><p>Hello  World</p></body></html>`

		ext := extract.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Hi", result.Title)
		assert.Equal(t, "", result.Description)
		assert.Equal(t, "Hello World", result.Content)
	})

	t.Run("falls back to default title when absent", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()
		result, err := ext.Extract(`<html><body><p>text</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "No title found", result.Title)
	})

	t.Run("reads meta description with either quote style", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()

		double, err := ext.Extract(`<head><meta name="description" content="A fine page"></head>`)
		require.NoError(t, err)
		assert.Equal(t, "A fine page", double.Description)

		single, err := ext.Extract(`<head><META NAME='description' CONTENT='Another page'></head>`)
		require.NoError(t, err)
		assert.Equal(t, "Another page", single.Description)
	})

	t.Run("removes script and style regions", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<style>.x { color: red }</style>
<script type="text/javascript">var a = "<p>not text</p>";</script>
<p>visible</p>
</body>`

		ext := extract.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "visible", result.Content)
	})

	t.Run("uses whole document when no body tag exists", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()
		result, err := ext.Extract(`<div>first</div><div>second</div>`)

		require.NoError(t, err)
		assert.Equal(t, "first second", result.Content)
	})

	t.Run("caps content at configured limit", func(t *testing.T) {
		t.Parallel()

		long := "<body>" + strings.Repeat("word ", 500) + "</body>"

		ext := extract.NewExtractor(extract.WithContentLimit(100))
		result, err := ext.Extract(long)

		require.NoError(t, err)
		assert.Len(t, []rune(result.Content), 100)
	})

	t.Run("default cap is the batch limit", func(t *testing.T) {
		t.Parallel()

		long := "<body>" + strings.Repeat("a", 5000) + "</body>"

		ext := extract.NewExtractor()
		result, err := ext.Extract(long)

		require.NoError(t, err)
		assert.Len(t, result.Content, tweetsnap.BatchContentLimit)
	})

	t.Run("does not split multi-byte runes at the cap", func(t *testing.T) {
		t.Parallel()

		long := "<body>" + strings.Repeat("日本語テキスト", 300) + "</body>"

		ext := extract.NewExtractor(extract.WithContentLimit(50))
		result, err := ext.Extract(long)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Content, "日本語"))
		assert.Len(t, []rune(result.Content), 50)
	})

	t.Run("tolerates malformed HTML without failing", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor(extract.WithContentLimit(200))
		result, err := ext.Extract(`<html><body><p>unclosed <div>nested <b>bold`)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.LessOrEqual(t, len([]rune(result.Content)), 200)
	})

	t.Run("empty input yields defaults", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewExtractor()
		result, err := ext.Extract("")

		require.NoError(t, err)
		assert.Equal(t, "No title found", result.Title)
		assert.Empty(t, result.Description)
		assert.Empty(t, result.Content)
	})
}
