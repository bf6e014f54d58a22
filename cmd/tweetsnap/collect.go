package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goromian/tweetsnap"
)

// Run executes the collect command: read posts from a file, enrich them,
// and store the snapshot. The file is either a JSON array of posts (as the
// capture agent would submit) or a saved timeline HTML page.
func (c *CollectCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", c.File, err)
	}

	posts, err := c.loadPosts(deps, data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found in input.")
		return nil
	}

	username := c.Username
	if username == "" {
		username = deps.Settings.AccountName
	}
	if username == "" && c.PageURL != "" {
		// Classify the batch by the captured page: the home feed, a
		// profile name, or the generic timeline.
		username = tweetsnap.SourceFromURL(c.PageURL)
	}

	snapshot := deps.Collector.Collect(deps.Ctx, posts, username)

	result, err := deps.Store.Save(deps.Ctx, snapshot)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d tweets to %s\n", result.TweetCount, result.Path)
	return nil
}

func (c *CollectCmd) loadPosts(deps *Dependencies, data []byte) ([]tweetsnap.Post, error) {
	if isHTMLFile(c.File) {
		return deps.Parser.ParsePosts(string(data), deps.Settings.PostLimit)
	}

	var posts []tweetsnap.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINVALID, "Invalid tweets data")
	}
	if len(posts) > deps.Settings.PostLimit {
		posts = posts[:deps.Settings.PostLimit]
	}
	return posts, nil
}

func isHTMLFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
