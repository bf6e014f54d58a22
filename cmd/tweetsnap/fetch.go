package main

import (
	"encoding/json"
	"fmt"

	"github.com/goromian/tweetsnap"
)

// Run executes the fetch command: one-shot fetch-and-summarize.
func (c *FetchCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	result, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
