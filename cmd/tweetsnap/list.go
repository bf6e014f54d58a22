package main

import (
	"fmt"

	"github.com/goromian/tweetsnap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	infos, err := deps.Store.List(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	if len(infos) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'tweetsnap collect' to create one.")
		return nil
	}

	for _, info := range infos {
		fmt.Fprintf(deps.Stdout, "%s  %d tweets  %d bytes\n", info.Filename, info.TweetCount, info.Size)
	}

	return nil
}
