package main

import (
	"encoding/json"
	"fmt"

	"github.com/goromian/tweetsnap"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Store.Get(deps.Ctx, c.Filename)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
