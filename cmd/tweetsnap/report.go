package main

import (
	"fmt"
	"os"

	"github.com/goromian/tweetsnap"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	snapshot, err := deps.Store.Get(deps.Ctx, c.Filename)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	report, err := deps.Reporter.Report(deps.Ctx, snapshot)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(report), 0644); err != nil {
			return fmt.Errorf("failed to write report to %q: %w", c.Out, err)
		}
		fmt.Fprintf(deps.Stdout, "Report written to %s\n", c.Out)
		return nil
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}
