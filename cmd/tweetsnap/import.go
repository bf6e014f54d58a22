package main

import (
	"context"
	"fmt"

	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/sqlite"
)

// Run executes the import command: load every stored artifact into the
// archive database.
func (c *ImportCmd) Run(deps *Dependencies) error {
	imported, err := importStore(deps.Ctx, deps.Store, deps.Archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetsnap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d snapshots into the archive.\n", imported)
	return nil
}

// importStore imports every artifact in the store into the archive.
// Imports are idempotent per artifact, so re-running over the whole store
// just refreshes the rows.
func importStore(ctx context.Context, store tweetsnap.SnapshotStore, archive *sqlite.ArchiveService) (int, error) {
	infos, err := store.List(ctx)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, info := range infos {
		snapshot, err := store.Get(ctx, info.Filename)
		if err != nil {
			// Corrupt artifacts show up in listings but cannot be
			// imported. Skip them rather than aborting the run.
			continue
		}
		if err := archive.ImportSnapshot(ctx, info.Filename, snapshot); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}
