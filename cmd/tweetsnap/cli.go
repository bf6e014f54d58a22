package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Settings *tweetsnap.Settings

	Store     tweetsnap.SnapshotStore
	Collector tweetsnap.Collector
	Fetcher   tweetsnap.Fetcher
	Extractor tweetsnap.Extractor
	Parser    tweetsnap.PostParser
	Archive   *sqlite.ArchiveService
	Reporter  tweetsnap.Reporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" default:"tweetsnap.yaml" help:"Path to the settings file"`

	Serve   ServeCmd   `cmd:"" help:"Run the ingress server"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch a URL and print its extracted summary"`
	Collect CollectCmd `cmd:"" help:"Collect posts from a file into a snapshot"`
	List    ListCmd    `cmd:"" help:"List stored snapshots"`
	Show    ShowCmd    `cmd:"" help:"Show a stored snapshot"`
	Import  ImportCmd  `cmd:"" help:"Import stored snapshots into the archive database"`
	Report  ReportCmd  `cmd:"" help:"Generate a news report from a snapshot"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr           string `help:"Listen address (overrides settings)"`
	ImportSchedule string `help:"Cron schedule for periodic archive imports, e.g. '0 7 * * *'"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL    string `arg:"" help:"URL to fetch"`
	Engine string `default:"pattern" enum:"pattern,readability,trafilatura" help:"Extraction engine"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct {
	File     string `arg:"" help:"Posts JSON file or saved timeline HTML page"`
	Username string `help:"Account the batch belongs to (overrides settings)"`
	PageURL  string `help:"URL the page was captured from, used to classify the source when no username is set"`
	Engine   string `default:"pattern" enum:"pattern,readability,trafilatura" help:"Extraction engine for linked pages"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Filename string `arg:"" help:"Artifact name, e.g. 20240305_bob.json"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct{}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Filename string `arg:"" help:"Artifact name to report on"`
	Out      string `short:"o" help:"Write the report to a file instead of stdout"`
}
