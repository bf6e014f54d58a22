package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/collect"
	"github.com/goromian/tweetsnap/extract"
	"github.com/goromian/tweetsnap/fs"
	"github.com/goromian/tweetsnap/gemini"
	"github.com/goromian/tweetsnap/goquery"
	snaphttp "github.com/goromian/tweetsnap/http"
	"github.com/goromian/tweetsnap/readability"
	snapslog "github.com/goromian/tweetsnap/slog"
	"github.com/goromian/tweetsnap/sqlite"
	"github.com/goromian/tweetsnap/trafilatura"
	"github.com/goromian/tweetsnap/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite archive database, opened only for commands that need it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tweetsnap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tweetsnap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	settings, err := yaml.LoadSettings(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load settings from %q: %w", cli.Config, err)
	}
	deps.Settings = settings

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	deps.Logger = logger

	deps.Store = snapslog.NewLoggingStore(fs.NewSnapshotStore(settings.DataDir), logger)

	fetcher := snaphttp.NewFetcher()
	defer fetcher.Close()
	deps.Fetcher = snapslog.NewLoggingFetcher(fetcher, logger)

	deps.Parser = goquery.NewPostParser()

	// The ingress and fetch paths summarize one page at a time, so they
	// get the larger content cap. Batch enrichment uses the tighter one.
	deps.Extractor = newExtractor(cli.Fetch.Engine, tweetsnap.DirectContentLimit)
	deps.Collector = &collect.Collector{
		Enricher: &collect.LinkEnricher{
			Fetcher:   deps.Fetcher,
			Extractor: newExtractor(cli.Collect.Engine, tweetsnap.BatchContentLimit),
		},
		Concurrency: settings.Concurrency,
	}

	// Commands that touch the archive open the database on demand.
	needsArchive := cmd == "import" || (cmd == "serve" && cli.Serve.ImportSchedule != "")
	if needsArchive {
		if settings.DBPath == "" {
			return fmt.Errorf("db_path must be set in %q to use the archive", cli.Config)
		}
		m.DB = sqlite.NewDB(settings.DBPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open archive database at %q: %w", settings.DBPath, err)
		}
		deps.Archive = sqlite.NewArchiveService(m.DB)
	}

	if cmd == "report" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Reporter = gemini.NewReporter(client)
	}

	return kongCtx.Run(deps)
}

// newExtractor builds the extraction engine selected on the command line.
func newExtractor(engine string, limit int) tweetsnap.Extractor {
	switch engine {
	case "readability":
		return readability.NewExtractor(readability.WithContentLimit(limit))
	case "trafilatura":
		return trafilatura.NewExtractor(trafilatura.WithContentLimit(limit))
	default:
		return extract.NewExtractor(extract.WithContentLimit(limit))
	}
}
