package tweetsnap

// Defaults for operator-configurable settings.
const (
	DefaultPostLimit   = 20
	MaxPostLimit       = 100
	DefaultDataDir     = "data/tweets"
	DefaultAddr        = ":3000"
	DefaultConcurrency = 4
)

// Settings is the explicit configuration object for collection runs.
// It replaces the ambient settings storage of the browser extension.
type Settings struct {
	// AccountName identifies the target account; empty means the
	// generic timeline.
	AccountName string `yaml:"account_name"`

	// PostLimit caps how many posts one capture extracts (1–100).
	PostLimit int `yaml:"post_limit"`

	// DataDir is where snapshot artifacts are written.
	DataDir string `yaml:"data_dir"`

	// Addr is the ingress listen address.
	Addr string `yaml:"addr"`

	// DBPath is the optional snapshot archive database path.
	DBPath string `yaml:"db_path"`

	// Concurrency bounds parallel post enrichment within a batch.
	Concurrency int `yaml:"concurrency"`
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		PostLimit:   DefaultPostLimit,
		DataDir:     DefaultDataDir,
		Addr:        DefaultAddr,
		Concurrency: DefaultConcurrency,
	}
}

// Validate returns an error if any setting is out of range.
func (s *Settings) Validate() error {
	if s.PostLimit < 1 || s.PostLimit > MaxPostLimit {
		return Errorf(EINVALID, "post limit must be between 1 and %d", MaxPostLimit)
	}
	if s.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1")
	}
	return nil
}
