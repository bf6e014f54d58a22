// Package yaml loads collector settings from a YAML file.
package yaml

import (
	"os"

	"github.com/goromian/tweetsnap"
	"gopkg.in/yaml.v3"
)

// LoadSettings reads settings from path, applying defaults for any field
// the file leaves unset. A missing file yields the defaults unchanged.
func LoadSettings(path string) (*tweetsnap.Settings, error) {
	settings := tweetsnap.DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &settings, nil
	}
	if err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINTERNAL, "reading settings: %v", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINVALID, "parsing settings: %v", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}
