package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/cleared-dev/minibank/internal/config"
)

// loadConfig reads path, falling back to config.Default when path is empty
// or, for the default file name, missing.
func loadConfig(path string) (*config.Config, error) {
	fallback := path == ""
	if fallback {
		path = config.FileName
	}
	cfg, err := config.Load(path)
	if fallback && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}
