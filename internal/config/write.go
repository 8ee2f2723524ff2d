package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var exampleConfig []byte

// WriteExample writes the commented example config to path.
func WriteExample(path string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := w.Write(exampleConfig)
		return err
	})
}

// Write saves c to path as TOML. Environment references have already been
// resolved, so the file records the values in effect.
func (c *Config) Write(path string) error {
	return writeFile(path, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(c)
	})
}

func writeFile(path string, fill func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fill(f)
}
