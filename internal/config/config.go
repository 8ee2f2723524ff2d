// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Database DatabaseConfig `toml:"database"`
	Password PasswordConfig `toml:"password"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

type DatabaseConfig struct {
	Path        string        `toml:"path"`
	BusyTimeout time.Duration `toml:"busy_timeout"`
}

type PasswordConfig struct {
	MinLength int `toml:"min_length"`
	// MaxAccountSimilarity of 0 turns the account similarity check off.
	MaxAccountSimilarity float64 `toml:"max_account_similarity"`
	// BcryptCost of 0 selects bcrypt.DefaultCost.
	BcryptCost int `toml:"bcrypt_cost"`
}

// DSN returns the modernc.org/sqlite data source name for the database.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", d.Path, d.BusyTimeout.Milliseconds())
}

// Load reads, substitutes, parses and validates the configuration file.
// Keys the file sets override Default, so an explicit zero is kept.
// Unresolved environment variables, unknown keys and rejected values are
// returned together as *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	cfg := Default()
	md, err := toml.Decode(content, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillBlanks()

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Unknown: unknown, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultDBPath    = "./data/jwpuser.db"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Database: DatabaseConfig{
			Path:        defaultDBPath,
			BusyTimeout: 5 * time.Second,
		},
		Password: PasswordConfig{
			MinLength:            8,
			MaxAccountSimilarity: 0.9,
			BcryptCost:           10,
		},
	}
}

// fillBlanks restores defaults for strings left empty by ${VAR:-}.
func (c *Config) fillBlanks() {
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultDBPath
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment variable references with their values.
// Unresolved references are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
