package config

import (
	"fmt"
	"strings"
)

// FieldError is a rejected value, keyed by its dotted TOML path
// such as "password.min_length".
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ConfigError collects every problem found in one config file so they can
// be fixed in a single pass.
type ConfigError struct {
	Path    string
	Missing []string     // unresolved ${VAR} references
	Unknown []string     // keys outside [log], [database] and [password]
	Errors  []FieldError // values Validate rejected
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid config %s", e.Path)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\n  unresolved environment variables: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		fmt.Fprintf(&b, "\n  unknown keys: %s", strings.Join(e.Unknown, ", "))
	}
	for _, fe := range e.Errors {
		fmt.Fprintf(&b, "\n  %s", fe)
	}
	return b.String()
}

// HasErrors reports whether Load should reject the file.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Unknown) > 0 || len(e.Errors) > 0
}

