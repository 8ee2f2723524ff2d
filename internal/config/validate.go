package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true,
}

// Validate checks the configuration and returns one FieldError per
// rejected value, in file order.
func (c *Config) Validate() []FieldError {
	var errs []FieldError
	reject := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !validLogLevels[c.Log.Level] {
		reject("log.level", "must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		reject("log.format", "must be one of text, json; got %q", c.Log.Format)
	}

	if c.Database.BusyTimeout < 0 {
		reject("database.busy_timeout", "must not be negative, got %s", c.Database.BusyTimeout)
	}

	if c.Password.MinLength < 1 || c.Password.MinLength > 72 {
		reject("password.min_length", "must be between 1 and 72, got %d", c.Password.MinLength)
	}
	if c.Password.MaxAccountSimilarity < 0 || c.Password.MaxAccountSimilarity > 1 {
		reject("password.max_account_similarity", "must be between 0 and 1, got %g", c.Password.MaxAccountSimilarity)
	}
	if c.Password.BcryptCost != 0 && (c.Password.BcryptCost < bcrypt.MinCost || c.Password.BcryptCost > bcrypt.MaxCost) {
		reject("password.bcrypt_cost", "must be 0 or between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Password.BcryptCost)
	}

	return errs
}
