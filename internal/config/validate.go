package config

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/thoreinstein/folio/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrNegativeLimit indicates recent_limit is below zero.
	ErrNegativeLimit = errors.New("recent_limit must be >= 0")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidPattern indicates an include or exclude glob does not parse.
	ErrInvalidPattern = errors.New("invalid glob pattern")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.RecentLimit < 0 {
		errs = append(errs, ErrNegativeLimit)
	}

	if err := validatePath(cfg.DocsDir); err != nil {
		errs = append(errs, &FieldError{Field: "docs_dir", Value: cfg.DocsDir, Err: err})
	}
	if err := validatePath(cfg.PostsDir); err != nil {
		errs = append(errs, &FieldError{Field: "posts_dir", Value: cfg.PostsDir, Err: err})
	} else if _, err := cfg.PostsPath(); err != nil {
		errs = append(errs, &FieldError{Field: "posts_dir", Value: cfg.PostsDir, Err: errors.Mark(err, ErrInvalidPath)})
	}

	for _, p := range cfg.Include {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, &FieldError{Field: "include", Value: p, Err: ErrInvalidPattern})
		}
	}
	for _, p := range cfg.Exclude {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, &FieldError{Field: "exclude", Value: p, Err: ErrInvalidPattern})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
// Empty paths are rejected; "." is allowed.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if filepath.Clean(path) == "" {
		return ErrInvalidPath
	}
	return nil
}

// FieldError represents a validation error for a specific config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return errors.New(strings.Join(msgs, "; "))
}
