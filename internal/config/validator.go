// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/teampath/internal/logging"
	"github.com/katalvlaran/teampath/matrix"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config key, e.g. "logging.level"
	Value   any    // offending value
	Message string // human-readable description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// ValidFormats returns the accepted log formats.
func ValidFormats() []string {
	return []string{logging.FormatJSON, logging.FormatText}
}

// Validate checks c and returns every problem found. The source index is
// only checked for sign here; its upper bound depends on the loaded graph.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Source < -1 {
		errs = append(errs, ValidationError{Field: "source", Value: c.Source, Message: "must be non-negative, or -1 for the graph default"})
	}
	if c.Workers < 0 {
		errs = append(errs, ValidationError{Field: "workers", Value: c.Workers, Message: "must be positive, or 0 for automatic"})
	}
	if c.Graph != "" && c.Generate != "" {
		errs = append(errs, ValidationError{Field: "generate", Value: c.Generate, Message: "cannot be combined with graph"})
	}
	if c.MaxWeight < 1 || c.MaxWeight >= matrix.Inf {
		// matrix.Inf is the "no edge" sentinel and cannot be a drawn weight.
		errs = append(errs, ValidationError{Field: "max_weight", Value: c.MaxWeight, Message: fmt.Sprintf("must be in [1, %d)", matrix.Inf)})
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(logging.ValidLevels(), ", "))),
		})
	}
	if !slices.Contains(ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFormats(), ", ")),
		})
	}

	return errs
}
