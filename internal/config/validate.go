package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Fetch.TimeoutMs < 0 {
		add("fetch.timeout_ms", "must be >= 0")
	}

	switch cfg.Verification.Mode {
	case VerificationLocal, VerificationRemote:
	default:
		add("verification.mode", fmt.Sprintf("must be %q or %q", VerificationLocal, VerificationRemote))
	}

	switch cfg.Scanner.Source {
	case SourceStdin, SourceImages:
	default:
		add("scanner.source", fmt.Sprintf("must be %q or %q", SourceStdin, SourceImages))
	}
	for i, image := range cfg.Scanner.Images {
		if strings.TrimSpace(image) == "" {
			add(fmt.Sprintf("scanner.images[%d]", i), "is required")
		}
	}

	switch cfg.UI {
	case "auto", "live", "plain":
	default:
		add("ui", `must be "auto", "live", or "plain"`)
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
