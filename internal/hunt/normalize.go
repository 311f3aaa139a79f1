package hunt

import (
	"fmt"
	"strings"

	"github.com/KiyoScript/scavenger-hunt/internal/question"
)

// Issue captures a validation problem in a hunt definition.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "hunt definition validation failed"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("hunt definition validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a hunt definition.
func Normalize(h Hunt) (Hunt, error) {
	collector := &issueCollector{}

	if h.Version == 0 {
		collector.add("version", "is required")
	} else if h.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", h.Version))
	}
	h.BaseURL = strings.TrimSpace(h.BaseURL)
	if len(h.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenSlugs := map[string]struct{}{}
	for i, entry := range h.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		entry.Slug = strings.TrimSpace(entry.Slug)
		if entry.Slug == "" {
			collector.add(prefix+".slug", "is required")
		} else if !validSlug(entry.Slug) {
			collector.add(prefix+".slug", fmt.Sprintf("invalid slug %q", entry.Slug))
		} else if _, exists := seenSlugs[entry.Slug]; exists {
			collector.add(prefix+".slug", fmt.Sprintf("duplicate slug %q", entry.Slug))
		} else {
			seenSlugs[entry.Slug] = struct{}{}
		}

		entry.Prompt = strings.TrimSpace(entry.Prompt)
		entry.Answer = strings.TrimSpace(entry.Answer)
		entry.ResponseType = strings.TrimSpace(entry.ResponseType)
		for choiceIndex := range entry.Choices {
			entry.Choices[choiceIndex] = strings.TrimSpace(entry.Choices[choiceIndex])
		}

		if err := question.Validate(entry.ToQuestion(h.BaseURL)); err != nil {
			collector.add(prefix, err.Error())
		}
		if entry.Answer == "" {
			collector.add(prefix+".answer", "is required")
		}
		h.Questions[i] = entry
	}

	if err := collector.result(); err != nil {
		return Hunt{}, err
	}
	return h, nil
}

// validSlug accepts lowercase letters, digits, and dashes.
func validSlug(slug string) bool {
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
