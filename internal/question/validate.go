package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a question.
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
		return "question validation failed"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
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

// Validate checks a question against the model invariants: a prompt is
// required, and a multiple-choice question carries a non-empty choice list
// whose entries match the expected answer case-insensitively exactly once.
func Validate(q Question) error {
	collector := &issueCollector{}

	if strings.TrimSpace(q.Prompt) == "" {
		collector.add("question", "is required")
	}

	if q.MultipleChoice() {
		if len(q.Choices) == 0 {
			collector.add("choices", "must include at least one entry")
		}
		for i, choice := range q.Choices {
			if strings.TrimSpace(choice) == "" {
				collector.add(fmt.Sprintf("choices[%d]", i), "is required")
			}
		}
		if strings.TrimSpace(q.ExpectedAnswer) == "" {
			collector.add("answer", "is required for multiple choice")
		} else if matches := countMatches(q.Choices, q.ExpectedAnswer); matches != 1 {
			collector.add("answer", fmt.Sprintf("must match exactly one choice, matches %d", matches))
		}
	}

	return collector.result()
}

// countMatches counts choices equal to the expected answer after
// normalization.
func countMatches(choices []string, expected string) int {
	matches := 0
	for _, choice := range choices {
		if NormalizeAnswerText(choice) == NormalizeAnswerText(expected) {
			matches++
		}
	}
	return matches
}
