package question

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// AnswerMatches reports whether a submitted answer equals the expected value
// under case-insensitive comparison. Empty submissions never match.
func AnswerMatches(submitted, expected string) bool {
	normalized := NormalizeAnswerText(submitted)
	return normalized != "" && normalized == NormalizeAnswerText(expected)
}
