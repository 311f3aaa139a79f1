package scanner

import "strings"

// Recognized reports whether a decoded payload looks like a hunt question
// reference: it contains "http" or one of the configured host tokens.
func Recognized(text string, hosts []string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.Contains(trimmed, "http") {
		return true
	}
	for _, host := range hosts {
		host = strings.TrimSpace(host)
		if host != "" && strings.Contains(trimmed, host) {
			return true
		}
	}
	return false
}
