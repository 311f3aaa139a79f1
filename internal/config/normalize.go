package config

import "strings"

const defaultTimeoutMs = 5000

// Normalize fills defaults and canonicalizes enum fields.
func Normalize(cfg *Config) {
	if cfg.Fetch.TimeoutMs == 0 {
		cfg.Fetch.TimeoutMs = defaultTimeoutMs
	}
	cfg.Verification.Mode = strings.ToLower(strings.TrimSpace(cfg.Verification.Mode))
	if cfg.Verification.Mode == "" {
		cfg.Verification.Mode = VerificationLocal
	}
	cfg.Scanner.Source = strings.ToLower(strings.TrimSpace(cfg.Scanner.Source))
	if cfg.Scanner.Source == "" {
		cfg.Scanner.Source = SourceStdin
	}
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = "auto"
	}
	hosts := make([]string, 0, len(cfg.KnownHosts))
	for _, host := range cfg.KnownHosts {
		if trimmed := strings.TrimSpace(host); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	cfg.KnownHosts = hosts
}
