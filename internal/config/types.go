package config

// Config is the client configuration schema loaded from .hunt.yml.
type Config struct {
	Version      int                `yaml:"version"`
	KnownHosts   []string           `yaml:"known_hosts"`
	Fetch        FetchConfig        `yaml:"fetch"`
	Verification VerificationConfig `yaml:"verification"`
	Defaults     DefaultsConfig     `yaml:"defaults"`
	Scanner      ScannerConfig      `yaml:"scanner"`
	UI           string             `yaml:"ui"`
}

// FetchConfig tunes the question service client.
type FetchConfig struct {
	TimeoutMs int `yaml:"timeout_ms"`
}

// VerificationConfig selects the answer verification strategy.
type VerificationConfig struct {
	Mode string `yaml:"mode"`
}

// DefaultsConfig supplies fallbacks for payloads that omit the submit
// endpoint or the expected answer.
type DefaultsConfig struct {
	SubmitEndpoint string `yaml:"submit_endpoint"`
	ExpectedAnswer string `yaml:"expected_answer"`
}

// ScannerConfig selects the decoded-code source.
type ScannerConfig struct {
	Source string   `yaml:"source"`
	Images []string `yaml:"images"`
}

// Verification modes.
const (
	VerificationLocal  = "local"
	VerificationRemote = "remote"
)

// Scanner sources.
const (
	SourceStdin  = "stdin"
	SourceImages = "images"
)
