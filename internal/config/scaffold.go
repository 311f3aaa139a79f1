package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1

known_hosts:
  - "example.mock.pstmn.io"

fetch:
  timeout_ms: 5000

verification:
  mode: local

defaults:
  submit_endpoint: ""
  expected_answer: ""

scanner:
  source: stdin
  images: []

ui: auto
`

const defaultHunt = `version: 1

base_url: "http://127.0.0.1:8640"

questions:
  - slug: q1
    question: "Pick a color"
    response_type: multipleChoice
    choices: ["red", "blue", "green"]
    answer: blue
    points: [10]
    hint: "It is the sky"
    age_group: "8-12"
`

// Scaffold writes a starter client config and hunt definition. Existing
// files are never overwritten.
func Scaffold(configPath, huntPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if err := writeNew(configPath, defaultConfig); err != nil {
		return err
	}
	if huntPath != "" {
		if err := writeNew(huntPath, defaultHunt); err != nil {
			return err
		}
	}
	return nil
}

// writeNew creates a file that must not already exist.
func writeNew(path, content string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("path %q is a directory", path)
		}
		return fmt.Errorf("file already exists at %q", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
