package hunt

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a hunt definition file.
func Load(path string) (Hunt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Hunt{}, fmt.Errorf("read hunt definition: %w", err)
	}
	h, err := Parse(data)
	if err != nil {
		return Hunt{}, err
	}
	normalized, err := Normalize(h)
	if err != nil {
		return Hunt{}, err
	}
	return normalized, nil
}

// Parse decodes a hunt document strictly.
func Parse(data []byte) (Hunt, error) {
	var h Hunt
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&h); err != nil {
		return Hunt{}, fmt.Errorf("parse hunt definition: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Hunt{}, fmt.Errorf("parse hunt definition: multiple documents are not supported")
		}
		return Hunt{}, fmt.Errorf("parse hunt definition: %w", err)
	}
	return h, nil
}
