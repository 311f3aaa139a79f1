package scanner

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// ReaderScanner reads one decoded payload per activation from a line
// oriented source, typically stdin. Access is always granted.
type ReaderScanner struct {
	reader *bufio.Reader
}

// NewReaderScanner wraps a line-oriented source as a scanner.
func NewReaderScanner(r io.Reader) *ReaderScanner {
	return &ReaderScanner{reader: bufio.NewReader(r)}
}

// NewBufferedReaderScanner shares an existing buffered reader, letting the
// caller interleave its own line reads with scan activations.
func NewBufferedReaderScanner(r *bufio.Reader) *ReaderScanner {
	return &ReaderScanner{reader: r}
}

// RequestAccess always grants access for reader sources.
func (s *ReaderScanner) RequestAccess(_ context.Context) (bool, error) {
	return true, nil
}

// BeginScan reads the next non-empty line and emits it as a decoded code.
// The channel closes without an event at end of input or on cancellation.
func (s *ReaderScanner) BeginScan(ctx context.Context) (<-chan Code, error) {
	events := make(chan Code, 1)
	go func() {
		defer close(events)
		for {
			line, err := s.reader.ReadString('\n')
			text := strings.TrimSpace(line)
			if text != "" {
				select {
				case events <- Code{Format: "TEXT", Text: text}:
				case <-ctx.Done():
				}
				return
			}
			if err != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()
	return events, nil
}
