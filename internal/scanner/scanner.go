// Package scanner adapts sources of decoded visual codes to the hunt flow.
// A scanner stands in for the platform capability that yields decoded text
// from a visual code: activating one produces a finite sequence of decode
// events that ends at the first decode or when the caller cancels.
package scanner

import (
	"context"
	"errors"
)

// ErrPermissionDenied indicates the user declined scanner access.
var ErrPermissionDenied = errors.New("scanner access denied")

// ErrInvalidCode indicates a decoded payload the hunt does not recognize.
var ErrInvalidCode = errors.New("unrecognized code payload")

// Code is a single decoded visual code.
type Code struct {
	Format string
	Text   string
}

// Scanner yields decoded codes from some capture source.
type Scanner interface {
	// RequestAccess asks for permission to use the source. It is idempotent
	// and prompts at most once per process.
	RequestAccess(ctx context.Context) (bool, error)
	// BeginScan starts one activation. The returned channel delivers at most
	// one code and is closed afterwards, or when the context is cancelled.
	// A new activation is started by calling BeginScan again.
	BeginScan(ctx context.Context) (<-chan Code, error)
}
