package flow

import (
	"errors"

	"github.com/KiyoScript/scavenger-hunt/internal/fetch"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
)

const (
	noticeInvalidCode = "That code is not part of the hunt."
	noticeTryAgain    = "Not quite. Try again!"
)

// noticeFor maps an error to the dismissable notice shown to the user.
func noticeFor(err error) string {
	switch {
	case err == nil:
		return "Something went wrong."
	case errors.Is(err, scanner.ErrPermissionDenied):
		return "Scanner access was denied. Allow access and try again."
	case errors.Is(err, scanner.ErrInvalidCode):
		return noticeInvalidCode
	case errors.Is(err, question.ErrMalformedPayload):
		return "The question could not be read. Scan again."
	case errors.Is(err, fetch.ErrNetwork):
		return "Could not reach the hunt service. Check your connection."
	default:
		return "Something went wrong: " + err.Error()
	}
}
