// Package flow models the hunt interaction as a state machine: a pure
// reducer maps the current session and an event to the next session plus
// at most one effect for the caller to execute. The session is the single
// authoritative in-memory model; only the reducer mutates it.
package flow

import "github.com/KiyoScript/scavenger-hunt/internal/question"

// Mode is the current screen mode of the hunt session.
type Mode int

const (
	// ModeIdle is the rest state: nothing scanned, nothing loaded.
	ModeIdle Mode = iota
	// ModeScanning means a scanner activation is in progress.
	ModeScanning
	// ModeQuestionShown means a question is loaded and awaiting an answer.
	ModeQuestionShown
	// ModeSubmitting means an answer is in flight; further submits are
	// ignored until a verdict arrives.
	ModeSubmitting
	// ModeResultShown means a correct verdict is on display.
	ModeResultShown
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeScanning:
		return "Scanning"
	case ModeQuestionShown:
		return "QuestionShown"
	case ModeSubmitting:
		return "Submitting"
	case ModeResultShown:
		return "ResultShown"
	default:
		return "Unknown"
	}
}

// Session holds the mutable client state. Exactly one instance exists for
// the lifetime of a run.
//
// Invariants: SelectedChoice is set only while Current is present; Verdict
// is set only after a submit completes; ModeIdle implies every optional
// field is unset.
type Session struct {
	Mode           Mode
	Current        *question.Question
	SelectedChoice string
	AnswerDraft    string
	Verdict        *bool
	Reward         []int
	Notice         string
}

// Answer returns the value a submit would send for the current question.
func (s Session) Answer() string {
	if s.Current != nil && s.Current.MultipleChoice() {
		return s.SelectedChoice
	}
	return s.AnswerDraft
}

// CanSubmit reports whether a submit trigger would be honored.
func (s Session) CanSubmit() bool {
	if s.Mode != ModeQuestionShown || s.Current == nil {
		return false
	}
	return s.Answer() != ""
}
