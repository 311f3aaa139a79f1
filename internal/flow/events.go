package flow

import (
	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
)

// Event is a user trigger or a completed suspension delivered to the
// reducer.
type Event interface {
	flowEvent()
}

// ScanRequested is the user starting a scan from Idle.
type ScanRequested struct{}

// ScanCancelled is an explicit cancel, or an activation that ended without
// a decode.
type ScanCancelled struct{}

// CodeDecoded is a decode event from the scanner.
type CodeDecoded struct {
	Code scanner.Code
}

// QuestionLoaded is a successful question fetch.
type QuestionLoaded struct {
	Question question.Question
}

// ChoiceSelected is the user picking a multiple-choice entry.
type ChoiceSelected struct {
	Choice string
}

// AnswerTyped is the user editing a free-form answer draft.
type AnswerTyped struct {
	Text string
}

// SubmitRequested is the user confirming the selected answer.
type SubmitRequested struct{}

// VerdictArrived is a completed answer verification.
type VerdictArrived struct {
	Verdict question.Verdict
}

// NextRequested is the user asking for the next question from ResultShown.
type NextRequested struct{}

// FlowFailed is an unrecoverable fetch, submit, or permission error.
type FlowFailed struct {
	Err error
}

func (ScanRequested) flowEvent()   {}
func (ScanCancelled) flowEvent()   {}
func (CodeDecoded) flowEvent()     {}
func (QuestionLoaded) flowEvent()  {}
func (ChoiceSelected) flowEvent()  {}
func (AnswerTyped) flowEvent()     {}
func (SubmitRequested) flowEvent() {}
func (VerdictArrived) flowEvent()  {}
func (NextRequested) flowEvent()   {}
func (FlowFailed) flowEvent()      {}
