package flow

import (
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
)

// Machine reduces hunt events against a session. It holds only static
// configuration; all mutable state lives in the Session.
type Machine struct {
	// KnownHosts are tokens that mark a decoded payload as a hunt code in
	// addition to the "http" marker.
	KnownHosts []string
}

// Reduce applies an event to the session and returns the next session plus
// an effect for the caller to execute. Events that do not apply in the
// current mode are ignored, which makes rapid duplicate triggers no-ops.
func (m Machine) Reduce(s Session, event Event) (Session, Effect) {
	switch typed := event.(type) {
	case ScanRequested:
		return m.reduceScanRequested(s)
	case ScanCancelled:
		return m.reduceScanCancelled(s)
	case CodeDecoded:
		return m.reduceCodeDecoded(s, typed)
	case QuestionLoaded:
		return m.reduceQuestionLoaded(s, typed)
	case ChoiceSelected:
		return m.reduceChoiceSelected(s, typed)
	case AnswerTyped:
		return m.reduceAnswerTyped(s, typed)
	case SubmitRequested:
		return m.reduceSubmitRequested(s)
	case VerdictArrived:
		return m.reduceVerdictArrived(s, typed)
	case NextRequested:
		return m.reduceNextRequested(s)
	case FlowFailed:
		return m.reduceFlowFailed(typed)
	}
	return s, nil
}

// reduceScanRequested enters Scanning from Idle.
func (m Machine) reduceScanRequested(s Session) (Session, Effect) {
	if s.Mode != ModeIdle {
		return s, nil
	}
	return Session{Mode: ModeScanning}, EffectBeginScan{}
}

// reduceScanCancelled returns to Idle leaving no partial state behind.
func (m Machine) reduceScanCancelled(s Session) (Session, Effect) {
	if s.Mode != ModeScanning {
		return s, nil
	}
	return Session{Mode: ModeIdle}, nil
}

// reduceCodeDecoded fetches recognized payloads and rejects the rest.
func (m Machine) reduceCodeDecoded(s Session, event CodeDecoded) (Session, Effect) {
	if s.Mode != ModeScanning {
		return s, nil
	}
	if !scanner.Recognized(event.Code.Text, m.KnownHosts) {
		return Session{Mode: ModeIdle, Notice: noticeInvalidCode}, nil
	}
	return s, EffectFetchQuestion{URL: event.Code.Text}
}

// reduceQuestionLoaded replaces the current question wholesale.
func (m Machine) reduceQuestionLoaded(s Session, event QuestionLoaded) (Session, Effect) {
	if s.Mode != ModeScanning {
		return s, nil
	}
	loaded := event.Question
	return Session{Mode: ModeQuestionShown, Current: &loaded}, nil
}

// reduceChoiceSelected records the picked choice while a question is shown.
func (m Machine) reduceChoiceSelected(s Session, event ChoiceSelected) (Session, Effect) {
	if s.Mode != ModeQuestionShown || s.Current == nil {
		return s, nil
	}
	s.SelectedChoice = event.Choice
	return s, nil
}

// reduceAnswerTyped records the free-form draft while a question is shown.
func (m Machine) reduceAnswerTyped(s Session, event AnswerTyped) (Session, Effect) {
	if s.Mode != ModeQuestionShown || s.Current == nil {
		return s, nil
	}
	s.AnswerDraft = event.Text
	return s, nil
}

// reduceSubmitRequested moves to Submitting when an answer is chosen. A
// trigger while already Submitting is a no-op, which is the duplicate
// submit guard.
func (m Machine) reduceSubmitRequested(s Session) (Session, Effect) {
	if !s.CanSubmit() {
		return s, nil
	}
	answer := s.Answer()
	s.Mode = ModeSubmitting
	s.Verdict = nil
	s.Notice = ""
	return s, EffectSubmitAnswer{Question: *s.Current, Answer: answer}
}

// reduceVerdictArrived shows the result on success and re-opens the
// question with the selection cleared on failure.
func (m Machine) reduceVerdictArrived(s Session, event VerdictArrived) (Session, Effect) {
	if s.Mode != ModeSubmitting {
		return s, nil
	}
	correct := event.Verdict.Correct
	s.Verdict = &correct
	if correct {
		s.Mode = ModeResultShown
		s.Reward = event.Verdict.Reward
		s.Notice = ""
		return s, nil
	}
	s.Mode = ModeQuestionShown
	s.SelectedChoice = ""
	s.AnswerDraft = ""
	s.Reward = nil
	s.Notice = noticeTryAgain
	return s, nil
}

// reduceNextRequested resets the session fully and re-enters Scanning.
func (m Machine) reduceNextRequested(s Session) (Session, Effect) {
	if s.Mode != ModeResultShown {
		return s, nil
	}
	return Session{Mode: ModeScanning}, EffectBeginScan{}
}

// reduceFlowFailed drops to Idle with a dismissable notice, whatever the
// prior mode.
func (m Machine) reduceFlowFailed(event FlowFailed) (Session, Effect) {
	return Session{Mode: ModeIdle, Notice: noticeFor(event.Err)}, nil
}
