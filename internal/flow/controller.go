package flow

import (
	"context"

	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
)

// Fetcher loads a question from a URL.
type Fetcher interface {
	FetchQuestion(ctx context.Context, url string) (question.Question, error)
}

// Deps are the collaborators the flow drives.
type Deps struct {
	Scanner  scanner.Scanner
	Fetcher  Fetcher
	Verifier question.Verifier
}

// Controller owns the session and runs effects synchronously: dispatching
// an event reduces it, executes the resulting effect, and feeds the
// completion back in until the flow settles. It is the single writer of
// the session; callers drive it from one goroutine.
type Controller struct {
	machine Machine
	deps    Deps
	session Session
}

// NewController builds a controller with an Idle session.
func NewController(machine Machine, deps Deps) *Controller {
	return &Controller{machine: machine, deps: deps}
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Dispatch reduces one event and executes effects until none remain.
func (c *Controller) Dispatch(ctx context.Context, event Event) {
	for event != nil {
		var effect Effect
		c.session, effect = c.machine.Reduce(c.session, event)
		event = c.perform(ctx, effect)
	}
}

// perform executes one effect and returns its completion event, if any.
func (c *Controller) perform(ctx context.Context, effect Effect) Event {
	switch typed := effect.(type) {
	case EffectBeginScan:
		return c.performScan(ctx)
	case EffectFetchQuestion:
		q, err := c.deps.Fetcher.FetchQuestion(ctx, typed.URL)
		if err != nil {
			return FlowFailed{Err: err}
		}
		return QuestionLoaded{Question: q}
	case EffectSubmitAnswer:
		verdict, err := c.deps.Verifier.Verify(ctx, typed.Question, typed.Answer)
		if err != nil {
			return FlowFailed{Err: err}
		}
		return VerdictArrived{Verdict: verdict}
	}
	return nil
}

// performScan requests access and waits for one activation to finish.
func (c *Controller) performScan(ctx context.Context) Event {
	granted, err := c.deps.Scanner.RequestAccess(ctx)
	if err != nil {
		return FlowFailed{Err: err}
	}
	if !granted {
		return FlowFailed{Err: scanner.ErrPermissionDenied}
	}
	events, err := c.deps.Scanner.BeginScan(ctx)
	if err != nil {
		return FlowFailed{Err: err}
	}
	select {
	case code, ok := <-events:
		if !ok {
			return ScanCancelled{}
		}
		return CodeDecoded{Code: code}
	case <-ctx.Done():
		return ScanCancelled{}
	}
}
