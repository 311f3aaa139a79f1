package live

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KiyoScript/scavenger-hunt/internal/flow"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
)

// perform turns a flow effect into a Bubble Tea command.
func (m Model) perform(effect flow.Effect) (Model, tea.Cmd) {
	switch typed := effect.(type) {
	case flow.EffectBeginScan:
		scanCtx, cancel := context.WithCancel(m.ctx)
		m.scan = &scanHandle{cancel: cancel}
		return m, m.scanCmd(scanCtx)
	case flow.EffectFetchQuestion:
		return m, m.fetchCmd(typed.URL)
	case flow.EffectSubmitAnswer:
		return m, m.submitCmd(typed.Question, typed.Answer)
	}
	return m, nil
}

// scanCmd runs one scan activation and reports its outcome as an event.
func (m Model) scanCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		granted, err := m.deps.Scanner.RequestAccess(ctx)
		if err != nil {
			return eventMsg{event: flow.FlowFailed{Err: err}}
		}
		if !granted {
			return eventMsg{event: flow.FlowFailed{Err: scanner.ErrPermissionDenied}}
		}
		codes, err := m.deps.Scanner.BeginScan(ctx)
		if err != nil {
			return eventMsg{event: flow.FlowFailed{Err: err}}
		}
		select {
		case code, ok := <-codes:
			if !ok {
				return eventMsg{event: flow.ScanCancelled{}}
			}
			return eventMsg{event: flow.CodeDecoded{Code: code}}
		case <-ctx.Done():
			return eventMsg{event: flow.ScanCancelled{}}
		}
	}
}

// fetchCmd loads the question behind a decoded code.
func (m Model) fetchCmd(url string) tea.Cmd {
	return func() tea.Msg {
		q, err := m.deps.Fetcher.FetchQuestion(m.ctx, url)
		if err != nil {
			return eventMsg{event: flow.FlowFailed{Err: err}}
		}
		return eventMsg{event: flow.QuestionLoaded{Question: q}}
	}
}

// submitCmd verifies an answer and reports the verdict.
func (m Model) submitCmd(q question.Question, answer string) tea.Cmd {
	return func() tea.Msg {
		verdict, err := m.deps.Verifier.Verify(m.ctx, q, answer)
		if err != nil {
			return eventMsg{event: flow.FlowFailed{Err: err}}
		}
		return eventMsg{event: flow.VerdictArrived{Verdict: verdict}}
	}
}
