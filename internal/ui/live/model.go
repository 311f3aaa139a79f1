// Package live renders the hunt session as an interactive terminal UI.
// The view is a pure function of the flow session; every user key becomes
// a flow event and every effect runs as a Bubble Tea command whose result
// is fed back as another event.
package live

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KiyoScript/scavenger-hunt/internal/flow"
)

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// Model drives the hunt flow from terminal input.
type Model struct {
	machine flow.Machine
	deps    flow.Deps
	session flow.Session

	ctx  context.Context
	scan *scanHandle

	cursor  int
	input   textinput.Model
	spin    spinner.Model
	noColor bool
}

// scanHandle carries the cancel function of the active scan activation.
type scanHandle struct {
	cancel context.CancelFunc
}

// NewModel constructs a live UI model over the flow collaborators.
func NewModel(ctx context.Context, machine flow.Machine, deps flow.Deps, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Your answer"
	input.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		machine: machine,
		deps:    deps,
		ctx:     ctx,
		input:   input,
		spin:    spin,
		noColor: opts.NoColor,
	}
}

// Init waits for the first key press.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// eventMsg wraps a flow event for Bubble Tea.
type eventMsg struct {
	event flow.Event
}

// Update consumes key presses, spinner ticks, and flow events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(typed)
	case eventMsg:
		return m.applyEvent(typed.event)
	case spinner.TickMsg:
		if m.session.Mode != flow.ModeSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(typed)
		return m, cmd
	}
	return m, nil
}

// updateKey translates a key press into flow events for the current mode.
func (m Model) updateKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC || (m.session.Mode != flow.ModeQuestionShown && key.String() == "q") {
		m.cancelScan()
		return m, tea.Quit
	}

	switch m.session.Mode {
	case flow.ModeIdle:
		if key.String() == "s" || key.Type == tea.KeyEnter {
			return m.applyEvent(flow.ScanRequested{})
		}
	case flow.ModeScanning:
		if key.String() == "c" || key.Type == tea.KeyEsc {
			m.cancelScan()
			return m, nil
		}
	case flow.ModeQuestionShown:
		return m.updateQuestionKey(key)
	case flow.ModeResultShown:
		if key.String() == "n" || key.Type == tea.KeyEnter {
			return m.applyEvent(flow.NextRequested{})
		}
	}
	return m, nil
}

// updateQuestionKey handles answering keys while a question is shown.
func (m Model) updateQuestionKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.session.Current
	if current == nil {
		return m, nil
	}

	if current.MultipleChoice() {
		switch key.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(current.Choices)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter, tea.KeySpace:
			choice := current.Choices[m.cursor]
			if key.Type == tea.KeyEnter && m.session.SelectedChoice == choice {
				return m.applyEvent(flow.SubmitRequested{})
			}
			return m.applyEvent(flow.ChoiceSelected{Choice: choice})
		}
		if key.String() == "q" {
			m.cancelScan()
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Type == tea.KeyEnter {
		return m.applyEvent(flow.SubmitRequested{})
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	next, _ := m.applyEvent(flow.AnswerTyped{Text: m.input.Value()})
	model := next.(Model)
	return model, cmd
}

// applyEvent reduces a flow event and schedules the resulting effect.
func (m Model) applyEvent(event flow.Event) (tea.Model, tea.Cmd) {
	var effect flow.Effect
	m.session, effect = m.machine.Reduce(m.session, event)
	m = m.syncWidgets(event)
	m, cmd := m.perform(effect)
	if m.session.Mode == flow.ModeSubmitting {
		cmd = tea.Batch(cmd, m.spin.Tick)
	}
	return m, cmd
}

// syncWidgets resets widget state on session transitions.
func (m Model) syncWidgets(event flow.Event) Model {
	switch event.(type) {
	case flow.QuestionLoaded:
		m.cursor = 0
		m.input.SetValue("")
		if m.session.Current != nil && !m.session.Current.MultipleChoice() {
			m.input.Focus()
		}
	case flow.VerdictArrived:
		if m.session.Mode == flow.ModeQuestionShown {
			// Incorrect answer: the draft was cleared by the reducer.
			m.input.SetValue("")
		}
	case flow.NextRequested, flow.FlowFailed, flow.ScanCancelled:
		m.cursor = 0
		m.input.SetValue("")
		m.input.Blur()
	}
	return m
}

// cancelScan stops the active scan activation, if any.
func (m *Model) cancelScan() {
	if m.scan != nil {
		m.scan.cancel()
		m.scan = nil
	}
}

// Session exposes the current session, primarily for tests.
func (m Model) Session() flow.Session {
	return m.session
}
