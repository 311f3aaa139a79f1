package live

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KiyoScript/scavenger-hunt/internal/flow"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
	"github.com/KiyoScript/scavenger-hunt/internal/testutil"
)

const testHost = "example.mock.pstmn.io"

// scriptedScanner yields one queued code per activation.
type scriptedScanner struct {
	codes []scanner.Code
}

func (s *scriptedScanner) RequestAccess(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *scriptedScanner) BeginScan(ctx context.Context) (<-chan scanner.Code, error) {
	ch := make(chan scanner.Code, 1)
	if len(s.codes) > 0 {
		ch <- s.codes[0]
		s.codes = s.codes[1:]
	}
	close(ch)
	return ch, nil
}

// scriptedFetcher serves questions from a fixed URL map.
type scriptedFetcher struct {
	questions map[string]question.Question
}

func (f *scriptedFetcher) FetchQuestion(ctx context.Context, url string) (question.Question, error) {
	q, ok := f.questions[url]
	if !ok {
		return question.Question{}, question.ErrMalformedPayload
	}
	return q, nil
}

// colorQuestion mirrors the canonical hunt fixture.
func colorQuestion() question.Question {
	return question.Question{
		Prompt:         "Pick a color",
		Kind:           question.ResponseMultipleChoice,
		Choices:        []string{"red", "blue", "green"},
		ExpectedAnswer: "blue",
		RewardPoints:   []int{10},
	}
}

// testModel builds a model over scripted collaborators.
func testModel(t *testing.T) Model {
	t.Helper()
	ctx := testutil.Context(t, 2*time.Second)
	url := "https://" + testHost + "/q/q1"
	deps := flow.Deps{
		Scanner:  &scriptedScanner{codes: []scanner.Code{{Format: "QR_CODE", Text: url}}},
		Fetcher:  &scriptedFetcher{questions: map[string]question.Question{url: colorQuestion()}},
		Verifier: question.LocalVerifier{},
	}
	return NewModel(ctx, flow.Machine{KnownHosts: []string{testHost}}, deps, Options{NoColor: true})
}

// step executes a command tree, feeding resulting events back into the
// model until the flow settles.
func step(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			m = step(t, m, sub)
		}
		return m
	}
	if _, ok := msg.(eventMsg); !ok {
		// Spinner ticks and blinks carry no flow progress.
		return m
	}
	next, nextCmd := m.Update(msg)
	return step(t, next.(Model), nextCmd)
}

// press sends one key and resolves all follow-up commands.
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	return step(t, next.(Model), cmd)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestModelFullRound walks scan, choose, submit, and result via key
// presses.
func TestModelFullRound(t *testing.T) {
	m := testModel(t)

	m = press(t, m, keyRune('s'))
	if m.Session().Mode != flow.ModeQuestionShown {
		t.Fatalf("expected QuestionShown after scan, got %v", m.Session().Mode)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().SelectedChoice != "blue" {
		t.Fatalf("expected blue selected, got %q", m.Session().SelectedChoice)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	session := m.Session()
	if session.Mode != flow.ModeResultShown {
		t.Fatalf("expected ResultShown, got %v", session.Mode)
	}
	if session.Verdict == nil || !*session.Verdict {
		t.Fatalf("expected a correct verdict, got %+v", session.Verdict)
	}
	if !strings.Contains(m.View(), "10 points") {
		t.Fatalf("expected reward in view, got %q", m.View())
	}
}

// TestModelWrongChoice verifies an incorrect pick re-opens the question.
func TestModelWrongChoice(t *testing.T) {
	m := testModel(t)
	m = press(t, m, keyRune('s'))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // select "red"
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // submit
	session := m.Session()
	if session.Mode != flow.ModeQuestionShown {
		t.Fatalf("expected QuestionShown after wrong answer, got %v", session.Mode)
	}
	if session.SelectedChoice != "" {
		t.Fatalf("expected selection cleared, got %q", session.SelectedChoice)
	}
	if !strings.Contains(m.View(), "Not quite") {
		t.Fatalf("expected retry notice in view, got %q", m.View())
	}
}

// TestModelFreeFormTyping verifies typed answers flow into the draft.
func TestModelFreeFormTyping(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	url := "https://" + testHost + "/q/q2"
	open := question.Question{Prompt: "Name the statue", Kind: question.ResponseOther, ExpectedAnswer: "atlas"}
	deps := flow.Deps{
		Scanner:  &scriptedScanner{codes: []scanner.Code{{Format: "QR_CODE", Text: url}}},
		Fetcher:  &scriptedFetcher{questions: map[string]question.Question{url: open}},
		Verifier: question.LocalVerifier{},
	}
	m := NewModel(ctx, flow.Machine{KnownHosts: []string{testHost}}, deps, Options{NoColor: true})

	m = press(t, m, keyRune('s'))
	for _, r := range "Atlas" {
		m = press(t, m, keyRune(r))
	}
	if m.Session().AnswerDraft != "Atlas" {
		t.Fatalf("expected draft %q, got %q", "Atlas", m.Session().AnswerDraft)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().Mode != flow.ModeResultShown {
		t.Fatalf("expected ResultShown for normalized match, got %v", m.Session().Mode)
	}
}

// TestModelUnrecognizedCode verifies stray payloads bounce back to Idle.
func TestModelUnrecognizedCode(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	deps := flow.Deps{
		Scanner:  &scriptedScanner{codes: []scanner.Code{{Format: "QR_CODE", Text: "WIFI:S:guest;;"}}},
		Fetcher:  &scriptedFetcher{},
		Verifier: question.LocalVerifier{},
	}
	m := NewModel(ctx, flow.Machine{KnownHosts: []string{testHost}}, deps, Options{NoColor: true})

	m = press(t, m, keyRune('s'))
	session := m.Session()
	if session.Mode != flow.ModeIdle {
		t.Fatalf("expected Idle after unrecognized code, got %v", session.Mode)
	}
	if !strings.Contains(session.Notice, "not part of the hunt") {
		t.Fatalf("expected invalid code notice, got %q", session.Notice)
	}
}
