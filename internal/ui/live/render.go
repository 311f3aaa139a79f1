package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KiyoScript/scavenger-hunt/internal/flow"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
)

// View renders the session for the current mode.
func (m Model) View() string {
	lines := []string{renderHeader(m.noColor), ""}
	if m.session.Notice != "" {
		lines = append(lines, stylize(m.session.Notice, m.noColor, lipgloss.Color("178")), "")
	}

	switch m.session.Mode {
	case flow.ModeIdle:
		lines = append(lines, "Ready when you are.")
	case flow.ModeScanning:
		lines = append(lines, "Scanning for a code...")
	case flow.ModeQuestionShown:
		lines = append(lines, m.renderQuestion()...)
	case flow.ModeSubmitting:
		lines = append(lines, m.renderQuestion()...)
		lines = append(lines, "", m.spin.View()+" Checking your answer...")
	case flow.ModeResultShown:
		lines = append(lines, m.renderResult()...)
	}

	lines = append(lines, "", renderKeys(m.session, m.noColor))
	return strings.Join(lines, "\n") + "\n"
}

// renderQuestion renders the prompt, hint, and answer input.
func (m Model) renderQuestion() []string {
	q := m.session.Current
	if q == nil {
		return nil
	}
	lines := []string{stylize(q.Prompt, m.noColor, lipgloss.Color("15"))}
	if q.Hint != "" {
		lines = append(lines, stylize("Hint: "+q.Hint, m.noColor, lipgloss.Color("242")))
	}
	lines = append(lines, "")

	if q.MultipleChoice() {
		for i, choice := range q.Choices {
			marker := "  "
			if i == m.cursor {
				marker = "> "
			}
			line := marker + choice
			if m.session.SelectedChoice == choice {
				line += " *"
				line = stylize(line, m.noColor, lipgloss.Color("39"))
			}
			lines = append(lines, line)
		}
		return lines
	}
	return append(lines, m.input.View())
}

// renderResult renders the pass screen with any reward.
func (m Model) renderResult() []string {
	lines := []string{stylize("Correct!", m.noColor, lipgloss.Color("40"))}
	if total := rewardTotal(m.session.Reward); total > 0 {
		lines = append(lines, "You earned "+strconv.Itoa(total)+" points.")
	}
	return lines
}

// renderHeader renders the title line.
func renderHeader(noColor bool) string {
	return stylize("Scavenger Hunt", noColor, lipgloss.Color("33"))
}

// renderKeys renders the key help for the current mode.
func renderKeys(session flow.Session, noColor bool) string {
	var help string
	switch session.Mode {
	case flow.ModeIdle:
		help = "s scan | q quit"
	case flow.ModeScanning:
		help = "c cancel | q quit"
	case flow.ModeQuestionShown:
		if session.Current != nil && session.Current.Kind == question.ResponseMultipleChoice {
			help = "up/down choose | enter select, enter again to submit | q quit"
		} else {
			help = "type your answer | enter submit"
		}
	case flow.ModeSubmitting:
		help = "q quit"
	case flow.ModeResultShown:
		help = "n next | q quit"
	}
	return stylize(help, noColor, lipgloss.Color("240"))
}

// rewardTotal sums the points awarded with a verdict.
func rewardTotal(points []int) int {
	total := 0
	for _, p := range points {
		total += p
	}
	return total
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
