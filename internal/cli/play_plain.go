package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KiyoScript/scavenger-hunt/internal/flow"
)

// runPlainLoop drives the hunt flow as a line-oriented dialogue. Effects
// run synchronously inside the controller, so each prompt reflects the
// settled session.
func runPlainLoop(ctx context.Context, ctrl *flow.Controller, in *bufio.Reader, out io.Writer) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		session := ctrl.Session()
		if session.Notice != "" {
			fmt.Fprintln(out, session.Notice)
		}

		switch session.Mode {
		case flow.ModeIdle:
			fmt.Fprintln(out, "Press enter to scan a code, or 'q' to quit.")
			line, ok := readLine(in)
			if !ok || line == "q" {
				return nil
			}
			fmt.Fprintln(out, "Paste the code payload:")
			ctrl.Dispatch(ctx, flow.ScanRequested{})
		case flow.ModeQuestionShown:
			if done := promptAnswer(ctx, ctrl, in, out); done {
				return nil
			}
		case flow.ModeResultShown:
			printResult(out, session.Reward)
			fmt.Fprintln(out, "Press enter for the next question, or 'q' to quit.")
			line, ok := readLine(in)
			if !ok || line == "q" {
				return nil
			}
			fmt.Fprintln(out, "Paste the code payload:")
			ctrl.Dispatch(ctx, flow.NextRequested{})
		default:
			// Scanning and Submitting never persist across a dispatch.
			ctrl.Dispatch(ctx, flow.ScanCancelled{})
			if ctrl.Session().Mode != flow.ModeIdle {
				return fmt.Errorf("flow stuck in %v", ctrl.Session().Mode)
			}
		}
	}
}

// promptAnswer shows the current question and submits one answer. It
// returns true when the user quits or input ends.
func promptAnswer(ctx context.Context, ctrl *flow.Controller, in *bufio.Reader, out io.Writer) bool {
	session := ctrl.Session()
	q := session.Current
	if q == nil {
		return true
	}

	fmt.Fprintln(out, q.Prompt)
	if q.Hint != "" {
		fmt.Fprintln(out, "Hint: "+q.Hint)
	}
	if q.MultipleChoice() {
		for i, choice := range q.Choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, choice)
		}
		fmt.Fprintln(out, "Pick a choice by number, or 'q' to quit.")
		line, ok := readLine(in)
		if !ok || line == "q" {
			return true
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(q.Choices) {
			fmt.Fprintln(out, "Please enter a number from the list.")
			return false
		}
		ctrl.Dispatch(ctx, flow.ChoiceSelected{Choice: q.Choices[idx-1]})
		ctrl.Dispatch(ctx, flow.SubmitRequested{})
		return false
	}

	fmt.Fprintln(out, "Type your answer, or 'q' to quit.")
	line, ok := readLine(in)
	if !ok || line == "q" {
		return true
	}
	ctrl.Dispatch(ctx, flow.AnswerTyped{Text: line})
	ctrl.Dispatch(ctx, flow.SubmitRequested{})
	return false
}

// printResult reports a correct answer and any reward points.
func printResult(out io.Writer, reward []int) {
	total := 0
	for _, p := range reward {
		total += p
	}
	if total > 0 {
		fmt.Fprintf(out, "Correct! You earned %d points.\n", total)
		return
	}
	fmt.Fprintln(out, "Correct!")
}

// readLine reads one trimmed line, reporting false at end of input.
func readLine(in *bufio.Reader) (string, bool) {
	line, err := in.ReadString('\n')
	text := strings.TrimSpace(line)
	if err != nil && text == "" {
		return "", false
	}
	return text, true
}
