package question

import (
	"strings"
	"testing"
)

// TestValidateMultipleChoice verifies the expected answer must match exactly
// one choice case-insensitively.
func TestValidateMultipleChoice(t *testing.T) {
	cases := []struct {
		name     string
		question Question
		wantErr  string
	}{
		{
			name: "valid",
			question: Question{
				Prompt:         "Pick a color",
				Kind:           ResponseMultipleChoice,
				Choices:        []string{"red", "blue", "green"},
				ExpectedAnswer: "Blue",
			},
		},
		{
			name: "no matching choice",
			question: Question{
				Prompt:         "Pick a color",
				Kind:           ResponseMultipleChoice,
				Choices:        []string{"red", "green"},
				ExpectedAnswer: "blue",
			},
			wantErr: "matches 0",
		},
		{
			name: "duplicate match",
			question: Question{
				Prompt:         "Pick a color",
				Kind:           ResponseMultipleChoice,
				Choices:        []string{"blue", "Blue"},
				ExpectedAnswer: "blue",
			},
			wantErr: "matches 2",
		},
		{
			name: "empty choices",
			question: Question{
				Prompt:         "Pick a color",
				Kind:           ResponseMultipleChoice,
				ExpectedAnswer: "blue",
			},
			wantErr: "at least one entry",
		},
		{
			name:     "missing prompt",
			question: Question{Kind: ResponseOther},
			wantErr:  "question: is required",
		},
		{
			name:     "free form needs no choices",
			question: Question{Prompt: "Name the statue", Kind: ResponseOther},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.question)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

// TestAnswerMatches verifies case-insensitive matching and empty rejection.
func TestAnswerMatches(t *testing.T) {
	cases := []struct {
		submitted string
		expected  string
		want      bool
	}{
		{submitted: "blue", expected: "blue", want: true},
		{submitted: "BLUE", expected: "blue", want: true},
		{submitted: " Blue ", expected: "blue", want: true},
		{submitted: "green", expected: "blue", want: false},
		{submitted: "", expected: "blue", want: false},
		{submitted: "   ", expected: "", want: false},
	}
	for _, tc := range cases {
		if got := AnswerMatches(tc.submitted, tc.expected); got != tc.want {
			t.Fatalf("AnswerMatches(%q, %q) = %v, want %v", tc.submitted, tc.expected, got, tc.want)
		}
	}
}
