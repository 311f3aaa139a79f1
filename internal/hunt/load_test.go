package hunt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeHunt drops a hunt definition into a temp dir.
func writeHunt(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hunt.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write hunt: %v", err)
	}
	return path
}

const sampleHunt = `version: 1
base_url: "http://127.0.0.1:8640"
questions:
  - slug: q1
    question: "Pick a color"
    response_type: multipleChoice
    choices: ["red", "blue", "green"]
    answer: blue
    points: [10]
    hint: "It is the sky"
    age_group: "8-12"
  - slug: q2
    question: "Name the statue by the fountain"
    answer: atlas
`

// TestLoadHunt verifies a definition loads with derived URLs.
func TestLoadHunt(t *testing.T) {
	h, err := Load(writeHunt(t, sampleHunt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Questions) != 2 {
		t.Fatalf("expected two questions, got %d", len(h.Questions))
	}

	entry, ok := h.Find("q1")
	if !ok {
		t.Fatalf("expected to find q1")
	}
	if !entry.MultipleChoice() {
		t.Fatalf("expected q1 to be multiple choice")
	}
	if got := entry.QuestionURL(h.BaseURL); got != "http://127.0.0.1:8640/q/q1" {
		t.Fatalf("unexpected question URL %q", got)
	}

	q := entry.ToQuestion(h.BaseURL)
	if q.SubmitEndpoint != "http://127.0.0.1:8640/q/q1/answer" {
		t.Fatalf("unexpected submit endpoint %q", q.SubmitEndpoint)
	}
	if q.ExpectedAnswer != "blue" || q.AgeGroup != "8-12" {
		t.Fatalf("unexpected question %+v", q)
	}

	if _, ok := h.Find("missing"); ok {
		t.Fatalf("expected missing slug to be absent")
	}
}

// TestLoadHuntValidation verifies definition-level invariants.
func TestLoadHuntValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no questions",
			content: "version: 1\nquestions: []\n",
			wantErr: "questions: must include at least one entry",
		},
		{
			name: "duplicate slug",
			content: `version: 1
questions:
  - slug: q1
    question: "A"
    answer: a
  - slug: q1
    question: "B"
    answer: b
`,
			wantErr: "duplicate slug",
		},
		{
			name: "bad slug",
			content: `version: 1
questions:
  - slug: "Q 1"
    question: "A"
    answer: a
`,
			wantErr: "invalid slug",
		},
		{
			name: "answer not among choices",
			content: `version: 1
questions:
  - slug: q1
    question: "Pick"
    response_type: multipleChoice
    choices: ["red", "green"]
    answer: blue
`,
			wantErr: "must match exactly one choice",
		},
		{
			name: "missing answer",
			content: `version: 1
questions:
  - slug: q1
    question: "Open question"
`,
			wantErr: "answer: is required",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeHunt(t, tc.content))
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}
