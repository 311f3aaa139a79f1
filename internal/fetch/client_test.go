package fetch

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/testutil"
)

// TestFetchQuestion verifies a wire payload decodes with defaults applied.
func TestFetchQuestion(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"question": "Pick a color",
			"responseType": "multipleChoice",
			"choices": ["red", "blue", "green"],
			"pointsRewarded": [10]
		}`)
	}))
	defer server.Close()

	client := New(nil, question.Defaults{
		SubmitEndpoint: server.URL + "/answer",
		ExpectedAnswer: "blue",
	})
	q, err := client.FetchQuestion(ctx, server.URL+"/q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Prompt != "Pick a color" || !q.MultipleChoice() {
		t.Fatalf("unexpected question %+v", q)
	}
	if q.SubmitEndpoint != server.URL+"/answer" || q.ExpectedAnswer != "blue" {
		t.Fatalf("expected defaults injected, got %+v", q)
	}
	if err := question.Validate(q); err != nil {
		t.Fatalf("fetched question failed validation: %v", err)
	}
}

// TestFetchQuestionErrors verifies the error taxonomy of the fetcher.
func TestFetchQuestionErrors(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)

	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: ErrNetwork,
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				io.WriteString(w, `{"hint": "no question field"}`)
			},
			want: question.ErrMalformedPayload,
		},
		{
			name: "choices missing",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				io.WriteString(w, `{"question": "Q", "responseType": "multipleChoice"}`)
			},
			want: question.ErrMalformedPayload,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := New(nil, question.Defaults{})
			if _, err := client.FetchQuestion(ctx, server.URL); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// TestFetchQuestionUnreachable verifies transport failures map to ErrNetwork.
func TestFetchQuestionUnreachable(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := NewWithTimeout(500*time.Millisecond, question.Defaults{})
	if _, err := client.FetchQuestion(ctx, server.URL); !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

// TestSubmitAnswer verifies the submission body and verdict decoding.
func TestSubmitAnswer(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)

	var got struct {
		Answer       string `json:"answer"`
		SessionID    string `json:"session_id"`
		SubmissionID string `json:"submission_id"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		io.WriteString(w, `{"correct": true}`)
	}))
	defer server.Close()

	client := New(nil, question.Defaults{})
	correct, err := client.SubmitAnswer(ctx, server.URL, "blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !correct {
		t.Fatalf("expected correct verdict")
	}
	if got.Answer != "blue" {
		t.Fatalf("unexpected submitted answer %q", got.Answer)
	}
	if got.SessionID != client.SessionID() {
		t.Fatalf("expected session id %q, got %q", client.SessionID(), got.SessionID)
	}
	if got.SubmissionID == "" {
		t.Fatalf("expected a submission id")
	}
}

// TestSubmitAnswerNoVerdict verifies a bodyless acknowledgement is not an
// error: local verification only needs the notification delivered.
func TestSubmitAnswerNoVerdict(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(nil, question.Defaults{})
	correct, err := client.SubmitAnswer(ctx, server.URL, "blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if correct {
		t.Fatalf("expected unconfirmed verdict without a body")
	}
}

// TestSubmitAnswerErrorStatus verifies error statuses map to ErrNetwork.
func TestSubmitAnswerErrorStatus(t *testing.T) {
	ctx := testutil.Context(t, 2*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(nil, question.Defaults{})
	if _, err := client.SubmitAnswer(ctx, server.URL, "blue"); !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}
