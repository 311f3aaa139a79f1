// Package fetch talks to the remote question service: one GET to load a
// question, one POST to submit an answer. No retries; a failed call is
// surfaced to the caller and the user re-initiates.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/KiyoScript/scavenger-hunt/internal/question"
)

// ErrNetwork indicates a transport failure, timeout, or error status.
var ErrNetwork = errors.New("network failure")

// maxPayloadBytes bounds how much of a response body is read.
const maxPayloadBytes = 1 << 20

// HTTPDoer abstracts the HTTP client used by the fetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches questions and submits answers over HTTP. Every submission
// carries the client session id and a fresh submission id.
type Client struct {
	client    HTTPDoer
	defaults  question.Defaults
	sessionID string
}

// New constructs a fetch client. A nil doer falls back to
// http.DefaultClient.
func New(client HTTPDoer, defaults question.Defaults) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		client:    client,
		defaults:  defaults,
		sessionID: uuid.NewString(),
	}
}

// NewWithTimeout constructs a fetch client with a per-request timeout so an
// unresponsive service cannot leave the flow stuck in Submitting.
func NewWithTimeout(timeout time.Duration, defaults question.Defaults) *Client {
	return New(&http.Client{Timeout: timeout}, defaults)
}

// SessionID returns the client session identifier sent with submissions.
func (c *Client) SessionID() string {
	return c.sessionID
}

// FetchQuestion performs a single GET against the question URL. Failures
// are ErrNetwork for transport problems and question.ErrMalformedPayload
// for decodable bodies missing required fields.
func (c *Client) FetchQuestion(ctx context.Context, url string) (question.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return question.Question{}, fmt.Errorf("build question request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return question.Question{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return question.Question{}, fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return question.Question{}, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return question.DecodeWire(body, c.defaults)
}

// submission is the JSON body posted to the answer endpoint.
type submission struct {
	Answer       string `json:"answer"`
	SessionID    string `json:"session_id"`
	SubmissionID string `json:"submission_id"`
}

// verdictResponse is the JSON body the answer endpoint may return.
type verdictResponse struct {
	Correct bool `json:"correct"`
}

// SubmitAnswer posts the selected answer to the submit endpoint and returns
// the backend's verdict when it provides one. A missing or undecodable
// verdict body counts as "not confirmed" rather than an error, since local
// verification only needs the notification delivered.
func (c *Client) SubmitAnswer(ctx context.Context, endpoint, answer string) (bool, error) {
	payload, err := json.Marshal(submission{
		Answer:       answer,
		SessionID:    c.sessionID,
		SubmissionID: uuid.NewString(),
	})
	if err != nil {
		return false, fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return false, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	var verdict verdictResponse
	if err := json.Unmarshal(body, &verdict); err != nil {
		return false, nil
	}
	return verdict.Correct, nil
}
