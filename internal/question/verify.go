package question

import (
	"context"
	"fmt"
)

// Verdict is the outcome of checking a submitted answer.
type Verdict struct {
	Correct bool
	Reward  []int
}

// Notifier delivers a submitted answer to a hunt endpoint.
type Notifier interface {
	SubmitAnswer(ctx context.Context, endpoint, answer string) (bool, error)
}

// Verifier decides whether a submitted answer is correct. Verification is
// a pluggable capability: the verdict may come from a local comparison or
// from the remote hunt backend.
type Verifier interface {
	Verify(ctx context.Context, q Question, answer string) (Verdict, error)
}

// LocalVerifier compares the answer against the expected value carried by
// the question and notifies the submit endpoint fire-and-forget. This
// matches the observed behavior of the original client: the backend is
// told about the submission but its response does not affect the verdict.
type LocalVerifier struct {
	Notifier Notifier
}

// Verify evaluates the answer locally and notifies the endpoint.
func (v LocalVerifier) Verify(ctx context.Context, q Question, answer string) (Verdict, error) {
	verdict := Verdict{Correct: AnswerMatches(answer, q.ExpectedAnswer)}
	if verdict.Correct {
		verdict.Reward = q.RewardPoints
	}
	if v.Notifier != nil && q.SubmitEndpoint != "" {
		// Notification only; a delivery failure does not change the verdict.
		_, _ = v.Notifier.SubmitAnswer(ctx, q.SubmitEndpoint, answer)
	}
	return verdict, nil
}

// RemoteVerifier submits the answer and trusts the backend's verdict.
type RemoteVerifier struct {
	Notifier Notifier
}

// Verify submits the answer and returns the server-side verdict.
func (v RemoteVerifier) Verify(ctx context.Context, q Question, answer string) (Verdict, error) {
	if v.Notifier == nil {
		return Verdict{}, fmt.Errorf("remote verification requires a notifier")
	}
	if q.SubmitEndpoint == "" {
		return Verdict{}, fmt.Errorf("remote verification requires a submit endpoint")
	}
	correct, err := v.Notifier.SubmitAnswer(ctx, q.SubmitEndpoint, answer)
	if err != nil {
		return Verdict{}, err
	}
	verdict := Verdict{Correct: correct}
	if correct {
		verdict.Reward = q.RewardPoints
	}
	return verdict, nil
}
