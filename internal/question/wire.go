package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPayload indicates a decodable payload missing required fields.
var ErrMalformedPayload = errors.New("malformed question payload")

// Defaults supplies deployment fallbacks for fields the service may omit.
type Defaults struct {
	SubmitEndpoint string
	ExpectedAnswer string
}

// wireQuestion mirrors the JSON contract of the question service. The
// "Age group" field is carried through untouched; nothing in the flow
// consumes it.
type wireQuestion struct {
	ImgSrc         string   `json:"img_src"`
	Prompt         string   `json:"question"`
	Hint           string   `json:"hint"`
	ResponseType   string   `json:"responseType"`
	Choices        []string `json:"choices"`
	PointsRewarded []int    `json:"pointsRewarded"`
	AgeGroup       string   `json:"Age group"`
	SubmitURL      string   `json:"url"`
	Answer         string   `json:"answer"`
}

// DecodeWire parses a question service payload into a Question. Server
// supplied submit endpoint and expected answer take precedence over the
// configured defaults.
func DecodeWire(data []byte, defaults Defaults) (Question, error) {
	var wire wireQuestion
	if err := json.Unmarshal(data, &wire); err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	q := Question{
		Prompt:         strings.TrimSpace(wire.Prompt),
		ImageRef:       strings.TrimSpace(wire.ImgSrc),
		Hint:           strings.TrimSpace(wire.Hint),
		Kind:           kindFromWire(wire.ResponseType),
		Choices:        trimAll(wire.Choices),
		RewardPoints:   wire.PointsRewarded,
		SubmitEndpoint: strings.TrimSpace(wire.SubmitURL),
		ExpectedAnswer: strings.TrimSpace(wire.Answer),
		AgeGroup:       strings.TrimSpace(wire.AgeGroup),
	}
	if q.SubmitEndpoint == "" {
		q.SubmitEndpoint = defaults.SubmitEndpoint
	}
	if q.ExpectedAnswer == "" {
		q.ExpectedAnswer = defaults.ExpectedAnswer
	}

	if q.Prompt == "" {
		return Question{}, fmt.Errorf("%w: missing question text", ErrMalformedPayload)
	}
	if q.MultipleChoice() && len(q.Choices) == 0 {
		return Question{}, fmt.Errorf("%w: multiple choice without choices", ErrMalformedPayload)
	}
	return q, nil
}

// kindFromWire maps the wire responseType onto a ResponseKind. Anything
// other than the recognized multiple choice marker is treated as free form.
func kindFromWire(responseType string) ResponseKind {
	if strings.TrimSpace(responseType) == string(ResponseMultipleChoice) {
		return ResponseMultipleChoice
	}
	return ResponseOther
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
