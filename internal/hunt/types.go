// Package hunt holds the operator-side hunt definition: the set of
// questions published behind scannable codes. The practice server and the
// QR encoder both consume it.
package hunt

import (
	"strings"

	"github.com/KiyoScript/scavenger-hunt/internal/question"
)

// Hunt is a published set of questions loaded from hunt.yml.
type Hunt struct {
	Version   int     `yaml:"version"`
	BaseURL   string  `yaml:"base_url"`
	Questions []Entry `yaml:"questions"`
}

// Entry is one published question addressed by its slug.
type Entry struct {
	Slug         string   `yaml:"slug"`
	Prompt       string   `yaml:"question"`
	Hint         string   `yaml:"hint"`
	ImgSrc       string   `yaml:"img_src"`
	ResponseType string   `yaml:"response_type"`
	Choices      []string `yaml:"choices"`
	Answer       string   `yaml:"answer"`
	Points       []int    `yaml:"points"`
	AgeGroup     string   `yaml:"age_group"`
}

// Find returns the entry with the given slug.
func (h Hunt) Find(slug string) (Entry, bool) {
	for _, entry := range h.Questions {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return Entry{}, false
}

// QuestionURL returns the fetch URL for an entry under a base URL.
func (e Entry) QuestionURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/q/" + e.Slug
}

// MultipleChoice reports whether the entry expects a choice answer.
func (e Entry) MultipleChoice() bool {
	return strings.TrimSpace(e.ResponseType) == string(question.ResponseMultipleChoice)
}

// ToQuestion converts an entry into the client question model.
func (e Entry) ToQuestion(baseURL string) question.Question {
	kind := question.ResponseOther
	if e.MultipleChoice() {
		kind = question.ResponseMultipleChoice
	}
	return question.Question{
		Prompt:         e.Prompt,
		ImageRef:       e.ImgSrc,
		Hint:           e.Hint,
		Kind:           kind,
		Choices:        e.Choices,
		RewardPoints:   e.Points,
		SubmitEndpoint: e.QuestionURL(baseURL) + "/answer",
		ExpectedAnswer: e.Answer,
		AgeGroup:       e.AgeGroup,
	}
}
