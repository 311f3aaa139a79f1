package flow

import "github.com/KiyoScript/scavenger-hunt/internal/question"

// Effect is an action the caller executes after a reduction. Completion is
// reported back to the reducer as an Event. A nil Effect means nothing to
// do.
type Effect interface {
	flowEffect()
}

// EffectBeginScan asks the caller to request scanner access and start one
// activation.
type EffectBeginScan struct{}

// EffectFetchQuestion asks the caller to fetch the question at a URL.
type EffectFetchQuestion struct {
	URL string
}

// EffectSubmitAnswer asks the caller to verify the answer for a question.
type EffectSubmitAnswer struct {
	Question question.Question
	Answer   string
}

func (EffectBeginScan) flowEffect()     {}
func (EffectFetchQuestion) flowEffect() {}
func (EffectSubmitAnswer) flowEffect()  {}
