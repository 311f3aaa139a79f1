package question

// ResponseKind identifies how a question expects to be answered.
type ResponseKind string

const (
	// ResponseMultipleChoice marks questions answered by picking a choice.
	ResponseMultipleChoice ResponseKind = "multipleChoice"
	// ResponseOther marks questions answered with free-form text.
	ResponseOther ResponseKind = "other"
)

// Question represents one scavenger-hunt challenge.
type Question struct {
	Prompt         string
	ImageRef       string
	Hint           string
	Kind           ResponseKind
	Choices        []string
	RewardPoints   []int
	SubmitEndpoint string
	ExpectedAnswer string
	AgeGroup       string
}

// MultipleChoice reports whether the question is answered by picking a choice.
func (q Question) MultipleChoice() bool {
	return q.Kind == ResponseMultipleChoice
}
