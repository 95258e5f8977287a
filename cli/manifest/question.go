package manifest

import "fmt"

// Kind is a question kind as written in the descriptor.
type Kind string

const (
	KindString      Kind = "string"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
)

// Question is one of *StringQuestion, *SelectQuestion, *MultiSelectQuestion.
// The set is closed: consumers switch over the three types and treat anything
// else as an internal error.
type Question interface {
	// GetID returns the question id. Answers are keyed by it.
	GetID() string
	// GetPrompt returns the text shown to a user.
	GetPrompt() string
	// Kind returns the question kind.
	Kind() Kind

	question()
}

// StringQuestion asks for a free-form text value.
type StringQuestion struct {
	ID     string
	Prompt string
	// Default is nil if the question has no default value.
	Default *string
	// Validate is a regular expression the value must match. Empty means any value.
	Validate string
}

// SelectQuestion asks to choose exactly one of Options.
type SelectQuestion struct {
	ID      string
	Prompt  string
	Options []string
	// Default is nil if the question has no default value. Otherwise it is one of Options.
	Default *string
}

// Choice is a toggle of a multi-select question.
type Choice struct {
	ID      string
	Prompt  string
	Default bool
}

// MultiSelectQuestion asks to toggle any subset of Choices.
type MultiSelectQuestion struct {
	ID      string
	Prompt  string
	Choices []Choice
}

func (q *StringQuestion) GetID() string      { return q.ID }
func (q *SelectQuestion) GetID() string      { return q.ID }
func (q *MultiSelectQuestion) GetID() string { return q.ID }

func (q *StringQuestion) GetPrompt() string      { return q.Prompt }
func (q *SelectQuestion) GetPrompt() string      { return q.Prompt }
func (q *MultiSelectQuestion) GetPrompt() string { return q.Prompt }

func (q *StringQuestion) Kind() Kind      { return KindString }
func (q *SelectQuestion) Kind() Kind      { return KindSelect }
func (q *MultiSelectQuestion) Kind() Kind { return KindMultiSelect }

func (*StringQuestion) question()      {}
func (*SelectQuestion) question()      {}
func (*MultiSelectQuestion) question() {}

// DefaultIndex returns the index of the default option or -1.
func (q *SelectQuestion) DefaultIndex() int {
	if q.Default == nil {
		return -1
	}
	return indexOf(q.Options, *q.Default)
}

// HasOption returns true if option is one of the question options.
func (q *SelectQuestion) HasOption(option string) bool {
	return indexOf(q.Options, option) >= 0
}

// Choice returns the choice with id.
func (q *MultiSelectQuestion) Choice(id string) (Choice, bool) {
	for _, choice := range q.Choices {
		if choice.ID == id {
			return choice, true
		}
	}
	return Choice{}, false
}

// DefaultIDs returns ids of the choices toggled on by default in declared order.
func (q *MultiSelectQuestion) DefaultIDs() []string {
	ids := []string{}
	for _, choice := range q.Choices {
		if choice.Default {
			ids = append(ids, choice.ID)
		}
	}
	return ids
}

// NewUnknownQuestionError is returned for a Question value outside of the closed set,
// i.e. nil.
func NewUnknownQuestionError(q Question) error {
	return fmt.Errorf("unknown question type %T", q)
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
