// Package answers contains values resolved for template questions.
package answers

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Answer is one of Text, Choice, Choices.
type Answer interface {
	// Value returns the answer as a template context value:
	// string for Text and Choice, []string for Choices.
	Value() any

	answer()
}

// Text is an answer to a string question.
type Text string

// Choice is an answer to a select question.
type Choice string

// Choices is an answer to a multi-select question: ids of the toggled choices
// in declared order.
type Choices []string

func (Text) answer()    {}
func (Choice) answer()  {}
func (Choices) answer() {}

func (a Text) Value() any   { return string(a) }
func (a Choice) Value() any { return string(a) }

func (a Choices) Value() any {
	return append([]string{}, a...)
}

// String returns the answer value.
func (a Text) String() string { return string(a) }

// String returns the selected option.
func (a Choice) String() string { return string(a) }

// String returns comma separated choice ids.
func (a Choices) String() string { return strings.Join(a, ",") }

// Has returns true if the choice id is selected.
func (a Choices) Has(id string) bool {
	return slices.Contains(a, id)
}

// Map is a set of answers keyed by question id.
type Map map[string]Answer

// IDs returns sorted answer ids.
func (m Map) IDs() []string {
	ids := maps.Keys(m)
	slices.Sort(ids)
	return ids
}

// Context converts answers to a template engine context.
func (m Map) Context() map[string]any {
	ctx := make(map[string]any, len(m))
	for id, answer := range m {
		ctx[id] = answer.Value()
	}
	return ctx
}

// Clone returns a copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}
	return maps.Clone(m)
}

// FromStrings creates a map of Text answers.
func FromStrings(values map[string]string) Map {
	m := make(Map, len(values))
	for id, value := range values {
		m[id] = Text(value)
	}
	return m
}

// Describe returns a short representation of the answer for logs.
func Describe(answer Answer) string {
	switch answer := answer.(type) {
	case Text:
		return fmt.Sprintf("%q", string(answer))
	case Choice:
		return fmt.Sprintf("%q", string(answer))
	case Choices:
		return fmt.Sprintf("[%s]", answer.String())
	}
	return fmt.Sprintf("%v", answer)
}
