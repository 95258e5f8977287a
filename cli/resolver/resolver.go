// Package resolver resolves answers for all questions of a template descriptor.
package resolver

import (
	"regexp"
	"strings"

	"github.com/apex/log"
	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/manifest"
	"github.com/stampcli/stamp/cli/prompt"
)

// Resolver collects answers for template questions.
type Resolver struct {
	// Asker is used for questions without pre-supplied answers. Nil means
	// non-interactive mode.
	Asker prompt.Asker
	// UseDefaults makes non-interactive mode use the declared defaults.
	UseDefaults bool
}

// Resolve returns answers for every question of the descriptor in declared order.
// Pre-supplied answers are used without asking. Pre-supplied answers for
// undeclared ids are kept as is.
func (resolver Resolver) Resolve(descriptor *manifest.Descriptor,
	presupplied answers.Map) (answers.Map, error) {
	result := presupplied.Clone()

	for _, question := range descriptor.Questions {
		id := question.GetID()
		if value, found := presupplied[id]; found {
			answer, err := Coerce(question, value)
			if err != nil {
				return nil, err
			}
			log.Debugf("Using supplied answer for %s: %s", id, answers.Describe(answer))
			result[id] = answer
			continue
		}

		answer, err := resolver.resolveMissing(question)
		if err != nil {
			return nil, err
		}
		result[id] = answer
	}
	return result, nil
}

func (resolver Resolver) resolveMissing(question manifest.Question) (answers.Answer, error) {
	if resolver.Asker != nil {
		return resolver.Asker.Ask(question)
	}
	if resolver.UseDefaults {
		if answer, found := Default(question); found {
			log.Debugf("Using default answer for %s: %s", question.GetID(),
				answers.Describe(answer))
			return answer, nil
		}
	}
	return nil, errs.New(errs.MissingAnswer, "no answer for %q in non-interactive mode",
		question.GetID())
}

// Default returns the declared default answer of the question. Multi-select
// questions always have one.
func Default(question manifest.Question) (answers.Answer, bool) {
	switch q := question.(type) {
	case *manifest.StringQuestion:
		if q.Default == nil {
			return nil, false
		}
		return answers.Text(*q.Default), true
	case *manifest.SelectQuestion:
		if q.Default == nil {
			return nil, false
		}
		return answers.Choice(*q.Default), true
	case *manifest.MultiSelectQuestion:
		return answers.Choices(q.DefaultIDs()), true
	}
	return nil, false
}

// Coerce converts a pre-supplied answer to the question kind and validates it.
// Text is accepted for every kind: a select option or comma separated choice ids.
func Coerce(question manifest.Question, value answers.Answer) (answers.Answer, error) {
	switch q := question.(type) {
	case *manifest.StringQuestion:
		text, ok := value.(answers.Text)
		if !ok {
			return nil, invalidType(q, value)
		}
		if q.Validate != "" {
			re, err := regexp.Compile(q.Validate)
			if err != nil {
				return nil, errs.Wrap(errs.InvalidDescriptor, err, "question %q", q.ID)
			}
			if !re.MatchString(string(text)) {
				return nil, errs.New(errs.InvalidAnswer, "answer %q for %q must match %s",
					string(text), q.ID, q.Validate)
			}
		}
		return text, nil
	case *manifest.SelectQuestion:
		var option string
		switch value := value.(type) {
		case answers.Text:
			option = string(value)
		case answers.Choice:
			option = string(value)
		default:
			return nil, invalidType(q, value)
		}
		if !q.HasOption(option) {
			return nil, errs.New(errs.InvalidAnswer, "answer %q for %q must be one of: %s",
				option, q.ID, strings.Join(q.Options, ", "))
		}
		return answers.Choice(option), nil
	case *manifest.MultiSelectQuestion:
		var ids []string
		switch value := value.(type) {
		case answers.Text:
			ids = splitIDs(string(value))
		case answers.Choices:
			ids = value
		default:
			return nil, invalidType(q, value)
		}
		selected := make(map[string]bool, len(ids))
		for _, id := range ids {
			if _, found := q.Choice(id); !found {
				return nil, errs.New(errs.InvalidAnswer, "unknown choice %q for %q", id, q.ID)
			}
			selected[id] = true
		}
		choices := answers.Choices{}
		for _, choice := range q.Choices {
			if selected[choice.ID] {
				choices = append(choices, choice.ID)
			}
		}
		return choices, nil
	}
	return nil, manifest.NewUnknownQuestionError(question)
}

// splitIDs splits comma separated ids. Empty string is an empty list.
func splitIDs(value string) []string {
	ids := []string{}
	for _, id := range strings.Split(value, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func invalidType(question manifest.Question, value answers.Answer) error {
	return errs.New(errs.InvalidAnswer, "answer %s is not valid for %s question %q",
		answers.Describe(value), question.Kind(), question.GetID())
}
