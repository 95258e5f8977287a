// Package prompt asks template questions in a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/manifest"
	"github.com/stampcli/stamp/cli/util"
)

// Asker asks a question and returns the answer.
type Asker interface {
	Ask(question manifest.Question) (answers.Answer, error)
}

// Driver shows input widgets.
type Driver interface {
	// Input asks for a text value. Empty input means def.
	Input(label, def string, validate func(string) error) (string, error)
	// Select asks to choose one of items. Returns the chosen index.
	Select(label string, items []string, cursor int) (int, error)
	// MultiSelect asks to toggle items. Returns the toggled indices in items order.
	MultiSelect(label string, items []string, defaults []int) ([]int, error)
}

// IsInteractive checks if stdin and stdout are terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Terminal asks questions with terminal widgets.
type Terminal struct {
	Driver Driver
}

// NewTerminal creates an asker using promptui and survey widgets.
func NewTerminal() *Terminal {
	return &Terminal{Driver: widgetsDriver{}}
}

// Ask asks the question.
func (terminal *Terminal) Ask(question manifest.Question) (answers.Answer, error) {
	var answer answers.Answer
	var err error
	switch q := question.(type) {
	case *manifest.StringQuestion:
		answer, err = terminal.askString(q)
	case *manifest.SelectQuestion:
		answer, err = terminal.askSelect(q)
	case *manifest.MultiSelectQuestion:
		answer, err = terminal.askMultiSelect(q)
	default:
		return nil, manifest.NewUnknownQuestionError(question)
	}
	if err != nil {
		if isAbort(err) {
			return nil, util.ErrCmdAbort
		}
		return nil, fmt.Errorf("failed to get answer for %q: %w", question.GetID(), err)
	}
	return answer, nil
}

// StringValidator returns a validation function of the string question input.
func StringValidator(q *manifest.StringQuestion) (func(string) error, error) {
	var re *regexp.Regexp
	if q.Validate != "" {
		var err error
		if re, err = regexp.Compile(q.Validate); err != nil {
			return nil, err
		}
	}
	return func(input string) error {
		if input == "" {
			if q.Default != nil {
				return nil
			}
			return fmt.Errorf("please enter a value")
		}
		if re != nil && !re.MatchString(input) {
			return fmt.Errorf("value must match %s", q.Validate)
		}
		return nil
	}, nil
}

func (terminal *Terminal) askString(q *manifest.StringQuestion) (answers.Answer, error) {
	validate, err := StringValidator(q)
	if err != nil {
		return nil, err
	}
	def := ""
	if q.Default != nil {
		def = *q.Default
	}
	value, err := terminal.Driver.Input(q.Prompt, def, validate)
	if err != nil {
		return nil, err
	}
	if value == "" {
		value = def
	}
	return answers.Text(value), nil
}

func (terminal *Terminal) askSelect(q *manifest.SelectQuestion) (answers.Answer, error) {
	cursor := q.DefaultIndex()
	if cursor < 0 {
		cursor = 0
	}
	idx, err := terminal.Driver.Select(q.Prompt, q.Options, cursor)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(q.Options) {
		return nil, fmt.Errorf("option index %d is out of range", idx)
	}
	return answers.Choice(q.Options[idx]), nil
}

func (terminal *Terminal) askMultiSelect(q *manifest.MultiSelectQuestion) (answers.Answer,
	error) {
	items := make([]string, 0, len(q.Choices))
	defaults := []int{}
	for i, choice := range q.Choices {
		items = append(items, choice.Prompt)
		if choice.Default {
			defaults = append(defaults, i)
		}
	}

	indices, err := terminal.Driver.MultiSelect(q.Prompt, items, defaults)
	if err != nil {
		return nil, err
	}
	selected := make([]bool, len(q.Choices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(q.Choices) {
			return nil, fmt.Errorf("choice index %d is out of range", idx)
		}
		selected[idx] = true
	}

	ids := answers.Choices{}
	for i, choice := range q.Choices {
		if selected[i] {
			ids = append(ids, choice.ID)
		}
	}
	return ids, nil
}

func isAbort(err error) bool {
	return errors.Is(err, errInterrupt) || errors.Is(err, io.EOF) ||
		errors.Is(err, util.ErrCmdAbort)
}
