package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/manifoldco/promptui"
	"github.com/stampcli/stamp/cli/util"
)

const multiSelectHelp = "space to toggle, enter to confirm"

// errInterrupt is reported if a user presses Ctrl-C or Ctrl-D.
var errInterrupt = errors.New("interrupted")

// widgetsDriver shows promptui input and select widgets and survey multi-select
// widget.
type widgetsDriver struct{}

func translateErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, terminal.InterruptErr) {
		return errInterrupt
	}
	return err
}

// Input shows promptui prompt.
func (widgetsDriver) Input(label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    util.Bold(label),
		Default:  def,
		Validate: validate,
	}
	value, err := prompt.Run()
	if err != nil {
		return "", translateErr(err)
	}
	return value, nil
}

// Select shows promptui select.
func (widgetsDriver) Select(label string, items []string, cursor int) (int, error) {
	sel := promptui.Select{
		Label:     util.Bold(label),
		Items:     items,
		CursorPos: cursor,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return 0, translateErr(err)
	}
	return idx, nil
}

// MultiSelect shows survey multi-select.
func (widgetsDriver) MultiSelect(label string, items []string, defaults []int) ([]int,
	error) {
	prompt := &survey.MultiSelect{
		Message: label,
		Options: items,
		Help:    util.Faint(multiSelectHelp),
	}
	if len(defaults) > 0 {
		prompt.Default = defaults
	}
	var indices []int
	if err := survey.AskOne(prompt, &indices); err != nil {
		return nil, translateErr(err)
	}
	return indices, nil
}
