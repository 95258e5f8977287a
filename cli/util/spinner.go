package util

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

// RunWithSpinner calls fn showing a spinner with the prefix while it runs.
// The spinner is shown only if stdout is a terminal.
func RunWithSpinner(prefix string, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fn()
	}

	s := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		s.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}
	s.Start()
	defer s.Stop()

	return fn()
}
