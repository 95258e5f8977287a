package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/util"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{errs.New(errs.NotFound, "no template"), 2},
		{errs.New(errs.Ambiguous, "two templates"), 3},
		{errs.New(errs.InvalidDescriptor, "bad"), 4},
		{errs.New(errs.MissingAnswer, "no answer"), 5},
		{errs.New(errs.InvalidAnswer, "bad answer"), 5},
		{errs.New(errs.UnknownVariable, "x"), 6},
		{errs.New(errs.UnsupportedValueType, "x"), 6},
		{errs.New(errs.InvalidPathSegment, "x"), 6},
		{errs.New(errs.TemplateSyntaxError, "x"), 7},
		{errs.New(errs.AlreadyExists, "x"), 8},
		{errs.New(errs.IOError, "x"), 9},
		{fmt.Errorf("step failed: %w", errs.New(errs.AlreadyExists, "x")), 8},
		{util.NewArgError("bad args"), 1},
		{util.ErrCmdAbort, 1},
		{errors.New("other"), 1},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.expected, exitCode(tc.err))
		})
	}
}
