package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	err := New(NotFound, "template %q is not found", "app")
	require.EqualError(t, err, `template "app" is not found`)
	assert.True(t, errors.Is(err, NotFound))
	assert.False(t, errors.Is(err, Ambiguous))
	assert.Equal(t, NotFound, KindOf(err))

	wrapped := fmt.Errorf("use failed: %w", err)
	assert.True(t, errors.Is(wrapped, NotFound))
	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.Equal(t, 2, KindOf(wrapped).ExitCode())
}

func TestWrap(t *testing.T) {
	cause := errors.New("yaml: line 3: did not find expected key")
	err := Wrap(InvalidDescriptor, cause, "failed to parse %s", "stamp.yaml")
	require.EqualError(t, err,
		"failed to parse stamp.yaml: yaml: line 3: did not find expected key")
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, InvalidDescriptor))
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 1, KindOf(errors.New("plain")).ExitCode())
	assert.Equal(t, 5, MissingAnswer.ExitCode())
	assert.Equal(t, 5, InvalidAnswer.ExitCode())
	assert.Equal(t, 6, InvalidPathSegment.ExitCode())
	assert.Equal(t, 8, AlreadyExists.ExitCode())
	assert.Equal(t, 9, IOError.ExitCode())
	assert.Equal(t, "template syntax error", TemplateSyntaxError.String())
}
