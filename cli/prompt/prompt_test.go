package prompt

import (
	"errors"
	"testing"

	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/manifest"
	"github.com/stampcli/stamp/cli/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDriver returns predefined values and records the shown widgets.
type mockDriver struct {
	input       string
	index       int
	indices     []int
	err         error
	lastLabel   string
	lastDefault string
	lastCursor  int
	lastToggles []int
	validate    func(string) error
}

func (d *mockDriver) Input(label, def string, validate func(string) error) (string, error) {
	d.lastLabel, d.lastDefault, d.validate = label, def, validate
	return d.input, d.err
}

func (d *mockDriver) Select(label string, items []string, cursor int) (int, error) {
	d.lastLabel, d.lastCursor = label, cursor
	return d.index, d.err
}

func (d *mockDriver) MultiSelect(label string, items []string, defaults []int) ([]int,
	error) {
	d.lastLabel, d.lastToggles = label, defaults
	return d.indices, d.err
}

func strPtr(s string) *string {
	return &s
}

func TestAskString(t *testing.T) {
	driver := &mockDriver{input: "foo"}
	asker := Terminal{Driver: driver}

	q := &manifest.StringQuestion{ID: "crate_name", Prompt: "Crate name",
		Default: strPtr("example")}
	answer, err := asker.Ask(q)
	require.NoError(t, err)
	assert.Equal(t, answers.Text("foo"), answer)
	assert.Equal(t, "Crate name", driver.lastLabel)
	assert.Equal(t, "example", driver.lastDefault)

	// Empty input is the default value.
	driver.input = ""
	answer, err = asker.Ask(q)
	require.NoError(t, err)
	assert.Equal(t, answers.Text("example"), answer)
}

func TestAskSelect(t *testing.T) {
	driver := &mockDriver{index: 0}
	asker := Terminal{Driver: driver}

	q := &manifest.SelectQuestion{ID: "license", Prompt: "License",
		Options: []string{"MIT", "Apache-2.0"}, Default: strPtr("Apache-2.0")}
	answer, err := asker.Ask(q)
	require.NoError(t, err)
	assert.Equal(t, answers.Choice("MIT"), answer)
	assert.Equal(t, 1, driver.lastCursor)

	q.Default = nil
	_, err = asker.Ask(q)
	require.NoError(t, err)
	assert.Equal(t, 0, driver.lastCursor)

	driver.index = 5
	_, err = asker.Ask(q)
	assert.Error(t, err)
}

func TestAskMultiSelect(t *testing.T) {
	driver := &mockDriver{indices: []int{2, 0}}
	asker := Terminal{Driver: driver}

	q := &manifest.MultiSelectQuestion{ID: "features", Prompt: "Features",
		Choices: []manifest.Choice{
			{ID: "ws", Prompt: "WebSocket", Default: true},
			{ID: "tls", Prompt: "TLS"},
			{ID: "grpc", Prompt: "gRPC", Default: true},
		}}
	answer, err := asker.Ask(q)
	require.NoError(t, err)
	// Declared order.
	assert.Equal(t, answers.Choices{"ws", "grpc"}, answer)
	assert.Equal(t, []int{0, 2}, driver.lastToggles)

	driver.indices = nil
	answer, err = asker.Ask(q)
	require.NoError(t, err)
	assert.Equal(t, answers.Choices{}, answer)
}

func TestAskInterrupted(t *testing.T) {
	asker := Terminal{Driver: &mockDriver{err: errInterrupt}}
	_, err := asker.Ask(&manifest.StringQuestion{ID: "a", Prompt: "a"})
	assert.ErrorIs(t, err, util.ErrCmdAbort)

	asker = Terminal{Driver: &mockDriver{err: errors.New("terminal is broken")}}
	_, err = asker.Ask(&manifest.StringQuestion{ID: "a", Prompt: "a"})
	assert.EqualError(t, err, `failed to get answer for "a": terminal is broken`)
}

func TestAskUnknownQuestion(t *testing.T) {
	asker := Terminal{Driver: &mockDriver{}}
	_, err := asker.Ask(nil)
	assert.Error(t, err)
}

func TestStringValidator(t *testing.T) {
	validate, err := StringValidator(&manifest.StringQuestion{ID: "a",
		Validate: "^[a-z_]+$"})
	require.NoError(t, err)
	assert.NoError(t, validate("crate_name"))
	assert.EqualError(t, validate("Crate"), "value must match ^[a-z_]+$")
	assert.EqualError(t, validate(""), "please enter a value")

	validate, err = StringValidator(&manifest.StringQuestion{ID: "a",
		Default: strPtr("x")})
	require.NoError(t, err)
	assert.NoError(t, validate(""))
	assert.NoError(t, validate("Anything"))

	_, err = StringValidator(&manifest.StringQuestion{ID: "a", Validate: "("})
	assert.Error(t, err)
}
