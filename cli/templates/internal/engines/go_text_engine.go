package engines

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"text/template"

	"github.com/stampcli/stamp/cli/util"
)

// GoTextEngine renders templates with text/template. Missing variables are errors.
type GoTextEngine struct {
}

// ParseError is returned if the template text cannot be parsed.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse template: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if err is a template parsing error.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

var missingKeyRe = regexp.MustCompile(`map has no entry for key "(?P<key>[^"]*)"`)

// MissingKey returns the name of a variable absent from the template data if err
// is reported for it.
func MissingKey(err error) (string, bool) {
	var execErr template.ExecError
	if !errors.As(err, &execErr) {
		return "", false
	}
	matches := util.FindNamedMatches(missingKeyRe, execErr.Error())
	key, found := matches["key"]
	return key, found
}

// RenderText renders in text using go text/template engine.
func (GoTextEngine) RenderText(in string, data interface{}) (string, error) {
	parsedTemplate, err := template.New("file").Funcs(builtinFuncs).Parse(in)
	if err != nil {
		return "", &ParseError{Err: err}
	}
	parsedTemplate.Option("missingkey=error") // Treat missing variable as error.

	var buffer bytes.Buffer
	if err = parsedTemplate.Execute(&buffer, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return buffer.String(), nil
}
