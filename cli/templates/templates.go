// Package templates provides the template engine used to render file contents.
package templates

import (
	"github.com/stampcli/stamp/cli/templates/internal/engines"
)

// TemplateEngine is an interface of a template content renderer.
type TemplateEngine interface {
	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data interface{}) (string, error)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return engines.GoTextEngine{}
}

// IsMissingKeyError checks if err is reported for a variable absent from the
// template data. Returns the variable name.
func IsMissingKeyError(err error) (string, bool) {
	return engines.MissingKey(err)
}

// IsParseError checks if err is a template parsing error.
func IsParseError(err error) bool {
	return engines.IsParseError(err)
}
