// Package render renders contents of template files marked as template content.
package render

import (
	"strings"

	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/templates"
)

// Marker is a file name substring marking template content: main.go.tmpl,
// config.tmpl.yaml.
const Marker = ".tmpl"

// IsMarked returns true if the file content must be rendered.
func IsMarked(fileName string) bool {
	return strings.Contains(fileName, Marker)
}

// OutputName strips the first marker occurrence from the file name.
func OutputName(fileName string) (string, error) {
	outName := strings.Replace(fileName, Marker, "", 1)
	if outName == "" || outName == "." || outName == ".." {
		return "", errs.New(errs.InvalidPathSegment,
			"file name %q is empty after removing %q", fileName, Marker)
	}
	return outName, nil
}

// Renderer renders marked file contents with a template engine.
type Renderer struct {
	// Engine renders file contents.
	Engine templates.TemplateEngine
}

// NewRenderer creates a renderer with the default template engine.
func NewRenderer() Renderer {
	return Renderer{Engine: templates.NewDefaultEngine()}
}

// Render returns the output content and file name. Unmarked files are returned
// as is.
func (renderer Renderer) Render(content []byte, fileName string,
	values answers.Map) ([]byte, string, error) {
	if !IsMarked(fileName) {
		return content, fileName, nil
	}
	outName, err := OutputName(fileName)
	if err != nil {
		return nil, "", err
	}

	text, err := renderer.Engine.RenderText(string(content), values.Context())
	if err != nil {
		if key, found := templates.IsMissingKeyError(err); found {
			return nil, "", errs.Wrap(errs.MissingAnswer, err,
				"%s: no answer for %q", fileName, key)
		}
		return nil, "", errs.Wrap(errs.TemplateSyntaxError, err, "%s", fileName)
	}
	return []byte(text), outName, nil
}
