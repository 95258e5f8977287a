package steps

import (
	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/manifest"
	"github.com/stampcli/stamp/cli/templates"
	"github.com/stampcli/stamp/cli/walker"
)

// TemplateCtx contains an information required for template application.
type TemplateCtx struct {
	// TemplatePath is a path to the template directory.
	TemplatePath string
	// Descriptor is a loaded template descriptor.
	Descriptor *manifest.Descriptor
	// DestinationPath is an absolute destination directory path.
	DestinationPath string
	// RenderPath is a directory the template is rendered to. It differs from
	// DestinationPath if an existing destination is replaced.
	RenderPath string
	// Vars are answers definitions from command line and vars file.
	Vars map[string]string
	// Answers are resolved answers for the template questions.
	Answers answers.Map
	// Walker renders the template tree.
	Walker walker.Walker
	// Engine renders the follow-up message.
	Engine templates.TemplateEngine
}

// NewTemplateContext creates new template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Walker = walker.NewWalker()
	ctx.Engine = templates.NewDefaultEngine()
	return ctx
}
