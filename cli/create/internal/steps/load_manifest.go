package steps

import (
	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/manifest"
)

// LoadDescriptor represents template descriptor load step.
type LoadDescriptor struct {
	// Version is the current stamp version checked against the template
	// requirements.
	Version string
}

// Run loads template descriptor. Missing descriptor file is not an error.
func (step LoadDescriptor) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	descriptor, err := manifest.Load(templateCtx.TemplatePath)
	if err != nil {
		return err
	}
	if len(descriptor.Questions) == 0 {
		log.Debug("Template has no questions.")
	}
	if err := descriptor.CheckVersion(step.Version); err != nil {
		return err
	}

	templateCtx.Descriptor = descriptor
	return nil
}
