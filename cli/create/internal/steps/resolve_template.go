package steps

import (
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/registry"
	"github.com/stampcli/stamp/cli/util"
)

// ResolveTemplate finds the template directory by name or path.
type ResolveTemplate struct {
}

// Run resolves template directory.
func (ResolveTemplate) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if ctx.SourceDir != "" {
		templatePath, err := filepath.Abs(ctx.SourceDir)
		if err != nil {
			return errs.Wrap(errs.IOError, err, "failed to get absolute path of %s",
				ctx.SourceDir)
		}
		if !util.IsDir(templatePath) {
			return errs.New(errs.NotFound, "template directory %s is not found",
				templatePath)
		}
		log.Infof("Using template from %s", templatePath)
		templateCtx.TemplatePath = templatePath
		return nil
	}

	reg, err := registry.Open(ctx.RegistryPath)
	if err != nil {
		return err
	}
	template, err := reg.Resolve(ctx.TemplateName)
	if err != nil {
		return err
	}
	log.Infof("Using template %s from %s", template.Name, template.Path)
	templateCtx.TemplatePath = template.Path
	return nil
}
