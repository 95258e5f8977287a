package steps

import (
	"os"

	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/errs"
)

// ReplaceDestination represents existing destination replace step.
type ReplaceDestination struct {
}

// Run replaces the existing destination with the rendered tree.
func (ReplaceDestination) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if templateCtx.RenderPath == "" || templateCtx.RenderPath == templateCtx.DestinationPath {
		return nil
	}

	log.Infof("Replacing existing %s", templateCtx.DestinationPath)
	if err := os.RemoveAll(templateCtx.DestinationPath); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to remove %s, rendered template is kept in %s",
			templateCtx.DestinationPath, templateCtx.RenderPath)
	}
	if err := os.Rename(templateCtx.RenderPath, templateCtx.DestinationPath); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to move %s to %s",
			templateCtx.RenderPath, templateCtx.DestinationPath)
	}
	log.Infof("Template is applied to %s", templateCtx.DestinationPath)
	return nil
}
