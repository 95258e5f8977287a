package steps

import (
	"os"

	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/util"
)

// RenderTree represents template tree render step.
type RenderTree struct {
}

// Run renders the template tree. Output written to the destination before a
// failure is kept, a replacement tree is removed.
func (RenderTree) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	err := util.RunWithSpinner("Applying template", func() error {
		return templateCtx.Walker.Render(templateCtx.TemplatePath,
			templateCtx.RenderPath, templateCtx.Answers)
	})
	if err != nil {
		if templateCtx.RenderPath != templateCtx.DestinationPath {
			if rmErr := os.RemoveAll(templateCtx.RenderPath); rmErr != nil {
				log.Warnf("Failed to remove %s: %s", templateCtx.RenderPath, rmErr)
			}
			log.Infof("%s is left unchanged", templateCtx.DestinationPath)
		} else if util.IsDir(templateCtx.DestinationPath) {
			log.Warnf("Template is applied partially, inspect %s",
				templateCtx.DestinationPath)
		}
		return err
	}
	if templateCtx.RenderPath == templateCtx.DestinationPath {
		log.Infof("Template is applied to %s", templateCtx.DestinationPath)
	}
	return nil
}
