// Package create applies templates: resolves a template, collects answers and
// renders the template tree to a destination directory.
package create

import (
	"fmt"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/create/internal/steps"
	"github.com/stampcli/stamp/cli/prompt"
	"github.com/stampcli/stamp/cli/util"
	"github.com/stampcli/stamp/cli/version"
)

// Run applies a template.
func Run(createCtx *create_ctx.CreateCtx, asker prompt.Asker) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	if !createCtx.NonInteractive && asker == nil {
		log.Debug("Questions are disabled: no terminal.")
		createCtx.NonInteractive = true
	}

	stepsChain := []steps.Step{
		steps.ResolveTemplate{},
		steps.LoadDescriptor{Version: version.GetVersion(true, false)},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.CheckDestination{},
		steps.CollectAnswers{Asker: asker},
		steps.RenderTree{},
		steps.ReplaceDestination{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	templateCtx := steps.NewTemplateContext()
	for _, step := range stepsChain {
		if err := step.Run(createCtx, &templateCtx); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx checks create context for validity.
func checkCtx(ctx *create_ctx.CreateCtx) error {
	if ctx.TemplateName == "" && ctx.SourceDir == "" {
		return fmt.Errorf("template name or directory is missing")
	}
	if ctx.TemplateName != "" && ctx.SourceDir != "" {
		return fmt.Errorf("both template name and directory are set")
	}
	if ctx.DestinationDir == "" {
		return fmt.Errorf("destination directory is missing")
	}
	return nil
}
