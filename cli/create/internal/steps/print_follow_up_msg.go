package steps

import (
	"io"

	"github.com/apex/log"
	"github.com/fatih/color"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
)

// PrintFollowUpMessage represents follow-up message print step.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints template follow-up message rendered with the answers.
func (step PrintFollowUpMessage) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if templateCtx.Descriptor == nil || templateCtx.Descriptor.FollowUp == "" {
		return nil
	}

	followUpText, err := templateCtx.Engine.RenderText(templateCtx.Descriptor.FollowUp,
		templateCtx.Answers.Context())
	if err != nil {
		log.Warnf("Failed to render follow-up message: %s", err)
		return nil
	}
	_, err = color.New(color.FgGreen).Fprintln(step.Writer, followUpText)
	return err
}
