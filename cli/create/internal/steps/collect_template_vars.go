package steps

import (
	"github.com/stampcli/stamp/cli/answers"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/prompt"
	"github.com/stampcli/stamp/cli/resolver"
)

// CollectAnswers represents answers resolution step.
type CollectAnswers struct {
	// Asker is used to ask questions. Nil disables questions.
	Asker prompt.Asker
}

// Run resolves answers for the template questions using the collected vars and
// asking the rest.
func (step CollectAnswers) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	res := resolver.Resolver{UseDefaults: ctx.UseDefaults}
	if !ctx.NonInteractive {
		res.Asker = step.Asker
	}

	result, err := res.Resolve(templateCtx.Descriptor, answers.FromStrings(templateCtx.Vars))
	if err != nil {
		return err
	}
	templateCtx.Answers = result
	return nil
}
