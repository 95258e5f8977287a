package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
)

const formatError = `wrong variable definition format: %s
Format: var-name=value`

// parseVarDefinition parses name=value definition. Value may be empty.
func parseVarDefinition(varDefinition string) (string, string, error) {
	varDefinition = strings.TrimSpace(varDefinition)
	name, value, found := strings.Cut(varDefinition, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", "", fmt.Errorf(formatError, varDefinition)
	}
	return name, value, nil
}

// FillTemplateVarsFromCli represents command line variables parsing step.
type FillTemplateVarsFromCli struct {
}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	for _, varDefinition := range ctx.VarsFromCli {
		name, value, err := parseVarDefinition(varDefinition)
		if err != nil {
			return err
		}
		log.Debugf("Setting var from CLI: %s = %s", name, value)
		templateCtx.Vars[name] = value
	}
	return nil
}
