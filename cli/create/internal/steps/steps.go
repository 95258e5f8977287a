// Package steps provides a set of handlers for template application chain of
// responsibility.
package steps

import (
	create_ctx "github.com/stampcli/stamp/cli/create/context"
)

// Step is an interface for single step in template application chain.
type Step interface {
	Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error
}
