// Package steps provides a set of handlers for project materialization chain of responsibility.
package steps

import (
	create_ctx "github.com/himself65/create-addon/cli/create/context"
)

// Step is an interface for single step in materialization chain.
type Step interface {
	Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error
}
