package create

import (
	"fmt"

	"github.com/apex/log"
	create_ctx "github.com/himself65/create-addon/cli/create/context"
	"github.com/himself65/create-addon/cli/create/internal/steps"
)

// Progress messages reported at materialization phase boundaries.
const (
	MsgCheckingDestination = "Checking project directory..."
	MsgCopyingTemplate     = "Copying template files..."
	MsgUpdatingManifest    = "Updating project configuration..."
)

// phase is a group of steps announced with a single progress message.
type phase struct {
	message string
	steps   []steps.Step
}

// ProgressFunc receives progress messages.
type ProgressFunc func(message string)

// Run materializes a project from a template: checks the project directory
// does not exist, copies the template tree and patches the project manifest.
// The project directory is not removed on failure.
func Run(createCtx *create_ctx.CreateCtx, progress ProgressFunc) error {
	if err := checkCtx(createCtx); err != nil {
		return err
	}
	if progress == nil {
		progress = func(string) {}
	}

	log.WithFields(log.Fields{
		"project":    createCtx.ProjectName,
		"template":   createCtx.TemplateName,
		"typescript": createCtx.TypeScript,
	}).Debug("Materializing project")

	phases := []phase{
		{MsgCheckingDestination, []steps.Step{steps.CheckDestination{}}},
		{MsgCopyingTemplate, []steps.Step{steps.CopyAppTemplate{}}},
		{MsgUpdatingManifest, []steps.Step{steps.LoadManifest{}, steps.PatchManifest{}}},
	}

	templateCtx := steps.NewTemplateContext()
	for _, current := range phases {
		progress(current.message)
		for _, step := range current.steps {
			if err := step.Run(createCtx, &templateCtx); err != nil {
				return err
			}
		}
	}

	log.Debugf("Project %s is created in %s", createCtx.ProjectName, templateCtx.AppPath)
	return nil
}

// checkCtx checks create context for validity.
func checkCtx(ctx *create_ctx.CreateCtx) error {
	if ctx.ProjectName == "" {
		return fmt.Errorf("project name is missing")
	}
	if ctx.TemplateName == "" {
		return fmt.Errorf("template name is missing")
	}
	if ctx.WorkDir == "" {
		return fmt.Errorf("working directory is not set")
	}

	return nil
}
