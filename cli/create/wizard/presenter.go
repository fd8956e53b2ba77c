package wizard

import (
	"fmt"

	"github.com/himself65/create-addon/cli/create/builtin_templates"
)

// Presenter renders wizard steps and collects user input.
type Presenter interface {
	// PromptForName asks for the project name.
	PromptForName() (string, error)
	// PromptForTemplate asks to choose one of candidates and returns its id.
	PromptForTemplate(candidates []builtin_templates.Template) (string, error)
	// ShowProgress shows the current creation phase.
	ShowProgress(message string)
	// ShowSuccess shows the outcome of successful creation.
	ShowSuccess(summary Summary)
	// ShowError shows the failure message.
	ShowError(message string)
}

// Summary describes a created project.
type Summary struct {
	ProjectName         string
	TemplateID          string
	TemplateDescription string
	SkipInstall         bool
}

// NextSteps returns commands to run in the created project.
func (summary Summary) NextSteps() []string {
	nextSteps := []string{fmt.Sprintf("cd %s", summary.ProjectName)}
	if !summary.SkipInstall {
		nextSteps = append(nextSteps, "npm install", "npm run build")
	}
	return append(nextSteps, "npm test")
}
