package wizard

import (
	"strings"

	"github.com/himself65/create-addon/cli/create/builtin_templates"
	"github.com/himself65/create-addon/cli/create/errs"
)

// Resolve builds the initial wizard state from values passed in the command line.
// An unknown template id fails before any interaction.
func Resolve(projectName, templateID string) (State, error) {
	if templateID != "" {
		if _, err := builtin_templates.Find(templateID); err != nil {
			return State{}, &errs.InvalidTemplateError{
				ID:        templateID,
				Available: builtin_templates.Names(),
			}
		}
	}

	state := State{
		ProjectName: strings.TrimSpace(projectName),
		TemplateID:  templateID,
	}
	switch {
	case state.ProjectName != "" && state.TemplateID != "":
		state.Step = Creating
	case state.ProjectName != "":
		state.Step = AwaitingTemplate
	default:
		state.Step = AwaitingName
	}

	return state, nil
}
