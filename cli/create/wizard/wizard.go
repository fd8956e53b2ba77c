// Package wizard drives project creation: it collects the project name and
// the template, runs materialization and reports the outcome.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/himself65/create-addon/cli/create/builtin_templates"
)

// ExitDelay is a time the outcome stays on the screen before exit.
const ExitDelay = 3 * time.Second

// ErrInvalidTransition is returned for an input the active step does not accept.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// MaterializeFunc creates the project. progress is called at phase boundaries.
type MaterializeFunc func(projectName, templateID string, progress func(string)) error

// Opts contains wizard options.
type Opts struct {
	// Presenter renders steps and collects input.
	Presenter Presenter
	// Materialize creates the project.
	Materialize MaterializeFunc
	// SkipInstall is passed to the success summary.
	SkipInstall bool
}

// Wizard is a project creation state machine. Transitions are one-directional,
// the wizard ends in Succeeded or Failed.
type Wizard struct {
	state       State
	presenter   Presenter
	materialize MaterializeFunc
	skipInstall bool
	// sleep waits the exit delay.
	sleep func(time.Duration)
}

// New creates a wizard starting in the initial state, usually built by Resolve.
func New(initial State, opts Opts) *Wizard {
	return &Wizard{
		state:       initial,
		presenter:   opts.Presenter,
		materialize: opts.Materialize,
		skipInstall: opts.SkipInstall,
		sleep:       time.Sleep,
	}
}

// State returns a copy of the current state.
func (w *Wizard) State() State {
	return w.state
}

// Submit accepts the project name. Blank input is ignored and the wizard keeps
// waiting for the name. If the template is already known, the project is
// created right away.
func (w *Wizard) Submit(name string) error {
	if w.state.Step != AwaitingName {
		return fmt.Errorf("%w: project name is not expected in %q step",
			ErrInvalidTransition, w.state.Step)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	w.state.ProjectName = name

	if w.state.TemplateID != "" {
		w.create()
	} else {
		w.state.Step = AwaitingTemplate
	}
	return nil
}

// Select accepts the template id and creates the project.
func (w *Wizard) Select(templateID string) error {
	if w.state.Step != AwaitingTemplate {
		return fmt.Errorf("%w: template is not expected in %q step",
			ErrInvalidTransition, w.state.Step)
	}

	w.state.TemplateID = templateID
	w.create()
	return nil
}

// Run drives the wizard until a terminal step, waits ExitDelay and returns
// the process exit code.
func (w *Wizard) Run() int {
	for !w.state.Step.IsTerminal() {
		switch w.state.Step {
		case AwaitingName:
			name, err := w.presenter.PromptForName()
			if err != nil {
				w.fail(err.Error())
				continue
			}
			if err := w.Submit(name); err != nil {
				w.fail(err.Error())
			}
		case AwaitingTemplate:
			templateID, err := w.presenter.PromptForTemplate(builtin_templates.Templates())
			if err != nil {
				w.fail(err.Error())
				continue
			}
			if err := w.Select(templateID); err != nil {
				w.fail(err.Error())
			}
		case Creating:
			w.create()
		default:
			w.fail(fmt.Sprintf("unexpected wizard step %d", w.state.Step))
		}
	}

	w.sleep(ExitDelay)
	return w.ExitCode()
}

// ExitCode returns the process exit code for the current state.
func (w *Wizard) ExitCode() int {
	if w.state.Step == Succeeded {
		return 0
	}
	return 1
}

// create enters Creating and runs materialization.
func (w *Wizard) create() {
	w.state.Step = Creating
	log.Debugf("Creating %q from %q template", w.state.ProjectName, w.state.TemplateID)

	if err := w.materialize(w.state.ProjectName, w.state.TemplateID, w.progress); err != nil {
		w.fail(err.Error())
		return
	}
	w.succeed()
}

func (w *Wizard) progress(message string) {
	w.state.ProgressMessage = message
	w.presenter.ShowProgress(message)
}

func (w *Wizard) succeed() {
	w.state.Step = Succeeded
	summary := Summary{
		ProjectName: w.state.ProjectName,
		TemplateID:  w.state.TemplateID,
		SkipInstall: w.skipInstall,
	}
	if template, err := builtin_templates.Find(w.state.TemplateID); err == nil {
		summary.TemplateDescription = template.Description
	}
	w.presenter.ShowSuccess(summary)
}

func (w *Wizard) fail(message string) {
	w.state.Step = Failed
	w.state.ErrorMessage = message
	w.presenter.ShowError(message)
}
