package cmd

import (
	"github.com/apex/log"
	"github.com/himself65/create-addon/cli/create"
	create_ctx "github.com/himself65/create-addon/cli/create/context"
	"github.com/himself65/create-addon/cli/create/wizard"
)

// wizardOpts contains the environment of a wizard run.
type wizardOpts struct {
	presenter    wizard.Presenter
	workDir      string
	templatesDir string
	typeScript   bool
	skipInstall  bool
}

// newMaterializer returns a function creating projects described by base
// create context.
func newMaterializer(base create_ctx.CreateCtx) wizard.MaterializeFunc {
	return func(projectName, templateID string, progress func(string)) error {
		createCtx := base
		createCtx.ProjectName = projectName
		createCtx.TemplateName = templateID
		return create.Run(&createCtx, progress)
	}
}

// newWizard resolves command line values into the initial wizard state and
// creates the wizard. An unknown template is reported before any prompt.
func newWizard(projectName, templateID string, opts wizardOpts) (*wizard.Wizard, error) {
	initial, err := wizard.Resolve(projectName, templateID)
	if err != nil {
		return nil, err
	}
	log.Debugf("Starting wizard in %q step", initial.Step)

	materialize := newMaterializer(create_ctx.CreateCtx{
		WorkDir:      opts.workDir,
		TemplatesDir: opts.templatesDir,
		TypeScript:   opts.typeScript,
		SkipInstall:  opts.skipInstall,
	})
	return wizard.New(initial, wizard.Opts{
		Presenter:   opts.presenter,
		Materialize: materialize,
		SkipInstall: opts.skipInstall,
	}), nil
}
