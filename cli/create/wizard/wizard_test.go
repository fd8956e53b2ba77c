package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/himself65/create-addon/cli/create/builtin_templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresenter replays prepared answers and records what was shown.
type fakePresenter struct {
	names       []string
	nameErr     error
	templateID  string
	templateErr error

	namePrompts     int
	templatePrompts int
	candidates      []builtin_templates.Template
	progress        []string
	successes       []Summary
	errors          []string
}

func (p *fakePresenter) PromptForName() (string, error) {
	p.namePrompts++
	if p.nameErr != nil {
		return "", p.nameErr
	}
	name := p.names[0]
	p.names = p.names[1:]
	return name, nil
}

func (p *fakePresenter) PromptForTemplate(
	candidates []builtin_templates.Template) (string, error) {
	p.templatePrompts++
	p.candidates = candidates
	return p.templateID, p.templateErr
}

func (p *fakePresenter) ShowProgress(message string) {
	p.progress = append(p.progress, message)
}

func (p *fakePresenter) ShowSuccess(summary Summary) {
	p.successes = append(p.successes, summary)
}

func (p *fakePresenter) ShowError(message string) {
	p.errors = append(p.errors, message)
}

// fakeMaterializer records invocations and reports two phases.
type fakeMaterializer struct {
	err   error
	calls [][2]string
}

func (m *fakeMaterializer) materialize(projectName, templateID string,
	progress func(string)) error {
	m.calls = append(m.calls, [2]string{projectName, templateID})
	progress("Checking project directory...")
	if m.err != nil {
		return m.err
	}
	progress("Copying template files...")
	return nil
}

func newTestWizard(initial State, presenter *fakePresenter,
	materializer *fakeMaterializer) (*Wizard, *[]time.Duration) {
	w := New(initial, Opts{
		Presenter:   presenter,
		Materialize: materializer.materialize,
	})
	var sleeps []time.Duration
	w.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return w, &sleeps
}

func TestRunFullInteractiveFlow(t *testing.T) {
	presenter := &fakePresenter{names: []string{"  my-addon  "}, templateID: "swift"}
	materializer := &fakeMaterializer{}
	w, sleeps := newTestWizard(State{Step: AwaitingName}, presenter, materializer)

	assert.Equal(t, 0, w.Run())
	assert.Equal(t, []time.Duration{ExitDelay}, *sleeps)

	assert.Equal(t, 1, presenter.namePrompts)
	assert.Equal(t, 1, presenter.templatePrompts)
	assert.Equal(t, builtin_templates.Templates(), presenter.candidates)
	assert.Equal(t, [][2]string{{"my-addon", "swift"}}, materializer.calls)
	assert.Equal(t, []string{"Checking project directory...", "Copying template files..."},
		presenter.progress)
	assert.Empty(t, presenter.errors)
	assert.Equal(t, []Summary{{
		ProjectName:         "my-addon",
		TemplateID:          "swift",
		TemplateDescription: "Swift addon for macOS",
	}}, presenter.successes)

	state := w.State()
	assert.Equal(t, Succeeded, state.Step)
	assert.Equal(t, "Copying template files...", state.ProgressMessage)
	assert.Empty(t, state.ErrorMessage)
}

func TestRunBlankNameIsReprompted(t *testing.T) {
	presenter := &fakePresenter{names: []string{"", "   ", "my-addon"}, templateID: "cpp-linux"}
	materializer := &fakeMaterializer{}
	w, _ := newTestWizard(State{Step: AwaitingName}, presenter, materializer)

	assert.Equal(t, 0, w.Run())
	assert.Equal(t, 3, presenter.namePrompts)
	assert.Equal(t, [][2]string{{"my-addon", "cpp-linux"}}, materializer.calls)
}

func TestRunStartsInCreating(t *testing.T) {
	initial, err := Resolve("my-addon", "cpp-win32")
	require.NoError(t, err)

	presenter := &fakePresenter{}
	materializer := &fakeMaterializer{}
	w, sleeps := newTestWizard(initial, presenter, materializer)

	assert.Equal(t, 0, w.Run())
	assert.Zero(t, presenter.namePrompts)
	assert.Zero(t, presenter.templatePrompts)
	assert.Equal(t, [][2]string{{"my-addon", "cpp-win32"}}, materializer.calls)
	assert.Len(t, presenter.successes, 1)
	assert.Len(t, *sleeps, 1)
}

func TestRunTemplateResolvedUpfront(t *testing.T) {
	initial, err := Resolve("", "objective-c")
	require.NoError(t, err)

	presenter := &fakePresenter{names: []string{"mac-addon"}}
	materializer := &fakeMaterializer{}
	w, _ := newTestWizard(initial, presenter, materializer)

	assert.Equal(t, 0, w.Run())
	assert.Equal(t, 1, presenter.namePrompts)
	assert.Zero(t, presenter.templatePrompts)
	assert.Equal(t, [][2]string{{"mac-addon", "objective-c"}}, materializer.calls)
}

func TestRunMaterializeFailure(t *testing.T) {
	presenter := &fakePresenter{}
	materializer := &fakeMaterializer{err: errors.New("directory /w/my-addon already exists")}
	w, sleeps := newTestWizard(State{Step: Creating, ProjectName: "my-addon",
		TemplateID: "swift"}, presenter, materializer)

	assert.Equal(t, 1, w.Run())
	assert.Equal(t, []time.Duration{ExitDelay}, *sleeps)
	assert.Len(t, materializer.calls, 1)
	assert.Empty(t, presenter.successes)
	assert.Equal(t, []string{"directory /w/my-addon already exists"}, presenter.errors)

	state := w.State()
	assert.Equal(t, Failed, state.Step)
	assert.Equal(t, "directory /w/my-addon already exists", state.ErrorMessage)
}

func TestRunPromptFailure(t *testing.T) {
	presenter := &fakePresenter{nameErr: errors.New("aborted by user")}
	materializer := &fakeMaterializer{}
	w, _ := newTestWizard(State{Step: AwaitingName}, presenter, materializer)

	assert.Equal(t, 1, w.Run())
	assert.Empty(t, materializer.calls)
	assert.Equal(t, []string{"aborted by user"}, presenter.errors)

	presenter = &fakePresenter{templateErr: errors.New("^D")}
	w, _ = newTestWizard(State{Step: AwaitingTemplate, ProjectName: "a"}, presenter, materializer)
	assert.Equal(t, 1, w.Run())
	assert.Empty(t, materializer.calls)
	assert.Equal(t, []string{"^D"}, presenter.errors)
}

func TestSubmit(t *testing.T) {
	presenter := &fakePresenter{}
	materializer := &fakeMaterializer{}
	w, _ := newTestWizard(State{Step: AwaitingName}, presenter, materializer)

	// Blank input is a silent no-op.
	require.NoError(t, w.Submit(" \t"))
	assert.Equal(t, State{Step: AwaitingName}, w.State())

	require.NoError(t, w.Submit(" my-addon"))
	assert.Equal(t, State{Step: AwaitingTemplate, ProjectName: "my-addon"}, w.State())

	// No way back.
	err := w.Submit("other")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "my-addon", w.State().ProjectName)

	require.NoError(t, w.Select("swift"))
	assert.Equal(t, Succeeded, w.State().Step)
	assert.ErrorIs(t, w.Select("cpp-linux"), ErrInvalidTransition)
	assert.ErrorIs(t, w.Submit("again"), ErrInvalidTransition)
	assert.Len(t, materializer.calls, 1)
	assert.Len(t, presenter.successes, 1)
}

func TestSubmitWithResolvedTemplate(t *testing.T) {
	presenter := &fakePresenter{}
	materializer := &fakeMaterializer{}
	w, _ := newTestWizard(State{Step: AwaitingName, TemplateID: "swift"}, presenter,
		materializer)

	require.NoError(t, w.Submit("my-addon"))
	assert.Equal(t, Succeeded, w.State().Step)
	assert.Equal(t, [][2]string{{"my-addon", "swift"}}, materializer.calls)
}

func TestSelectInWrongStep(t *testing.T) {
	w, _ := newTestWizard(State{Step: AwaitingName}, &fakePresenter{}, &fakeMaterializer{})
	assert.ErrorIs(t, w.Select("swift"), ErrInvalidTransition)
	assert.Equal(t, AwaitingName, w.State().Step)
}

func TestSummaryNextSteps(t *testing.T) {
	summary := Summary{ProjectName: "my-addon"}
	assert.Equal(t, []string{"cd my-addon", "npm install", "npm run build", "npm test"},
		summary.NextSteps())

	summary.SkipInstall = true
	assert.Equal(t, []string{"cd my-addon", "npm test"}, summary.NextSteps())
}

func TestSkipInstallInSummary(t *testing.T) {
	presenter := &fakePresenter{}
	w := New(State{Step: Creating, ProjectName: "a", TemplateID: "swift"}, Opts{
		Presenter:   presenter,
		Materialize: (&fakeMaterializer{}).materialize,
		SkipInstall: true,
	})
	w.sleep = func(time.Duration) {}

	assert.Equal(t, 0, w.Run())
	require.Len(t, presenter.successes, 1)
	assert.True(t, presenter.successes[0].SkipInstall)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "awaiting name", AwaitingName.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Step(42).String())
	assert.True(t, Succeeded.IsTerminal())
	assert.True(t, Failed.IsTerminal())
	assert.False(t, Creating.IsTerminal())
}
