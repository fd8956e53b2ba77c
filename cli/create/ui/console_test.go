package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/himself65/create-addon/cli/create/builtin_templates"
	"github.com/himself65/create-addon/cli/create/wizard"
	"github.com/himself65/create-addon/cli/util"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	return &Console{Stdout: &buf}, &buf
}

// Presenter interface implementation check.
var _ wizard.Presenter = (*Console)(nil)

func TestShowSuccess(t *testing.T) {
	console, buf := newTestConsole(t)
	console.ShowSuccess(wizard.Summary{
		ProjectName:         "my-addon",
		TemplateID:          "cpp-linux",
		TemplateDescription: "C++ addon for Linux platforms",
	})

	assert.Equal(t, `🎉 Project created successfully!

📋 Project Summary:
  • Name: my-addon
  • Template: cpp-linux
  • Description: C++ addon for Linux platforms

🔧 Next steps:
  cd my-addon
  npm install
  npm run build
  npm test

Happy coding! 🚀
`, buf.String())
}

func TestShowSuccessSkipInstall(t *testing.T) {
	console, buf := newTestConsole(t)
	console.ShowSuccess(wizard.Summary{ProjectName: "my-addon", SkipInstall: true})

	assert.Contains(t, buf.String(), "  cd my-addon\n  npm test\n")
	assert.NotContains(t, buf.String(), "npm install")
}

func TestShowError(t *testing.T) {
	console, buf := newTestConsole(t)
	console.ShowError("directory /work/my-addon already exists")

	assert.Equal(t, "❌ directory /work/my-addon already exists\n"+
		"The CLI will exit automatically...\n", buf.String())
}

func TestShowProgressNonInteractive(t *testing.T) {
	console, buf := newTestConsole(t)
	console.ShowProgress("Checking project directory...")
	console.ShowProgress("Copying template files...")

	assert.Equal(t, "📦 Checking project directory...\n📦 Copying template files...\n",
		buf.String())
	assert.Nil(t, console.spinner)
}

func TestShowProgressInteractive(t *testing.T) {
	console, buf := newTestConsole(t)
	console.Interactive = true

	console.ShowProgress("Checking project directory...")
	assert.NotNil(t, console.spinner)
	console.ShowProgress("Copying template files...")
	assert.Equal(t, " Copying template files...", console.spinner.Suffix)

	console.ShowError("boom")
	assert.Nil(t, console.spinner)
	assert.Contains(t, buf.String(), "Creating your addon project...")
	assert.Contains(t, buf.String(), "❌ boom")
}

func TestTemplateItems(t *testing.T) {
	items := templateItems(append(builtin_templates.Templates(),
		builtin_templates.Template{ID: "plain", DisplayName: "plain", Description: "No icon"}))

	assert.Equal(t, templateItem{ID: "cpp-linux",
		Label: "🐧 cpp-linux - C++ addon for Linux platforms"}, items[0])
	assert.Equal(t, templateItem{ID: "swift", Label: "🦉 swift - Swift addon for macOS"}, items[3])
	assert.Equal(t, "📦 plain - No icon", items[4].Label)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("my-addon"))
	assert.ErrorIs(t, validateName(""), errEmptyName)
	assert.ErrorIs(t, validateName(" \t "), errEmptyName)
}

func TestMapPromptError(t *testing.T) {
	assert.ErrorIs(t, mapPromptError(promptui.ErrInterrupt), util.ErrCmdAbort)
	assert.ErrorIs(t, mapPromptError(promptui.ErrEOF), util.ErrCmdAbort)

	other := errors.New("terminal is gone")
	assert.Equal(t, other, mapPromptError(other))
}

func TestBanner(t *testing.T) {
	console, buf := newTestConsole(t)
	console.Banner()
	assert.Contains(t, buf.String(), "create-addon")
	assert.Contains(t, buf.String(), "Create Node.js native addons with ease")
}
