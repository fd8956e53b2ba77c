// Package ui implements the terminal presenter of the create wizard.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/himself65/create-addon/cli/create/builtin_templates"
	"github.com/himself65/create-addon/cli/create/wizard"
	"github.com/himself65/create-addon/cli/util"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	errEmptyName = errors.New("project name cannot be empty")
)

// defaultIcon is shown for templates without an icon.
const defaultIcon = "📦"

// Console is a wizard presenter rendering to a terminal.
type Console struct {
	// Stdout is a writer for rendered output.
	Stdout io.Writer
	// Interactive enables the spinner. Progress is printed line by line otherwise.
	Interactive bool

	spinner *spinner.Spinner
}

// NewConsole creates a presenter writing to stdout.
func NewConsole() *Console {
	return &Console{
		Stdout:      os.Stdout,
		Interactive: isTerminal(os.Stdout),
	}
}

func isTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Banner prints the tool title.
func (c *Console) Banner() {
	fmt.Fprintln(c.Stdout, util.Bold(color.MagentaString("🚀 create-addon")))
	fmt.Fprintln(c.Stdout, util.Dim("Create Node.js native addons with ease"))
	fmt.Fprintln(c.Stdout)
}

// validateName rejects names that are blank after trimming.
func validateName(input string) error {
	if strings.TrimSpace(input) == "" {
		return errEmptyName
	}
	return nil
}

// mapPromptError converts prompt interruption to the abort error.
func mapPromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) ||
		errors.Is(err, promptui.ErrAbort) {
		return util.ErrCmdAbort
	}
	return err
}

// PromptForName asks for the project name.
func (c *Console) PromptForName() (string, error) {
	fmt.Fprintln(c.Stdout, color.New(color.FgBlue, color.Bold).Sprint(
		"📝 Enter your project name:"))
	fmt.Fprintln(c.Stdout, color.HiBlackString(
		"This will be used as the directory name and package name"))

	prompt := promptui.Prompt{
		Label:    "Project name",
		Validate: validateName,
	}
	name, err := prompt.Run()
	if err != nil {
		return "", mapPromptError(err)
	}
	return name, nil
}

// templateItem is a template select list item.
type templateItem struct {
	ID    string
	Label string
}

func templateItems(candidates []builtin_templates.Template) []templateItem {
	items := make([]templateItem, 0, len(candidates))
	for _, template := range candidates {
		icon := template.Icon
		if icon == "" {
			icon = defaultIcon
		}
		items = append(items, templateItem{
			ID:    template.ID,
			Label: fmt.Sprintf("%s %s - %s", icon, template.DisplayName, template.Description),
		})
	}
	return items
}

// PromptForTemplate shows a menu to choose one of candidates.
func (c *Console) PromptForTemplate(candidates []builtin_templates.Template) (string, error) {
	fmt.Fprintln(c.Stdout, color.HiBlackString(
		"Choose the template that best matches your target platform"))

	items := templateItems(candidates)
	templateSelect := promptui.Select{
		Label: "🚀 Select a template for your addon",
		Items: items,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ .Label | cyan }}",
			Inactive: "  {{ .Label }}",
			Selected: "✔ {{ .Label | green }}",
		},
		Size: len(items),
	}
	idx, _, err := templateSelect.Run()
	if err != nil {
		return "", mapPromptError(err)
	}
	return items[idx].ID, nil
}

// ShowProgress shows the current creation phase.
func (c *Console) ShowProgress(message string) {
	if !c.Interactive {
		fmt.Fprintf(c.Stdout, "%s %s\n", defaultIcon, message)
		return
	}

	if c.spinner == nil {
		fmt.Fprintln(c.Stdout, color.New(color.FgBlue, color.Bold).Sprint(
			"🔧 Creating your addon project..."))
		c.spinner = spinner.New(spinnerPicture, spinnerUpdateTime, spinner.WithWriter(c.Stdout))
		c.spinner.Suffix = " " + message
		c.spinner.Start()
		return
	}

	c.spinner.Lock()
	c.spinner.Suffix = " " + message
	c.spinner.Unlock()
}

func (c *Console) stopSpinner() {
	if c.spinner != nil {
		c.spinner.Stop()
		c.spinner = nil
	}
}

// ShowSuccess shows created project summary and follow-up commands.
func (c *Console) ShowSuccess(summary wizard.Summary) {
	c.stopSpinner()

	w := c.Stdout
	color.New(color.FgGreen, color.Bold).Fprintln(w, "🎉 Project created successfully!")
	fmt.Fprintln(w)
	color.New(color.FgBlue).Fprintln(w, "📋 Project Summary:")
	fmt.Fprintf(w, "  • Name: %s\n", color.YellowString(summary.ProjectName))
	fmt.Fprintf(w, "  • Template: %s\n", color.YellowString(summary.TemplateID))
	fmt.Fprintf(w, "  • Description: %s\n", color.HiBlackString(summary.TemplateDescription))
	fmt.Fprintln(w)
	color.New(color.FgBlue, color.Bold).Fprintln(w, "🔧 Next steps:")
	for _, nextStep := range summary.NextSteps() {
		fmt.Fprintf(w, "  %s\n", color.HiBlackString(nextStep))
	}
	fmt.Fprintln(w)
	color.New(color.FgGreen).Fprintln(w, "Happy coding! 🚀")
}

// ShowError shows the failure message.
func (c *Console) ShowError(message string) {
	c.stopSpinner()

	fmt.Fprintln(c.Stdout, color.RedString("❌ %s", message))
	fmt.Fprintln(c.Stdout, color.HiBlackString("The CLI will exit automatically..."))
}
