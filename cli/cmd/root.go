// Package cmd implements the create-addon command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/himself65/create-addon/cli/config"
	"github.com/himself65/create-addon/cli/configure"
	"github.com/himself65/create-addon/cli/create/builtin_templates"
	"github.com/himself65/create-addon/cli/create/ui"
	"github.com/himself65/create-addon/cli/formatter"
	"github.com/himself65/create-addon/cli/ttlog"
	"github.com/himself65/create-addon/cli/util"
	"github.com/himself65/create-addon/cli/version"
	"github.com/spf13/cobra"
)

var (
	rootCmd *cobra.Command
	cliOpts *config.CliOpts
	logger  *ttlog.Logger

	templateID    string
	typeScript    bool
	skipInstall   bool
	configPath    string
	verbose       bool
	listTemplates bool
	graphics      bool
)

// templatesHelp returns the built-in templates description for the command help.
func templatesHelp() string {
	var sb strings.Builder
	sb.WriteString("Built-in templates:")
	for _, template := range builtin_templates.Templates() {
		fmt.Fprintf(&sb, "\n\t%s: %s.", template.ID, template.Description)
	}
	return sb.String()
}

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "create-addon [project-name]",
		Short: "Create Node.js native addons with ease",
		Long: "Create a Node.js native addon project from a template.\n\n" +
			templatesHelp(),
		Example: `
# Start the interactive wizard.

    $ create-addon

# Create my-addon, the template is selected interactively.

    $ create-addon my-addon

# Create my-addon from the cpp-linux template without any prompts.

    $ create-addon my-addon --template cpp-linux

# Create my-addon from the swift template, skip dependencies installation.

    $ create-addon my-addon -t swift --skip-install

For more information, visit: https://github.com/himself65/create-addon`,
		Version: version.GetVersion(false, false),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		Run: func(cmd *cobra.Command, args []string) {
			code, err := internalRootModule(cmd, args)
			if logger != nil {
				logger.Close()
			}
			util.HandleCmdErr(cmd, err)
			os.Exit(code)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string,
			toComplete string,
		) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	rootCmd.Flags().StringVarP(&templateID, "template", "t", "",
		fmt.Sprintf("Template to use (%s)", strings.Join(builtin_templates.Names(), ", ")))
	rootCmd.Flags().BoolVar(&typeScript, "typescript", false, "Use TypeScript")
	rootCmd.Flags().BoolVar(&typeScript, "ts", false, "Use TypeScript (alias for --typescript)")
	rootCmd.Flags().BoolVar(&skipInstall, "skip-install", false,
		"Skip dependencies installation in follow-up instructions")
	rootCmd.Flags().BoolVar(&listTemplates, "list-templates", false,
		"Print available templates and exit")
	rootCmd.Flags().BoolVar(&graphics, "graphics", false,
		"Draw table borders in --list-templates output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "cfg", "c", "",
		"Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false,
		"Show debug messages")

	rootCmd.RegisterFlagCompletionFunc("template", templateCompletion)
	rootCmd.SetVersionTemplate("{{ .Version }}\n")

	log.SetHandler(cli.Default)

	return rootCmd
}

// templateCompletion returns template ids for `--template` flag completion.
func templateCompletion(
	_ *cobra.Command,
	_ []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	completions := make([]string, 0, len(builtin_templates.Names()))
	for _, template := range builtin_templates.Templates() {
		if strings.HasPrefix(template.ID, toComplete) {
			completions = append(completions,
				fmt.Sprintf("%s\t%s", template.ID, template.Description))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// setup loads create-addon configuration and installs logging handlers.
func setup() error {
	var err error
	if cliOpts, _, err = configure.GetCliOpts(configPath); err != nil {
		return fmt.Errorf("failed to get create-addon configuration: %s", err)
	}

	logger = ttlog.NewLogger(os.Stderr, cliOpts.Log)
	logger.Install(verbose)
	return nil
}

// internalRootModule is the create-addon command implementation. It returns
// the process exit code.
func internalRootModule(cmd *cobra.Command, args []string) (int, error) {
	if listTemplates {
		formatter.Templates(cmd.OutOrStdout(), builtin_templates.Templates(),
			formatter.TemplatesOpts{TemplatesDir: cliOpts.TemplatesDir, Graphics: graphics})
		return 0, nil
	}

	projectName := ""
	if len(args) > 0 {
		projectName = args[0]
	}

	workDir, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("failed to detect current directory: %s", err)
	}

	console := ui.NewConsole()
	w, err := newWizard(projectName, templateID, wizardOpts{
		presenter:    console,
		workDir:      workDir,
		templatesDir: cliOpts.TemplatesDir,
		typeScript:   typeScript,
		skipInstall:  skipInstall,
	})
	if err != nil {
		return 1, err
	}

	console.Banner()
	return w.Run(), nil
}

// Execute root command.
func Execute() {
	rootCmd = NewCmdRoot()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}
