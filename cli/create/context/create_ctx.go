package create_ctx

// CreateCtx contains information for creating a project from a template.
type CreateCtx struct {
	// ProjectName is a name of the project to create. It is used as the
	// project directory name and as the package name.
	ProjectName string
	// TemplateName is an id of the template to use for project creation.
	TemplateName string
	// WorkDir is create-addon launch working directory. The project is created
	// in it.
	WorkDir string
	// TemplatesDir is a directory containing template trees, one per template id.
	TemplatesDir string
	// TypeScript is set if the project is requested to be initialized as
	// a TypeScript project. It is carried along for the generated project
	// configuration and is not used by materialization.
	TypeScript bool
	// SkipInstall is set if dependencies installation is skipped. Affects
	// follow-up instructions only.
	SkipInstall bool
}
