package steps

// TemplateCtx contains an information shared between materialization steps.
type TemplateCtx struct {
	// AppPath is a path to the project directory. Template is copied to
	// this directory.
	AppPath string
	// TemplatePath is a path to the template tree the project is copied from.
	TemplatePath string
	// ManifestPath is a path to the project manifest.
	ManifestPath string
	// IsManifestPresent is true if the project manifest is loaded. False - otherwise.
	IsManifestPresent bool
	// Manifest is loaded manifest content.
	Manifest []byte
}

// NewTemplateContext creates new template context.
func NewTemplateContext() TemplateCtx {
	return TemplateCtx{}
}
