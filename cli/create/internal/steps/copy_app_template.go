package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/himself65/create-addon/cli/create/builtin_templates"
	create_ctx "github.com/himself65/create-addon/cli/create/context"
	"github.com/himself65/create-addon/cli/create/errs"
	"github.com/himself65/create-addon/cli/util"
	"github.com/otiai10/copy"
)

// skipExcluded skips build artifacts and dependency caches. Only the base name
// is checked, so the entry is skipped at any depth.
func skipExcluded(srcInfo os.FileInfo, src, dest string) (bool, error) {
	if builtin_templates.IsExcluded(srcInfo.Name()) {
		log.Debugf("Skipping %s", src)
		return true, nil
	}
	return false, nil
}

// copyOptions returns template tree copy options.
func copyOptions() copy.Options {
	return copy.Options{
		Skip: skipExcluded,
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Deep
		},
	}
}

// CopyAppTemplate represents template copying step.
type CopyAppTemplate struct{}

// Run copies application template to the project directory.
func (CopyAppTemplate) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	templatePath := filepath.Join(ctx.TemplatesDir, ctx.TemplateName)
	if !util.IsDir(templatePath) {
		return &errs.CopyError{
			Source:      templatePath,
			Destination: templateCtx.AppPath,
			Cause:       fmt.Errorf("template %q is not found", ctx.TemplateName),
		}
	}

	log.Debugf("Using template from %s", templatePath)
	if err := copy.Copy(templatePath, templateCtx.AppPath, copyOptions()); err != nil {
		return &errs.CopyError{
			Source:      templatePath,
			Destination: templateCtx.AppPath,
			Cause:       err,
		}
	}
	templateCtx.TemplatePath = templatePath

	return nil
}
