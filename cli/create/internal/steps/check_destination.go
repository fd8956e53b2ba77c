package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/himself65/create-addon/cli/create/context"
	"github.com/himself65/create-addon/cli/create/errs"
)

// CheckDestination makes sure the project directory does not exist yet.
type CheckDestination struct{}

// Run resolves the project directory path. Nothing is written.
func (CheckDestination) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if ctx.ProjectName == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	appPath := filepath.Join(ctx.WorkDir, ctx.ProjectName)
	// Lstat: a dangling symlink is an existing entry too.
	if _, err := os.Lstat(appPath); err == nil {
		return &errs.DestinationExistsError{Path: appPath}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check project directory %s: %s", appPath, err)
	}

	log.Debugf("Creating project in %s", appPath)
	templateCtx.AppPath = appPath

	return nil
}
