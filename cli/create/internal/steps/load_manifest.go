package steps

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/himself65/create-addon/cli/create/builtin_templates"
	create_ctx "github.com/himself65/create-addon/cli/create/context"
	"github.com/himself65/create-addon/cli/create/errs"
	"github.com/himself65/create-addon/cli/util"
	"github.com/tidwall/gjson"
)

// utf8BOM is a byte order mark some editors put in front of the manifest.
var utf8BOM = []byte("\xef\xbb\xbf")

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotAnObject = errors.New("manifest is not a JSON object")
)

// LoadManifest represents project manifest loading step.
type LoadManifest struct{}

// Run loads the project manifest copied from the template. Missing manifest
// is not an error.
func (LoadManifest) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	manifestPath := filepath.Join(templateCtx.AppPath, builtin_templates.ManifestName)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No %s found. Skipping manifest update.", builtin_templates.ManifestName)
			templateCtx.IsManifestPresent = false
			return nil
		}
		return &errs.ManifestParseError{Path: manifestPath, Cause: err}
	}

	content, err := util.GetFileContentBytes(manifestPath)
	if err != nil {
		return &errs.ManifestParseError{Path: manifestPath, Cause: err}
	}
	content = bytes.TrimPrefix(content, utf8BOM)
	if !gjson.ValidBytes(content) {
		return &errs.ManifestParseError{Path: manifestPath, Cause: errInvalidJSON}
	}
	if !gjson.ParseBytes(content).IsObject() {
		return &errs.ManifestParseError{Path: manifestPath, Cause: errNotAnObject}
	}

	templateCtx.ManifestPath = manifestPath
	templateCtx.Manifest = content
	templateCtx.IsManifestPresent = true

	return nil
}
