package steps

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/himself65/create-addon/cli/create/context"
	"github.com/himself65/create-addon/cli/create/errs"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	manifestIndent  = "  "
	manifestNameKey = "name"
)

// collapseNameMembers rebuilds the root object keeping only the first member
// whose key decodes to "name". The kept key is written unescaped.
func collapseNameMembers(content []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	found := false
	gjson.ParseBytes(content).ForEach(func(key, value gjson.Result) bool {
		keyRaw := key.Raw
		if key.String() == manifestNameKey {
			if found {
				log.Debugf("Dropping duplicate %q member", manifestNameKey)
				return true
			}
			found = true
			keyRaw = `"` + manifestNameKey + `"`
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.WriteString(keyRaw)
		buf.WriteByte(':')
		buf.WriteString(value.Raw)
		return true
	})
	buf.WriteByte('}')
	return buf.Bytes()
}

// formatManifest re-indents manifest content keeping members order.
func formatManifest(content []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(content), "", manifestIndent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// PatchManifest represents project manifest update step.
type PatchManifest struct{}

// Run sets manifest name to the project name and writes the manifest back.
// Repeated name members are dropped.
func (PatchManifest) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if !templateCtx.IsManifestPresent {
		return nil
	}

	manifestPath := templateCtx.ManifestPath
	manifest := collapseNameMembers(templateCtx.Manifest)
	if oldName := gjson.GetBytes(manifest, manifestNameKey); oldName.Exists() {
		log.Debugf("Renaming package %q to %q", oldName.String(), ctx.ProjectName)
	}

	patched, err := sjson.SetBytes(manifest, manifestNameKey, ctx.ProjectName)
	if err != nil {
		return &errs.ManifestWriteError{Path: manifestPath, Cause: err}
	}
	formatted, err := formatManifest(patched)
	if err != nil {
		return &errs.ManifestWriteError{Path: manifestPath, Cause: err}
	}
	if err := os.WriteFile(manifestPath, formatted, 0644); err != nil {
		return &errs.ManifestWriteError{Path: manifestPath, Cause: err}
	}
	templateCtx.Manifest = formatted

	return nil
}
