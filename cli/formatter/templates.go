// Package formatter renders tabular command output.
package formatter

import (
	"io"
	"path/filepath"

	"github.com/himself65/create-addon/cli/create/builtin_templates"
	"github.com/himself65/create-addon/cli/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	statusOk      = "ok"
	statusMissing = "missing"
)

// TemplatesOpts contains templates table options.
type TemplatesOpts struct {
	// TemplatesDir is checked for template trees presence.
	TemplatesDir string
	// Graphics enables box drawing.
	Graphics bool
}

// templateStatus reports whether the template tree is present in templatesDir.
func templateStatus(templatesDir, id string) string {
	if templatesDir != "" && util.IsDir(filepath.Join(templatesDir, id)) {
		return statusOk
	}
	return statusMissing
}

// Templates writes the catalog of templates as a table.
func Templates(w io.Writer, templates []builtin_templates.Template, opts TemplatesOpts) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"TEMPLATE", "DESCRIPTION", "STATUS"})
	for _, template := range templates {
		tw.AppendRow(table.Row{
			template.ID,
			template.Description,
			templateStatus(opts.TemplatesDir, template.ID),
		})
	}

	if opts.Graphics {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.Style{Box: StyleWithoutGraphics})
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateHeader = false
	}
	tw.Style().Format.Header = text.FormatDefault
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}
