// Package list prints registered template roots and discovered templates.
package list

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stampcli/stamp/cli/registry"
	"github.com/stampcli/stamp/cli/util"
)

// ListOpts contains options of the templates listing.
type ListOpts struct {
	// PathsOnly prints template directories one per line.
	PathsOnly bool
}

// ListTemplates writes the templates of the listing to w.
func ListTemplates(w io.Writer, listing registry.Listing, opts ListOpts) error {
	if len(listing.Templates) == 0 {
		log.Info("there are no templates in registered roots")
		return nil
	}

	if opts.PathsOnly {
		for _, template := range listing.Templates {
			if _, err := fmt.Fprintln(w, template.Path); err != nil {
				return err
			}
		}
		return nil
	}

	ts := table.NewWriter()
	ts.SetOutputMirror(w)
	ts.AppendHeader(table.Row{"NAME", "DESCRIPTION", "PATH"})
	for _, template := range listing.Templates {
		ts.AppendRow(table.Row{template.Name, template.Descriptor.Description, template.Path})
	}
	ts.Style().Options.DrawBorder = false
	ts.Style().Options.SeparateColumns = false
	ts.Style().Options.SeparateHeader = false
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	ts.Render()

	if len(listing.Broken) > 0 {
		log.Warnf("%d template(s) skipped", len(listing.Broken))
	}
	return nil
}

// ListRoots writes registered roots to w. Roots which are not directories anymore
// are marked.
func ListRoots(w io.Writer, roots []string) error {
	if len(roots) == 0 {
		log.Info("there are no registered roots")
		return nil
	}
	for _, root := range roots {
		line := root
		if !util.IsDir(root) {
			line = fmt.Sprintf("%s %s", root, color.YellowString("(missing)"))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
