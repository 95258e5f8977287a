package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/list"
	"github.com/stampcli/stamp/cli/registry"
)

var (
	listRoots bool
	listOpts  list.ListOpts
)

// NewListCmd creates a command listing registered templates.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list [flags]",
		Short: "Show templates from registered directories",
		Run:   RunModuleFunc(internalListModule),
		Args:  cobra.NoArgs,
	}

	listCmd.Flags().BoolVar(&listRoots, "roots", false, "Show registered directories")
	listCmd.Flags().BoolVar(&listOpts.PathsOnly, "paths-only", false,
		"Show template directories only")

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	reg, err := registry.Open(cliOpts.Registry)
	if err != nil {
		return err
	}
	if listRoots {
		return list.ListRoots(os.Stdout, reg.Roots())
	}
	return list.ListTemplates(os.Stdout, reg.List(), listOpts)
}
