package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/registry"
)

// NewRemoveCmd creates a command removing a registered template root.
func NewRemoveCmd() *cobra.Command {
	var removeCmd = &cobra.Command{
		Use:   "remove <DIRECTORY>",
		Short: "Remove a registered directory with templates",
		Run:   RunModuleFunc(internalRemoveModule),
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string,
			toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 || configureCli() != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			reg, err := registry.Open(cliOpts.Registry)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return reg.Roots(), cobra.ShellCompDirectiveNoFileComp
		},
	}

	return removeCmd
}

// internalRemoveModule is a default remove module.
func internalRemoveModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	reg, err := registry.Open(cliOpts.Registry)
	if err != nil {
		return err
	}
	if err := reg.Remove(args[0]); err != nil {
		return err
	}
	log.Infof("Removed %s", args[0])
	return nil
}
