package cmd

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/registry"
)

var allowEmpty bool

// NewRegisterCmd creates a command registering a template root.
func NewRegisterCmd() *cobra.Command {
	var registerCmd = &cobra.Command{
		Use:   "register <DIRECTORY> [flags]",
		Short: "Register a directory with templates",
		Long: `Register a directory as a template root.

Every directory in the root containing stamp.yaml is a template.`,
		Run:  RunModuleFunc(internalRegisterModule),
		Args: cobra.ExactArgs(1),
		Example: `
# Register templates from ~/templates directory.

    $ stamp register ~/templates

# Register an empty directory to add templates later.

    $ stamp register ~/new-templates -a`,
	}

	registerCmd.Flags().BoolVarP(&allowEmpty, "allow-empty", "a", false,
		"Register a directory without templates")

	return registerCmd
}

// internalRegisterModule is a default register module.
func internalRegisterModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	reg, err := registry.Open(cliOpts.Registry)
	if err != nil {
		return err
	}

	if !allowEmpty {
		listing, err := registry.Discover(args[0])
		if err != nil {
			return err
		}
		if len(listing.Templates) == 0 {
			return errs.New(errs.NotFound,
				"no templates found in %s: use --allow-empty to register it anyway", args[0])
		}
		log.Infof("Found %d template(s)", len(listing.Templates))
	}

	added, err := reg.Add(args[0])
	if err != nil {
		return err
	}
	if !added {
		log.Infof("%s is already registered", args[0])
		return nil
	}
	log.Infof("Registered %s", args[0])
	return nil
}
