package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
)

// NewFromCmd creates a command applying a template from a directory.
func NewFromCmd() *cobra.Command {
	opts := &applyOpts{}
	var fromCmd = &cobra.Command{
		Use:   "from <TEMPLATE_DIR> <DESTINATION> [flags]",
		Short: "Apply a template from a directory",
		Run: RunModuleFunc(func(cmdCtx *cmdcontext.CmdCtx, args []string) error {
			return internalFromModule(cmdCtx, opts, args)
		}),
		Args: cobra.ExactArgs(2),
		Example: `
# Apply the template in ./templates/cli directory.

    $ stamp from ./templates/cli ./my-cli

# Take answers from a file.

    $ stamp from ./templates/cli ./my-cli --vars-file answers.txt`,
	}

	opts.addFlags(fromCmd)

	return fromCmd
}

// internalFromModule is a default from module.
func internalFromModule(cmdCtx *cmdcontext.CmdCtx, opts *applyOpts, args []string) error {
	createCtx := opts.createCtx(args[1])
	createCtx.SourceDir = args[0]
	return applyTemplate(createCtx)
}
