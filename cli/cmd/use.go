package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/registry"
	"github.com/stampcli/stamp/cli/util"
)

// errEmptyTemplateName is returned if the template name argument is empty.
var errEmptyTemplateName = util.NewArgError("template name cannot be empty")

// NewUseCmd creates a command applying a registered template.
func NewUseCmd() *cobra.Command {
	opts := &applyOpts{}
	var useCmd = &cobra.Command{
		Use:   "use <TEMPLATE_NAME> <DESTINATION> [flags]",
		Short: "Apply a registered template",
		Long: `Apply a template found in registered roots.

The template name is the meta.name of its stamp.yaml or the template directory name.`,
		Run: RunModuleFunc(func(cmdCtx *cmdcontext.CmdCtx, args []string) error {
			return internalUseModule(cmdCtx, opts, args)
		}),
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: useValidArgsFunction,
		Example: `
# Apply axum_server template to ./my-server directory.

    $ stamp use axum_server ./my-server

# Apply the template without questions, using declared defaults for missing answers.

    $ stamp use axum_server ./my-server -s --defaults --var crate_name=my_server`,
	}

	opts.addFlags(useCmd)

	return useCmd
}

// useValidArgsFunction returns registered template names for `use` command.
func useValidArgsFunction(
	_ *cobra.Command,
	args []string,
	toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	if err := configureCli(); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := registry.Open(cliOpts.Registry)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	listing := reg.List()
	templates := make([]string, 0, len(listing.Templates))
	for _, template := range listing.Templates {
		templates = append(templates, template.Name+"\t"+template.Descriptor.Description)
	}
	return templates, cobra.ShellCompDirectiveNoFileComp
}

// internalUseModule is a default use module.
func internalUseModule(cmdCtx *cmdcontext.CmdCtx, opts *applyOpts, args []string) error {
	if args[0] == "" {
		return errEmptyTemplateName
	}
	createCtx := opts.createCtx(args[1])
	createCtx.TemplateName = args[0]
	return applyTemplate(createCtx)
}
