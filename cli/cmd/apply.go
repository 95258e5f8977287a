package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/create"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/prompt"
)

// applyOpts are flags of the commands applying a template.
type applyOpts struct {
	forceMode          bool
	nonInteractiveMode bool
	useDefaults        bool
	varsFromCli        *[]string
	varsFile           string
}

func (opts *applyOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&opts.forceMode, "force", "f", false,
		"Remove destination directory before applying the template")
	cmd.Flags().BoolVarP(&opts.nonInteractiveMode, "non-interactive", "s", false,
		"Non-interactive mode")
	cmd.Flags().BoolVar(&opts.useDefaults, "defaults", false,
		"Use declared defaults for questions without answers in non-interactive mode")
	opts.varsFromCli = cmd.Flags().StringArray("var", []string{},
		"Answer definition. Usage: --var id=value")
	cmd.Flags().StringVar(&opts.varsFile, "vars-file", "", "Answers definition file path")
}

// createCtx fills the create context with flags and configuration.
func (opts *applyOpts) createCtx(dst string) create_ctx.CreateCtx {
	return create_ctx.CreateCtx{
		DestinationDir: dst,
		VarsFromCli:    *opts.varsFromCli,
		VarsFile:       opts.varsFile,
		NonInteractive: opts.nonInteractiveMode || cliOpts.NonInteractive,
		UseDefaults:    opts.useDefaults || cliOpts.UseDefaults,
		Force:          opts.forceMode,
		RegistryPath:   cliOpts.Registry,
	}
}

// newAsker returns terminal questions driver. Nil is returned if questions are
// disabled or there is no terminal.
func newAsker(nonInteractive bool) prompt.Asker {
	if nonInteractive || !prompt.IsInteractive() {
		return nil
	}
	return prompt.NewTerminal()
}

// applyTemplate applies the template described by createCtx.
func applyTemplate(createCtx create_ctx.CreateCtx) error {
	return create.Run(&createCtx, newAsker(createCtx.NonInteractive))
}
