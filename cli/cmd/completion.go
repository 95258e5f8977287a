package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Run:       RunModuleFunc(internalCompletionCmd),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(stamp completion bash)`,
	}

	return cmd
}

// genCompletion writes completion script for the shell.
func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case shellBash:
		return root.GenBashCompletionV2(w, true)
	case shellZsh:
		return root.GenZshCompletion(w)
	case shellFish:
		return root.GenFishCompletion(w, true)
	}
	return fmt.Errorf("specified shell type is not supported. Available: %s", listShells())
}

// internalCompletionCmd is a default (internal) completion module function.
func internalCompletionCmd(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	return genCompletion(rootCmd, args[0], os.Stdout)
}
