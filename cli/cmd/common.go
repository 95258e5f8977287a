package cmd

import (
	"errors"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/util"
)

// moduleFunc is an internal module function.
type moduleFunc func(cmdCtx *cmdcontext.CmdCtx, args []string) error

// RunModuleFunc returns a cobra Run function which calls the internal module and
// handles its error.
func RunModuleFunc(internalModule moduleFunc) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		cmdCtx.CommandName = cmd.Name()
		handleCmdErr(cmd, internalModule(&cmdCtx, args))
	}
}

// exitCode returns the process exit code for the error.
func exitCode(err error) int {
	var argError *util.ArgError
	if errors.As(err, &argError) || errors.Is(err, util.ErrCmdAbort) {
		return 1
	}
	return errs.KindOf(err).ExitCode()
}

// handleCmdErr handles an error returned by command implementation.
// If received error is of an ArgError type, usage help is printed.
func handleCmdErr(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}

	var argError *util.ArgError
	switch {
	case errors.As(err, &argError):
		log.Error(argError.Error())
		cmd.Usage()
	case errors.Is(err, util.ErrCmdAbort):
		log.Info(err.Error())
	default:
		log.Error(err.Error())
	}
	os.Exit(exitCode(err))
}
