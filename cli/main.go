package main

import (
	"log"

	"github.com/stampcli/stamp/cli/cmd"
	"github.com/stampcli/stamp/cli/util"
	"github.com/stampcli/stamp/cli/version"
)

func main() {
	defer func() {
		// In case our program panics, recover captures the value given to panic
		// and the error is reported with the version and the stack trace.
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
