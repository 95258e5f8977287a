package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/config"
	"github.com/stampcli/stamp/cli/configure"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	cliOpts *config.CliOpts
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stamp",
		Short: "Project scaffolding from templates",
		Long: "Utility for creating projects from directory templates " +
			"and managing template registry",
		Example: `$ stamp register ~/templates
  $ stamp list
  $ stamp use axum_server ./my-server
  $ stamp from ./templates/cli ./my-cli --var project=my-cli`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			handleCmdErr(cmd, configureCli())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&cmdCtx.Cli.RegistryPath, "registry",
		"", "Path to registry file")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
		NewUseCmd(),
		NewFromCmd(),
		NewRegisterCmd(),
		NewRemoveCmd(),
		NewListCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

// InitRoot creates the root command.
func InitRoot() {
	rootCmd = NewCmdRoot()
}

// configureCli detects the configuration file and loads stamp options.
func configureCli() error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := configure.Cli(&cmdCtx); err != nil {
		return fmt.Errorf("failed to configure stamp: %w", err)
	}

	var err error
	cliOpts, err = configure.GetCliOpts(cmdCtx.Cli.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to get stamp configuration: %w", err)
	}

	if cmdCtx.Cli.RegistryPath != "" {
		if cliOpts.Registry, err = filepath.Abs(cmdCtx.Cli.RegistryPath); err != nil {
			return fmt.Errorf("cannot determine registry file path: %w", err)
		}
	}
	log.Debugf("Using registry %s", cliOpts.Registry)
	return nil
}
