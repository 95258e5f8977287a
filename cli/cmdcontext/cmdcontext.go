package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting stamp.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting stamp.
type CliCtx struct {
	// Path to stamp configuration file. Empty if there is no config.
	ConfigPath string
	// ConfigDir is the configuration file directory.
	// And current working directory, if there is no config.
	ConfigDir string
	// RegistryPath overrides the registry file path from the config.
	RegistryPath string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
