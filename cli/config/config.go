package config

// Config used to store all information from the stamp configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"stamp" yaml:"stamp"`
}

// CliOpts stores information about stamp configuration.
// Filled in when parsing the config.yaml configuration file.
//
// config.yaml file format:
// stamp:
//
//	registry: path/to/registry.yaml
//	non_interactive: bool
//	use_defaults: bool
type CliOpts struct {
	// Registry is a path to the registry file.
	Registry string `mapstructure:"registry" yaml:"registry"`
	// NonInteractive disables questions for use and from commands.
	NonInteractive bool `mapstructure:"non_interactive" yaml:"non_interactive"`
	// UseDefaults makes non-interactive mode use the declared defaults.
	UseDefaults bool `mapstructure:"use_defaults" yaml:"use_defaults"`
}
