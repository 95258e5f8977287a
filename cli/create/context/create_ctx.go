package create_ctx

// CreateCtx contains information for applying a template.
type CreateCtx struct {
	// TemplateName is a registered template name. Empty if SourceDir is set.
	TemplateName string
	// SourceDir is a template directory path. Empty if TemplateName is set.
	SourceDir string
	// DestinationDir is the path where the template is applied.
	DestinationDir string
	// VarsFromCli are answers definitions provided in command line.
	VarsFromCli []string
	// VarsFile is a file with answers definitions.
	VarsFile string
	// NonInteractive disables questions. Every question must have an answer
	// provided in command line or vars file.
	NonInteractive bool
	// UseDefaults makes non-interactive mode use the declared defaults.
	UseDefaults bool
	// Force removes an existing destination directory before applying the template.
	Force bool
	// RegistryPath is the registry file path.
	RegistryPath string
}
