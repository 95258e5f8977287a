package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestGetCliOpts(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, dir, `stamp:
  registry: reg/registry.yaml
  non_interactive: true
  use_defaults: true
`)

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, &config.CliOpts{
		Registry:       filepath.Join(dir, "reg", "registry.yaml"),
		NonInteractive: true,
		UseDefaults:    true,
	}, cliOpts)
}

func TestGetCliOptsAbsoluteRegistry(t *testing.T) {
	dir := t.TempDir()
	registryPath := filepath.Join(t.TempDir(), "registry.yaml")
	configPath := writeConfig(t, dir, "stamp:\n  registry: "+registryPath+"\n")

	cliOpts, err := GetCliOpts(configPath)
	require.NoError(t, err)
	assert.Equal(t, registryPath, cliOpts.Registry)
	assert.False(t, cliOpts.NonInteractive)
}

func TestGetCliOptsDefaults(t *testing.T) {
	t.Setenv(configHomeEnvName, t.TempDir())
	defaults, err := GetDefaultCliOpts()
	require.NoError(t, err)
	assert.NotEmpty(t, defaults.Registry)

	cliOpts, err := GetCliOpts("")
	require.NoError(t, err)
	assert.Equal(t, defaults, cliOpts)

	cliOpts, err = GetCliOpts(writeConfig(t, t.TempDir(), ""))
	require.NoError(t, err)
	assert.Equal(t, defaults, cliOpts)

	cliOpts, err = GetCliOpts(writeConfig(t, t.TempDir(), "stamp:\n  use_defaults: true\n"))
	require.NoError(t, err)
	assert.Equal(t, defaults.Registry, cliOpts.Registry)
	assert.True(t, cliOpts.UseDefaults)
}

func TestGetCliOptsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := GetCliOpts(writeConfig(t, dir, "other:\n  key: value\n"))
	assert.ErrorContains(t, err, "missing stamp section")

	_, err = GetCliOpts(writeConfig(t, dir, "stamp: [\n"))
	assert.ErrorContains(t, err, "failed to parse stamp configuration")

	_, err = GetCliOpts(writeConfig(t, dir, "stamp:\n  non_interactive: [1]\n"))
	assert.ErrorContains(t, err, "failed to parse stamp configuration")

	_, err = GetCliOpts(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to parse stamp configuration")
}

func TestConfigureCli(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv(configHomeEnvName, configHome)
	t.Setenv(configEnvName, "")

	// No config.
	cmdCtx := cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	assert.Empty(t, cmdCtx.Cli.ConfigPath)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cmdCtx.Cli.ConfigDir)

	// Config in the config home.
	require.NoError(t, os.Mkdir(filepath.Join(configHome, configDirName), 0755))
	homeConfig := writeConfig(t, filepath.Join(configHome, configDirName), "stamp: {}\n")
	cmdCtx = cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, homeConfig, cmdCtx.Cli.ConfigPath)
	assert.Equal(t, filepath.Dir(homeConfig), cmdCtx.Cli.ConfigDir)

	// Environment overrides the config home.
	envConfig := writeConfig(t, t.TempDir(), "stamp: {}\n")
	t.Setenv(configEnvName, envConfig)
	cmdCtx = cmdcontext.CmdCtx{}
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, envConfig, cmdCtx.Cli.ConfigPath)

	// Flag overrides the environment.
	flagConfig := writeConfig(t, t.TempDir(), "stamp: {}\n")
	cmdCtx = cmdcontext.CmdCtx{Cli: cmdcontext.CliCtx{ConfigPath: flagConfig}}
	require.NoError(t, Cli(&cmdCtx))
	assert.Equal(t, flagConfig, cmdCtx.Cli.ConfigPath)

	cmdCtx = cmdcontext.CmdCtx{Cli: cmdcontext.CliCtx{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	}}
	assert.ErrorContains(t, Cli(&cmdCtx), "does not exist")
}
