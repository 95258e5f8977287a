package configure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/stampcli/stamp/cli/cmdcontext"
	"github.com/stampcli/stamp/cli/config"
	"github.com/stampcli/stamp/cli/registry"
	"github.com/stampcli/stamp/cli/util"
)

const (
	// ConfigName is a default configuration file name.
	ConfigName = "config.yaml"
	// configEnvName is an environment variable with a configuration file path.
	configEnvName     = "STAMP_CONFIG"
	configHomeEnvName = "XDG_CONFIG_HOME"
	configDirName     = "stamp"
)

// GetDefaultCliOpts returns stamp options used when there is no config file.
func GetDefaultCliOpts() (*config.CliOpts, error) {
	registryPath, err := registry.DefaultPath()
	if err != nil {
		return nil, err
	}
	return &config.CliOpts{Registry: registryPath}, nil
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	return util.JoinAbspath(configDir, filePath)
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns stamp options from the config file located at path configPath.
// Empty configPath means there is no config file.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	if configPath == "" {
		return GetDefaultCliOpts()
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stamp configuration: %s", err)
	}
	if rawConfigOpts == nil {
		// Empty file.
		return GetDefaultCliOpts()
	}

	var cfg config.Config
	if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stamp configuration: %s", err)
	}
	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse stamp configuration: missing %s section",
			configDirName)
	}

	cliOpts := cfg.CliConfig
	configDir := filepath.Dir(configPath)
	if cliOpts.Registry, err = adjustPathWithConfigLocation(cliOpts.Registry,
		configDir); err != nil {
		return nil, err
	}
	if cliOpts.Registry == "" {
		if cliOpts.Registry, err = registry.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return cliOpts, nil
}

// Cli performs initial CLI configuration: detects the configuration file.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	configPath, err := getConfigPath(cmdCtx.Cli.ConfigPath)
	if err != nil {
		return err
	}
	cmdCtx.Cli.ConfigPath = configPath

	if configPath == "" {
		if cmdCtx.Cli.ConfigDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to detect current directory: %s", err)
		}
		return nil
	}
	cmdCtx.Cli.ConfigDir = filepath.Dir(configPath)
	log.Debugf("Using configuration file %s", configPath)
	return nil
}

// getConfigPath looks for the stamp configuration file. Tries to locate it in
// following order:
// 1) path passed with --cfg, it must exist;
// 2) $STAMP_CONFIG, it must exist;
// 3) $XDG_CONFIG_HOME/stamp/config.yaml (if $XDG_CONFIG_HOME is not set, uses
// the user configuration directory).
// Empty string is returned if there is no configuration file.
func getConfigPath(flagPath string) (string, error) {
	for _, explicit := range []string{flagPath, os.Getenv(configEnvName)} {
		if explicit == "" {
			continue
		}
		configPath, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("cannot determine config file path: %s", err)
		}
		if !util.IsRegularFile(configPath) {
			return "", fmt.Errorf("specified config file %q does not exist", configPath)
		}
		return configPath, nil
	}

	configHome := os.Getenv(configHomeEnvName)
	if configHome == "" {
		var err error
		if configHome, err = os.UserConfigDir(); err != nil {
			log.Debugf("Cannot determine user config directory: %s", err)
			return "", nil
		}
	}
	configPath := filepath.Join(configHome, configDirName, ConfigName)
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get access to configuration file: %s", err)
	}
	return configPath, nil
}
