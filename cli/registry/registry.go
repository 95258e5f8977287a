// Package registry keeps the set of template source roots and discovers
// templates in them.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/util"
)

const (
	// configDirName is a stamp directory in the user configuration directory.
	configDirName = "stamp"
	// DefaultFileName is a registry file name.
	DefaultFileName = "registry.yaml"
)

// DefaultPath returns the registry file path in the user configuration directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, configDirName, DefaultFileName), nil
}

// registryFile is the persisted registry state.
type registryFile struct {
	Roots []string `mapstructure:"roots" yaml:"roots"`
}

// Registry is an ordered set of absolute template source roots backed by a file.
// Every mutation rewrites the file atomically.
type Registry struct {
	path  string
	roots []string
}

// Open loads the registry file. Missing file is an empty registry.
func Open(path string) (*Registry, error) {
	registry := &Registry{path: path}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Registry file %s does not exist", path)
			return registry, nil
		}
		return nil, errs.Wrap(errs.IOError, err, "failed to access registry")
	}

	raw, err := util.ParseYAML(path)
	if err != nil {
		return nil, errs.Wrap(errs.IOError, err, "failed to load registry %s", path)
	}
	var state registryFile
	if err := mapstructure.Decode(raw, &state); err != nil {
		return nil, errs.Wrap(errs.IOError, err, "failed to load registry %s", path)
	}

	seen := map[string]bool{}
	for _, root := range state.Roots {
		if !filepath.IsAbs(root) {
			return nil, errs.New(errs.IOError,
				"failed to load registry %s: %q is not an absolute path", path, root)
		}
		root = filepath.Clean(root)
		if !seen[root] {
			seen[root] = true
			registry.roots = append(registry.roots, root)
		}
	}
	return registry, nil
}

// Path returns the registry file path.
func (registry *Registry) Path() string {
	return registry.path
}

// Roots returns registered roots in registration order.
func (registry *Registry) Roots() []string {
	return append([]string{}, registry.roots...)
}

// normalize makes root absolute and clean.
func normalize(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", errs.Wrap(errs.IOError, err, "failed to get absolute path of %s", root)
	}
	return filepath.Clean(absRoot), nil
}

func (registry *Registry) indexOf(root string) int {
	for i, registered := range registry.roots {
		if registered == root {
			return i
		}
	}
	return -1
}

// Contains checks if the root is registered.
func (registry *Registry) Contains(root string) (bool, error) {
	absRoot, err := normalize(root)
	if err != nil {
		return false, err
	}
	return registry.indexOf(absRoot) >= 0, nil
}

// Add registers the root directory. Returns false if it is already registered.
func (registry *Registry) Add(root string) (bool, error) {
	absRoot, err := normalize(root)
	if err != nil {
		return false, err
	}
	if !util.IsDir(absRoot) {
		return false, errs.New(errs.NotFound, "directory %s is not found", absRoot)
	}
	if registry.indexOf(absRoot) >= 0 {
		log.Debugf("%s is already registered", absRoot)
		return false, nil
	}

	registry.roots = append(registry.roots, absRoot)
	if err := registry.save(); err != nil {
		registry.roots = registry.roots[:len(registry.roots)-1]
		return false, err
	}
	return true, nil
}

// Remove unregisters the root directory. The directory may not exist.
func (registry *Registry) Remove(root string) error {
	absRoot, err := normalize(root)
	if err != nil {
		return err
	}
	idx := registry.indexOf(absRoot)
	if idx < 0 {
		return errs.New(errs.NotFound, "%s is not registered", absRoot)
	}

	prev := registry.roots
	registry.roots = append(append([]string{}, prev[:idx]...), prev[idx+1:]...)
	if err := registry.save(); err != nil {
		registry.roots = prev
		return err
	}
	return nil
}

// save writes the registry file.
func (registry *Registry) save() error {
	state := registryFile{Roots: registry.roots}
	if state.Roots == nil {
		state.Roots = []string{}
	}
	if err := util.WriteYamlAtomic(registry.path, state); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to save registry")
	}
	log.Debugf("Registry is saved to %s", registry.path)
	return nil
}
