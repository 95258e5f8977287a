package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/manifest"
)

// Template is a template found in a registered root.
type Template struct {
	// Name is the descriptor name or the directory name.
	Name string
	// Path is the template directory.
	Path string
	// Descriptor is the loaded template descriptor.
	Descriptor *manifest.Descriptor
}

// BrokenTemplate is a directory which could not be inspected or has an invalid
// descriptor.
type BrokenTemplate struct {
	Path string
	Err  error
}

// Listing is a result of templates discovery.
type Listing struct {
	// Templates are sorted by name then by path.
	Templates []Template
	// Broken are in discovery order.
	Broken []BrokenTemplate
}

// discoverer walks template roots. Directories are visited once by real path.
type discoverer struct {
	visited map[string]bool
	listing Listing
}

func newDiscoverer() *discoverer {
	return &discoverer{visited: map[string]bool{}}
}

func (d *discoverer) broken(path string, err error) {
	log.Warnf("Skipping %s: %s", path, err)
	d.listing.Broken = append(d.listing.Broken, BrokenTemplate{Path: path, Err: err})
}

// walk visits dir in pre-order. A directory with a descriptor is a template, its
// subdirectories are walked too. Hidden directories are not walked.
func (d *discoverer) walk(dir string) {
	realPath, err := filepath.EvalSymlinks(dir)
	if err != nil {
		d.broken(dir, errs.Wrap(errs.IOError, err, "failed to resolve directory"))
		return
	}
	if d.visited[realPath] {
		log.Debugf("Skipping %s: %s is already visited", dir, realPath)
		return
	}
	d.visited[realPath] = true

	descriptorPath, err := manifest.FindDescriptorFile(dir)
	if err != nil {
		d.broken(dir, err)
	} else if descriptorPath != "" {
		descriptor, err := manifest.LoadFile(descriptorPath)
		if err != nil {
			d.broken(dir, err)
		} else {
			d.listing.Templates = append(d.listing.Templates, newTemplate(dir, descriptor))
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		d.broken(dir, errs.Wrap(errs.IOError, err, "failed to read directory"))
		return
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.Type()&os.ModeSymlink != 0 {
			stat, err := os.Stat(path)
			if err != nil || !stat.IsDir() {
				continue
			}
		} else if !entry.IsDir() {
			continue
		}
		d.walk(path)
	}
}

func (d *discoverer) walkRoot(root string) {
	stat, err := os.Stat(root)
	if err != nil {
		d.broken(root, errs.Wrap(errs.IOError, err, "registered root is not available"))
		return
	}
	if !stat.IsDir() {
		d.broken(root, errs.New(errs.IOError, "registered root is not a directory"))
		return
	}
	d.walk(root)
}

func (d *discoverer) result() Listing {
	sort.SliceStable(d.listing.Templates, func(i, j int) bool {
		a, b := d.listing.Templates[i], d.listing.Templates[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Path < b.Path
	})
	return d.listing
}

func newTemplate(dir string, descriptor *manifest.Descriptor) Template {
	name := descriptor.Name
	if name == "" {
		name = filepath.Base(dir)
	}
	return Template{Name: name, Path: dir, Descriptor: descriptor}
}

// Discover finds templates in a single root directory.
func Discover(root string) (Listing, error) {
	absRoot, err := normalize(root)
	if err != nil {
		return Listing{}, err
	}
	d := newDiscoverer()
	d.walkRoot(absRoot)
	return d.result(), nil
}

// List finds templates in all registered roots. Problems are reported in
// Listing.Broken, they do not stop the discovery.
func (registry *Registry) List() Listing {
	d := newDiscoverer()
	for _, root := range registry.roots {
		d.walkRoot(root)
	}
	return d.result()
}

// Resolve finds the template by name.
func (registry *Registry) Resolve(name string) (Template, error) {
	listing := registry.List()
	var matches []Template
	loaded := map[string]bool{}
	for _, template := range listing.Templates {
		loaded[template.Path] = true
		if template.Name == name {
			matches = append(matches, template)
		}
	}
	// A broken template has no name, its directory name is the best guess.
	var broken []BrokenTemplate
	for _, candidate := range listing.Broken {
		if !loaded[candidate.Path] && filepath.Base(candidate.Path) == name {
			broken = append(broken, candidate)
		}
	}

	switch {
	case len(matches) == 0 && len(broken) == 0:
		return Template{}, errs.New(errs.NotFound, "template %q is not found", name)
	case len(matches) == 1 && len(broken) == 0:
		return matches[0], nil
	case len(matches) == 0 && len(broken) == 1:
		return Template{}, broken[0].Err
	}
	paths := make([]string, 0, len(matches)+len(broken))
	for _, template := range matches {
		paths = append(paths, template.Path)
	}
	for _, candidate := range broken {
		paths = append(paths, candidate.Path)
	}
	return Template{}, errs.New(errs.Ambiguous, "template name %q is ambiguous: %s",
		name, formatPaths(paths))
}

func formatPaths(paths []string) string {
	quoted := make([]string, 0, len(paths))
	for _, path := range paths {
		quoted = append(quoted, fmt.Sprintf("%q", path))
	}
	return strings.Join(quoted, ", ")
}
