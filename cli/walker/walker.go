// Package walker reproduces a template tree at a destination substituting answers
// into entry names and marked file contents.
package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/interpolate"
	"github.com/stampcli/stamp/cli/manifest"
	"github.com/stampcli/stamp/cli/render"
)

// Walker renders template trees.
type Walker struct {
	// Renderer renders marked file contents.
	Renderer render.Renderer
}

// NewWalker creates a walker with the default renderer.
func NewWalker() Walker {
	return Walker{Renderer: render.NewRenderer()}
}

// walkState is a state of a single Render call.
type walkState struct {
	srcRoot string
	dstRoot string
	values  answers.Map
	// visited contains real paths of the walked directories.
	visited map[string]bool
}

// Render walks srcRoot in pre-order and reproduces every entry in dstRoot. The
// destination root may exist, any other destination entry must not. The walk
// stops on the first error leaving already created entries in place.
func (walker Walker) Render(srcRoot, dstRoot string, values answers.Map) error {
	stat, err := os.Stat(srcRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errs.Wrap(errs.NotFound, err, "template directory is not found")
		}
		return errs.Wrap(errs.IOError, err, "failed to access template directory")
	}
	if !stat.IsDir() {
		return errs.New(errs.NotFound, "%s is not a directory", srcRoot)
	}

	realRoot, err := filepath.EvalSymlinks(srcRoot)
	if err != nil {
		return errs.Wrap(errs.IOError, err, "failed to resolve %s", srcRoot)
	}

	if err := os.MkdirAll(dstRoot, 0o755); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to create destination directory")
	}

	state := walkState{
		srcRoot: srcRoot,
		dstRoot: dstRoot,
		values:  values,
		visited: map[string]bool{realRoot: true},
	}
	return walker.walkDir(&state, "")
}

// walkDir renders entries of the source directory relDir in lexical order.
func (walker Walker) walkDir(state *walkState, relDir string) error {
	srcDir := filepath.Join(state.srcRoot, relDir)
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return errs.Wrap(errs.IOError, err, "failed to read directory")
	}

	for _, entry := range entries {
		if relDir == "" && isDescriptorName(entry.Name()) {
			continue
		}
		relPath := filepath.Join(relDir, entry.Name())
		srcPath := filepath.Join(state.srcRoot, relPath)

		// Symlinks are followed.
		info, err := os.Stat(srcPath)
		if err != nil {
			return errs.Wrap(errs.IOError, err, "failed to access %s", srcPath)
		}

		switch {
		case info.IsDir():
			realPath, err := filepath.EvalSymlinks(srcPath)
			if err != nil {
				return errs.Wrap(errs.IOError, err, "failed to resolve %s", srcPath)
			}
			if state.visited[realPath] {
				log.Debugf("Skipping %s: %s is already visited", srcPath, realPath)
				continue
			}
			state.visited[realPath] = true

			if err := walker.createDir(state, relPath, info.Mode().Perm()); err != nil {
				return err
			}
			if err := walker.walkDir(state, relPath); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := walker.renderFile(state, relPath, info.Mode().Perm()); err != nil {
				return err
			}
		default:
			log.Warnf("Skipping %s: not a regular file or directory", srcPath)
		}
	}
	return nil
}

func isDescriptorName(name string) bool {
	for _, descriptorName := range manifest.DescriptorNames {
		if name == descriptorName {
			return true
		}
	}
	return false
}

func (walker Walker) createDir(state *walkState, relPath string, perm fs.FileMode) error {
	dstRel, err := interpolate.Path(relPath, state.values)
	if err != nil {
		return err
	}
	dstPath := filepath.Join(state.dstRoot, dstRel)
	log.Debugf("Creating directory %s", dstPath)

	if err := os.Mkdir(dstPath, perm|0o700); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errs.Wrap(errs.AlreadyExists, err, "cannot create directory")
		}
		return errs.Wrap(errs.IOError, err, "cannot create directory")
	}
	if err := os.Chmod(dstPath, perm); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to set %s permissions", dstPath)
	}
	return nil
}

func (walker Walker) renderFile(state *walkState, relPath string, perm fs.FileMode) error {
	srcPath := filepath.Join(state.srcRoot, relPath)
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return errs.Wrap(errs.IOError, err, "failed to read template file")
	}

	content, outName, err := walker.Renderer.Render(content, filepath.Base(relPath),
		state.values)
	if err != nil {
		return err
	}

	dstRel, err := interpolate.Path(filepath.Join(filepath.Dir(relPath), outName),
		state.values)
	if err != nil {
		return err
	}
	dstPath := filepath.Join(state.dstRoot, dstRel)
	log.Debugf("Writing %s", dstPath)

	if err := writeNewFile(dstPath, content, perm); err != nil {
		return err
	}
	return nil
}

// writeNewFile creates the file and writes content. The file must not exist.
func writeNewFile(fileName string, content []byte, perm fs.FileMode) error {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm|0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errs.Wrap(errs.AlreadyExists, err, "cannot create file")
		}
		return errs.Wrap(errs.IOError, err, "cannot create file")
	}
	if _, err := file.Write(content); err != nil {
		file.Close()
		return errs.Wrap(errs.IOError, err, "failed to write %s", fileName)
	}
	if err := file.Close(); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to write %s", fileName)
	}
	if err := os.Chmod(fileName, perm); err != nil {
		return errs.Wrap(errs.IOError, err, "failed to set %s permissions", fileName)
	}
	return nil
}
