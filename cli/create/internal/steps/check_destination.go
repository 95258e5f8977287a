package steps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/google/uuid"
	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/util"
)

// CheckDestination represents destination directory check step.
type CheckDestination struct {
}

// isWithin checks if path is dir or is inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Run checks the destination directory. In force mode the template is rendered
// next to the existing destination, see ReplaceDestination.
func (CheckDestination) Run(ctx *create_ctx.CreateCtx, templateCtx *TemplateCtx) error {
	if ctx.DestinationDir == "" {
		return fmt.Errorf("destination directory is not set")
	}
	dstPath, err := filepath.Abs(ctx.DestinationDir)
	if err != nil {
		return errs.Wrap(errs.IOError, err, "failed to get absolute path of %s",
			ctx.DestinationDir)
	}
	if isWithin(dstPath, templateCtx.TemplatePath) || isWithin(templateCtx.TemplatePath,
		dstPath) {
		return fmt.Errorf("destination %s and template %s directories overlap", dstPath,
			templateCtx.TemplatePath)
	}
	templateCtx.DestinationPath = dstPath
	templateCtx.RenderPath = dstPath

	stat, err := os.Stat(dstPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Infof("Creating %s", dstPath)
			return nil
		}
		return errs.Wrap(errs.IOError, err, "failed to access destination")
	}

	if ctx.Force {
		// Existing destination is replaced only after the template is rendered.
		templateCtx.RenderPath = filepath.Join(filepath.Dir(dstPath),
			fmt.Sprintf(".%s.stamp-%s", filepath.Base(dstPath), uuid.NewString()))
		log.Debugf("Rendering to %s", templateCtx.RenderPath)
		return nil
	}
	if !stat.IsDir() {
		return errs.New(errs.AlreadyExists, "destination %s exists and is not a directory",
			dstPath)
	}
	empty, err := util.IsEmptyDir(dstPath)
	if err != nil {
		return errs.Wrap(errs.IOError, err, "failed to read destination")
	}
	if !empty {
		log.Infof("Applying template to non-empty directory %s, existing files are kept",
			dstPath)
	}
	return nil
}
