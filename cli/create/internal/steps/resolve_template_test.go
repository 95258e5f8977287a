package steps

import (
	"os"
	"path/filepath"
	"testing"

	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stampcli/stamp/cli/errs"
	"github.com/stampcli/stamp/cli/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTemplateBySourceDir(t *testing.T) {
	templatePath := t.TempDir()
	createCtx := create_ctx.CreateCtx{SourceDir: templatePath}
	templateCtx := NewTemplateContext()

	require.NoError(t, ResolveTemplate{}.Run(&createCtx, &templateCtx))
	assert.Equal(t, templatePath, templateCtx.TemplatePath)

	createCtx.SourceDir = filepath.Join(templatePath, "missing")
	err := ResolveTemplate{}.Run(&createCtx, &templateCtx)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestResolveTemplateByName(t *testing.T) {
	root := t.TempDir()
	templatePath := filepath.Join(root, "crate")
	require.NoError(t, os.Mkdir(templatePath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templatePath, "stamp.yaml"), nil, 0o644))

	registryPath := filepath.Join(t.TempDir(), "registry.yaml")
	reg, err := registry.Open(registryPath)
	require.NoError(t, err)
	_, err = reg.Add(root)
	require.NoError(t, err)

	createCtx := create_ctx.CreateCtx{TemplateName: "crate", RegistryPath: registryPath}
	templateCtx := NewTemplateContext()
	require.NoError(t, ResolveTemplate{}.Run(&createCtx, &templateCtx))
	assert.Equal(t, templatePath, templateCtx.TemplatePath)

	createCtx.TemplateName = "other"
	err = ResolveTemplate{}.Run(&createCtx, &templateCtx)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestLoadDescriptor(t *testing.T) {
	templatePath := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templatePath, "stamp.yaml"),
		[]byte("meta: {name: crate, requires: '>= 2.0'}\n"), 0o644))
	templateCtx := NewTemplateContext()
	templateCtx.TemplatePath = templatePath

	err := LoadDescriptor{Version: "1.0.0"}.Run(&create_ctx.CreateCtx{}, &templateCtx)
	assert.ErrorIs(t, err, errs.InvalidDescriptor)

	require.NoError(t, LoadDescriptor{Version: "2.1.0"}.Run(&create_ctx.CreateCtx{},
		&templateCtx))
	assert.Equal(t, "crate", templateCtx.Descriptor.Name)
}
