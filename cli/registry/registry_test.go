package registry

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stampcli/stamp/cli/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemplate creates a template directory with the descriptor content.
func writeTemplate(t *testing.T, dir, descriptor string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stamp.yaml"), []byte(descriptor),
		0o644))
}

func templateNames(listing Listing) []string {
	names := []string{}
	for _, template := range listing.Templates {
		names = append(names, template.Name)
	}
	return names
}

func TestOpenMissingFile(t *testing.T) {
	registry, err := Open(filepath.Join(t.TempDir(), "registry.yaml"))
	require.NoError(t, err)
	assert.Empty(t, registry.Roots())
}

func TestOpenCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roots: [\n"), 0o644))
	_, err := Open(path)
	assert.ErrorIs(t, err, errs.IOError)

	require.NoError(t, os.WriteFile(path, []byte("roots: [relative/path]\n"), 0o644))
	_, err = Open(path)
	assert.ErrorIs(t, err, errs.IOError)
}

func TestAddIsIdempotent(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "cfg", "registry.yaml")
	root := t.TempDir()

	registry, err := Open(registryPath)
	require.NoError(t, err)

	added, err := registry.Add(root)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = registry.Add(filepath.Join(root, "sub", ".."))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{root}, registry.Roots())

	// State is persisted.
	reopened, err := Open(registryPath)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, reopened.Roots())

	added, err = reopened.Add(root)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{root}, reopened.Roots())
}

func TestAddRelativePath(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	require.NoError(t, os.Mkdir("templates", 0o755))
	registry, err := Open(filepath.Join(root, "registry.yaml"))
	require.NoError(t, err)
	_, err = registry.Add("templates")
	require.NoError(t, err)

	expected, err := filepath.Abs("templates")
	require.NoError(t, err)
	assert.Equal(t, []string{expected}, registry.Roots())
}

func TestAddNotFound(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "registry.yaml")
	registry, err := Open(registryPath)
	require.NoError(t, err)

	_, err = registry.Add(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, errs.NotFound)
	assert.NoFileExists(t, registryPath)
}

func TestRemove(t *testing.T) {
	registryPath := filepath.Join(t.TempDir(), "registry.yaml")
	first, second := t.TempDir(), t.TempDir()

	registry, err := Open(registryPath)
	require.NoError(t, err)
	for _, root := range []string{first, second} {
		_, err = registry.Add(root)
		require.NoError(t, err)
	}

	require.NoError(t, registry.Remove(first))
	assert.Equal(t, []string{second}, registry.Roots())

	err = registry.Remove(first)
	assert.ErrorIs(t, err, errs.NotFound)

	reopened, err := Open(registryPath)
	require.NoError(t, err)
	assert.Equal(t, []string{second}, reopened.Roots())

	// Removed directory can be unregistered.
	require.NoError(t, os.RemoveAll(second))
	require.NoError(t, reopened.Remove(second))
	assert.Empty(t, reopened.Roots())
}

func TestListDiscoversTemplates(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, filepath.Join(root, "rust", "axum"), "meta: {name: axum_server}\n")
	writeTemplate(t, filepath.Join(root, "rust", "cli"), "")
	// Nested template inside a template.
	writeTemplate(t, filepath.Join(root, "rust", "cli", "examples", "plugin"),
		"meta: {description: CLI plugin}\n")
	// No descriptor: not a template.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "go", "plain"), 0o755))
	// Hidden directories are skipped.
	writeTemplate(t, filepath.Join(root, ".git", "hidden"), "")

	registry, err := Open(filepath.Join(t.TempDir(), "registry.yaml"))
	require.NoError(t, err)
	_, err = registry.Add(root)
	require.NoError(t, err)
	_, err = registry.Add(root)
	require.NoError(t, err)

	listing := registry.List()
	assert.Empty(t, listing.Broken)
	assert.Equal(t, []string{"axum_server", "cli", "plugin"}, templateNames(listing))
	assert.Equal(t, filepath.Join(root, "rust", "axum"), listing.Templates[0].Path)
	assert.Equal(t, "CLI plugin", listing.Templates[2].Descriptor.Description)
}

func TestListBrokenTemplates(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, filepath.Join(root, "good"), "")
	writeTemplate(t, filepath.Join(root, "bad"), "questions: {not: a list}\n")
	writeTemplate(t, filepath.Join(root, "bad", "inner"), "")

	registry, err := Open(filepath.Join(t.TempDir(), "registry.yaml"))
	require.NoError(t, err)
	_, err = registry.Add(root)
	require.NoError(t, err)
	missing := t.TempDir()
	_, err = registry.Add(missing)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(missing))

	listing := registry.List()
	assert.Equal(t, []string{"good", "inner"}, templateNames(listing))
	require.Len(t, listing.Broken, 2)
	assert.Equal(t, filepath.Join(root, "bad"), listing.Broken[0].Path)
	assert.ErrorIs(t, listing.Broken[0].Err, errs.InvalidDescriptor)
	assert.Equal(t, missing, listing.Broken[1].Path)
	assert.ErrorIs(t, listing.Broken[1].Err, errs.IOError)
}

func TestListSymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks are not supported")
	}
	root := t.TempDir()
	writeTemplate(t, filepath.Join(root, "a"), "")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "a", "loop")))
	require.NoError(t, os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "alias")))

	registry, err := Open(filepath.Join(t.TempDir(), "registry.yaml"))
	require.NoError(t, err)
	_, err = registry.Add(root)
	require.NoError(t, err)

	listing := registry.List()
	assert.Empty(t, listing.Broken)
	assert.Equal(t, []string{"a"}, templateNames(listing))
}

func TestResolve(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeTemplate(t, filepath.Join(first, "web"), "")
	writeTemplate(t, filepath.Join(first, "lib"), "")
	writeTemplate(t, filepath.Join(second, "library"), "meta: {name: lib}\n")
	writeTemplate(t, filepath.Join(second, "svc"), "")

	registry, err := Open(filepath.Join(t.TempDir(), "registry.yaml"))
	require.NoError(t, err)
	for _, root := range []string{first, second} {
		_, err = registry.Add(root)
		require.NoError(t, err)
	}

	template, err := registry.Resolve("web")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "web"), template.Path)

	_, err = registry.Resolve("missing")
	assert.ErrorIs(t, err, errs.NotFound)

	_, err = registry.Resolve("lib")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.Ambiguous)
	assert.Contains(t, err.Error(), filepath.Join(first, "lib"))
	assert.Contains(t, err.Error(), filepath.Join(second, "library"))
}

func TestResolveBroken(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, filepath.Join(root, "broken"), `questions:
  - type: select
    id: license
    prompt: License
    options: [MIT, Apache-2.0]
    default: GPL
`)
	writeTemplate(t, filepath.Join(root, "web"), "")
	writeTemplate(t, filepath.Join(root, "other"), "meta: {name: web}\n")
	writeTemplate(t, filepath.Join(root, "other", "web"), "questions: [{type: bogus}]\n")

	registry, err := Open(filepath.Join(t.TempDir(), "registry.yaml"))
	require.NoError(t, err)
	_, err = registry.Add(root)
	require.NoError(t, err)

	_, err = registry.Resolve("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.InvalidDescriptor)
	assert.Equal(t, 4, errs.KindOf(err).ExitCode())

	_, err = registry.Resolve("web")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.Ambiguous)
	assert.Contains(t, err.Error(), filepath.Join(root, "web"))
	assert.Contains(t, err.Error(), filepath.Join(root, "other", "web"))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	listing, err := Discover(root)
	require.NoError(t, err)
	assert.Empty(t, listing.Templates)

	writeTemplate(t, filepath.Join(root, "tpl"), "")
	listing, err = Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"tpl"}, templateNames(listing))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
