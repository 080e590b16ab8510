package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/config"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectFileName), []byte(content), domain.FilePerm))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "App")
	writeManifest(t, dir, `name: App
version: 2.1.0
webroot: wwwroot
dependencies:
  Zeta: "1.0"
  Alpha: "[2.0, 3.0)"
  Lib:
frameworks:
  dnx451:
    dependencies:
      Desktop.Only: "1.0"
  dnxcore50: {}
scripts:
  prepare: echo prepare
  postbundle:
    - echo one
    - echo two
bundleExclude:
  - "**/*.tmp"
`)

	loader := config.NewLoader(nil)
	project, warnings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "App", project.Name)
	assert.Equal(t, "2.1.0", project.Version)
	assert.Equal(t, dir, project.Directory)
	assert.Equal(t, "wwwroot", project.WebRoot)
	assert.Equal(t, []domain.Dependency{
		{Name: "Zeta", Range: domain.AtLeast("1.0")},
		{Name: "Alpha", Range: domain.MustParseVersionRange("[2.0, 3.0)")},
		{Name: "Lib", Range: domain.AnyVersion},
	}, project.Dependencies)
	assert.Equal(t, []domain.TargetPlatform{
		domain.MustParsePlatform("dnx451"),
		domain.MustParsePlatform("dnxcore50"),
	}, project.TargetPlatforms())
	assert.Equal(t, []domain.Dependency{{Name: "Desktop.Only", Range: domain.AtLeast("1.0")}}, project.Platforms[0].Dependencies)
	assert.Equal(t, []string{"echo prepare"}, project.Scripts[domain.HookPrepare])
	assert.Equal(t, []string{"echo one", "echo two"}, project.Scripts[domain.HookPostBundle])
	assert.Equal(t, []string{"**/*.tmp"}, project.BundleExclude)
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "MyProject")
	writeManifest(t, dir, "")

	project, _, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "MyProject", project.Name)
	assert.Equal(t, config.DefaultProjectVersion, project.Version)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, `name: App
compilationOptions:
  optimize: true
frameworks:
  dnx451:
    frameworkAssemblies: {}
`)

	_, warnings, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)
	require.Len(t, warnings, 2)

	assert.Equal(t, `unknown property "compilationOptions"`, warnings[0].Message)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Equal(t, 1, warnings[0].Column)
	assert.Equal(t, filepath.Join(dir, domain.ProjectFileName), warnings[0].Path)

	assert.Equal(t, `unknown framework property "frameworkAssemblies"`, warnings[1].Message)
	assert.Equal(t, 6, warnings[1].Line)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()
		_, _, err := config.NewLoader(nil).Load(t.TempDir())
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "name: [unclosed")
		_, _, err := config.NewLoader(nil).Load(dir)
		assert.ErrorIs(t, err, domain.ErrProjectParseFailed)
	})

	t.Run("invalid range", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "dependencies:\n  Foo: \"[2.0\"\n")
		_, _, err := config.NewLoader(nil).Load(dir)
		assert.ErrorIs(t, err, domain.ErrProjectParseFailed)
	})

	t.Run("invalid framework", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "frameworks:\n  \"45\": {}\n")
		_, _, err := config.NewLoader(nil).Load(dir)
		assert.ErrorIs(t, err, domain.ErrProjectParseFailed)
	})
}

func TestResolver_FindProject(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "src", "Lib"), "version: 3.0.0\n")
	writeManifest(t, filepath.Join(root, "Broken"), "name: [\n")

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	resolver := config.NewLoader(log).Resolver(root)

	lib, ok := resolver.FindProject("Lib")
	require.True(t, ok)
	assert.Equal(t, "Lib", lib.Name)
	assert.Equal(t, "3.0.0", lib.Version)

	again, ok := resolver.FindProject("lib")
	require.True(t, ok)
	assert.Same(t, lib, again)

	_, ok = resolver.FindProject("Missing")
	assert.False(t, ok)

	_, ok = resolver.FindProject("Broken")
	assert.False(t, ok)
	_, ok = resolver.FindProject("Broken")
	assert.False(t, ok)
}
