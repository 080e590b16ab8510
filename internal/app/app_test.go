package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/telemetry"
	"go.trai.ch/bundle/internal/app"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/core/ports/mocks"
	"go.trai.ch/bundle/internal/engine/lockfile"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const packagesDir = "/pkgs"

var (
	dnx451    = domain.MustParsePlatform("dnx451")
	dnxcore50 = domain.MustParsePlatform("dnxcore50")
)

type harness struct {
	ctrl     *gomock.Controller
	loader   *mocks.MockProjectLoader
	resolver *mocks.MockProjectResolver
	repos    *mocks.MockPackageRepositoryFactory
	repo     *mocks.MockPackageRepository
	locator  *mocks.MockRuntimeLocator
	hooks    *mocks.MockHookRunner
	hasher   *mocks.MockHasher
	emitter  *mocks.MockEmitter
	native   *mocks.MockNativeImageGenerator
	log      *mocks.MockLogger
	app      *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		ctrl:     ctrl,
		loader:   mocks.NewMockProjectLoader(ctrl),
		resolver: mocks.NewMockProjectResolver(ctrl),
		repos:    mocks.NewMockPackageRepositoryFactory(ctrl),
		repo:     mocks.NewMockPackageRepository(ctrl),
		locator:  mocks.NewMockRuntimeLocator(ctrl),
		hooks:    mocks.NewMockHookRunner(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		emitter:  mocks.NewMockEmitter(ctrl),
		native:   mocks.NewMockNativeImageGenerator(ctrl),
		log:      mocks.NewMockLogger(ctrl),
	}
	h.app = app.New(
		h.loader,
		h.repos,
		h.locator,
		h.hooks,
		lockfile.NewBuilder(h.hasher),
		h.emitter,
		h.native,
		telemetry.NewNoOp(),
		h.log,
	)
	return h
}

// project returns a project in a temporary directory and makes the loader return it.
func (h *harness) project(t *testing.T, p *domain.Project) *domain.Project {
	t.Helper()
	if p.Directory == "" {
		p.Directory = filepath.Join(t.TempDir(), p.Name)
		require.NoError(t, os.MkdirAll(p.Directory, domain.DirPerm))
	}
	if p.Version == "" {
		p.Version = "1.0.0"
	}
	h.loader.EXPECT().Load(p.Directory).Return(p, nil, nil).AnyTimes()
	return p
}

// expectWalk allows the resolution stage to reach the repository.
func (h *harness) expectWalk(project *domain.Project) {
	h.repos.EXPECT().Open(packagesDir).Return(h.repo, nil)
	h.repo.EXPECT().Root().Return(packagesDir).AnyTimes()
	h.loader.EXPECT().Resolver(filepath.Dir(project.Directory)).Return(h.resolver)
	h.resolver.EXPECT().FindProject(gomock.Any()).Return(nil, false).AnyTimes()
	h.hasher.EXPECT().ComputeIntegrity(gomock.Any(), gomock.Any()).Return("sha", nil).AnyTimes()
}

func (h *harness) expectHooks(stages ...domain.HookStage) {
	calls := make([]any, 0, len(stages))
	for _, s := range stages {
		calls = append(calls, h.hooks.EXPECT().Execute(gomock.Any(), gomock.Any(), s, gomock.Any()).Return(nil))
	}
	gomock.InOrder(calls...)
}

func (h *harness) allowLogs() {
	h.log.EXPECT().Verbose(gomock.Any()).AnyTimes()
	h.log.EXPECT().Info(gomock.Any()).AnyTimes()
}

func (h *harness) pkg(name, version string, deps ...domain.Dependency) *mocks.MockPackageContent {
	p := mocks.NewMockPackageContent(h.ctrl)
	p.EXPECT().Identity().Return(domain.NewLibraryIdentity(name, version)).AnyTimes()
	p.EXPECT().Path().Return(filepath.Join(packagesDir, name, version)).AnyTimes()
	p.EXPECT().Files().Return([]string{"lib/net45/" + name + ".dll"}, nil).AnyTimes()
	p.EXPECT().Assets().Return(&domain.PackageAssetSet{
		DependencySets:     []domain.Variant[[]domain.Dependency]{{Platform: domain.AnyPlatform, Items: deps}},
		AssemblyReferences: []domain.Variant[[]string]{{Platform: domain.MustParsePlatform("net45"), Items: []string{"lib/net45/" + name + ".dll"}}},
	}, nil).AnyTimes()
	return p
}

func dep(name, versions string) domain.Dependency {
	return domain.Dependency{Name: name, Range: domain.MustParseVersionRange(versions)}
}

func stageOf(t *testing.T, err error) domain.Stage {
	t.Helper()
	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	return stageErr.Stage
}

func TestApp_Bundle_EndToEnd(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	project := h.project(t, &domain.Project{
		Name:         "P",
		Dependencies: []domain.Dependency{dep("C", "2.0")},
		Platforms:    []domain.ProjectPlatform{{Platform: dnx451}},
	})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle, domain.HookPostBundle)
	h.repo.EXPECT().FindPackage(gomock.Any(), "C", dep("C", "2.0").Range).Return(h.pkg("C", "2.0.0"), nil)

	var emitted *domain.BundleRoot
	h.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, root *domain.BundleRoot, lock *domain.LockFile) error {
			emitted = root
			return nil
		})

	summary, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
	})
	require.NoError(t, err)
	assert.True(t, summary.Success())

	require.NotNil(t, summary.LockFile)
	require.Len(t, summary.LockFile.Libraries, 1)
	lib := summary.LockFile.Libraries[0]
	assert.Equal(t, "C", lib.Name)
	assert.Equal(t, "2.0.0", lib.Version)
	assert.Equal(t, "sha", lib.Sha)
	require.Len(t, lib.FrameworkGroups, 1)
	assert.Equal(t, dnx451, lib.FrameworkGroups[0].TargetPlatform)
	assert.Equal(t, []string{"lib/net45/C.dll"}, lib.FrameworkGroups[0].RuntimeAssemblies)

	require.Same(t, summary.Root, emitted)
	assert.Equal(t, domain.DefaultOutputPath(project.Directory), emitted.OutputPath)
	require.Len(t, emitted.Packages, 1)
	assert.Equal(t, domain.NewLibraryIdentity("C", "2.0.0"), emitted.Packages[0].Library.Identity)
	assert.Equal(t, []domain.TargetPlatform{dnx451}, emitted.Packages[0].Platforms)
	require.Len(t, emitted.Projects, 1)
	assert.Equal(t, "P", emitted.Projects[0].Project.Name)
	require.Len(t, emitted.Contexts, 1)
	assert.Len(t, emitted.LibraryDependencyContexts[domain.NewLibraryIdentity("C", "2.0.0")], 1)
}

func TestApp_Bundle_PartialFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{
		Name:         "P",
		Dependencies: []domain.Dependency{dep("C", "1.0"), dep("Missing", "2.0")},
		Platforms:    []domain.ProjectPlatform{{Platform: dnx451}, {Platform: dnxcore50}},
	})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle, domain.HookPostBundle)

	c := h.pkg("C", "1.0.0")
	h.repo.EXPECT().FindPackage(gomock.Any(), "C", gomock.Any()).Return(c, nil).Times(2)
	h.repo.EXPECT().FindPackage(gomock.Any(), "Missing", gomock.Any()).Return(nil, nil).Times(2)

	h.log.EXPECT().Quiet(
		"Warning: Failed to resolve the following dependencies for target platform 'dnx451':\n   Missing 2.0")
	h.log.EXPECT().Quiet(
		"Warning: Failed to resolve the following dependencies for target platform 'dnxcore50':\n   Missing 2.0")
	h.allowLogs()

	var lock *domain.LockFile
	h.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.BundleRoot, l *domain.LockFile) error {
			lock = l
			return nil
		})

	summary, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
	})
	require.NoError(t, err)
	assert.False(t, summary.Success())

	require.NotNil(t, lock)
	require.Len(t, lock.Libraries, 1)
	groups := lock.Libraries[0].FrameworkGroups
	require.Len(t, groups, 2)
	assert.Equal(t, dnx451, groups[0].TargetPlatform)
	assert.Equal(t, dnxcore50, groups[1].TargetPlatform)
}

func TestApp_Bundle_DefaultPlatform(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	project := h.project(t, &domain.Project{Name: "P"})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle, domain.HookPostBundle)
	h.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summary, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
		OutputPath:  filepath.Join(t.TempDir(), "out"),
	})
	require.NoError(t, err)
	require.Len(t, summary.Root.Contexts, 1)
	assert.Equal(t, dnx451, summary.Root.Contexts[0].Platform())
	assert.Empty(t, summary.LockFile.Libraries)
}

func TestApp_Bundle_AppRootFailFast(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{Name: "P", WebRoot: "wwwroot"})
	require.NoError(t, os.MkdirAll(filepath.Join(project.Directory, "wwwroot"), domain.DirPerm))

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir: project.Directory,
		WebRootOut: "APPROOT",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Equal(t, domain.StageValidate, stageOf(t, err))
	assert.Contains(t, err.Error(), "'approot' is a reserved folder name")
}

func TestApp_Bundle_ManifestMissing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	dir := t.TempDir()
	h.loader.EXPECT().Load(dir).Return(nil, nil, zerr.Wrap(domain.ErrProjectNotFound, "no project.yaml found"))

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{ProjectDir: dir})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Equal(t, domain.StageValidate, stageOf(t, err))
}

func TestApp_Bundle_ManifestWarningsReported(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	dir := t.TempDir()
	project := &domain.Project{Name: "P", Version: "1.0.0", Directory: dir}
	h.loader.EXPECT().Load(dir).Return(project, []domain.FileFormatWarning{{Message: `unknown property "x"`, Line: 3}}, nil)
	h.log.EXPECT().Info(`Warning: At line 3 - unknown property "x"`)

	results := h.app.Validate(app.BundleOptions{ProjectDir: dir})
	require.Len(t, results, 4)
	for _, r := range results {
		assert.NoError(t, r.Err, r.Name)
	}
}

func TestApp_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		webRoot   string
		makeDir   bool
		opts      app.BundleOptions
		failing   string
		wantCount int
	}{
		{
			name:      "web root output without web root",
			opts:      app.BundleOptions{WebRootOut: "public"},
			failing:   "web root output requires a web root",
			wantCount: 2,
		},
		{
			name:      "web root missing on disk",
			opts:      app.BundleOptions{WebRoot: "wwwroot"},
			failing:   "web root exists",
			wantCount: 3,
		},
		{
			name:      "override collides with app root",
			webRoot:   "wwwroot",
			makeDir:   true,
			opts:      app.BundleOptions{WebRootOut: "ApPrOoT/"},
			failing:   "web root output is not reserved",
			wantCount: 4,
		},
		{
			name:      "web root defaults output name",
			webRoot:   "wwwroot",
			makeDir:   true,
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t)
			project := h.project(t, &domain.Project{Name: "P", WebRoot: tt.webRoot})
			if tt.makeDir {
				require.NoError(t, os.MkdirAll(filepath.Join(project.Directory, tt.webRoot), domain.DirPerm))
			}
			tt.opts.ProjectDir = project.Directory

			results := h.app.Validate(tt.opts)
			require.Len(t, results, tt.wantCount)
			last := results[len(results)-1]
			if tt.failing == "" {
				assert.NoError(t, last.Err)
				return
			}
			assert.Equal(t, tt.failing, last.Name)
			assert.ErrorIs(t, last.Err, domain.ErrConfiguration)
		})
	}
}

func TestApp_Bundle_ActiveRuntimeUnknown(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{Name: "P", Platforms: []domain.ProjectPlatform{{Platform: dnx451}}})
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.locator.EXPECT().ActiveRuntime().Return("", false)

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir: project.Directory,
		Runtimes:   []string{"Active"},
	})
	assert.ErrorIs(t, err, domain.ErrRuntimeNotFound)
	assert.Equal(t, domain.StageResolveRuntimes, stageOf(t, err))
}

func TestApp_Bundle_ActiveRuntime(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	const active = "dnx-coreclr-win-x64.1.0.0"
	runtimeDir := filepath.Join("/runtimes", active)

	project := h.project(t, &domain.Project{
		Name:      "P",
		Platforms: []domain.ProjectPlatform{{Platform: dnx451}, {Platform: dnxcore50}},
	})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle, domain.HookPostBundle)
	h.locator.EXPECT().ActiveRuntime().Return(active, true)
	h.locator.EXPECT().Locate(active).Return(runtimeDir, nil)
	h.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summary, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		Runtimes:    []string{"active"},
		PackagesDir: packagesDir,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.BundleRuntime{{Name: active, Platform: dnxcore50, Path: runtimeDir}}, summary.Root.Runtimes)
	require.Len(t, summary.Root.Contexts, 1)
	assert.Equal(t, dnxcore50, summary.Root.Contexts[0].Platform())
}

func TestApp_Bundle_RuntimeNotFound(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{Name: "P", Platforms: []domain.ProjectPlatform{{Platform: dnx451}}})
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.locator.EXPECT().Locate("dnx-clr-win-x86.1.0.0").Return("", &domain.RuntimeNotFoundError{
		Name:   "dnx-clr-win-x86.1.0.0",
		Probed: []string{"dnx-clr-win-x86.1.0.0", "/home/.dnx/runtimes/dnx-clr-win-x86.1.0.0"},
	})

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir: project.Directory,
		Runtimes:   []string{"dnx-clr-win-x86.1.0.0"},
	})
	assert.ErrorIs(t, err, domain.ErrRuntimeNotFound)
	assert.Contains(t, err.Error(), "/home/.dnx/runtimes/dnx-clr-win-x86.1.0.0")
}

func TestApp_Bundle_PlatformMismatch(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{Name: "P", Platforms: []domain.ProjectPlatform{{Platform: dnx451}}})
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.locator.EXPECT().Locate("dnx-coreclr-win-x86.1.0.0").Return("/runtimes/dnx-coreclr-win-x86.1.0.0", nil)

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir: project.Directory,
		Runtimes:   []string{"dnx-coreclr-win-x86.1.0.0"},
	})
	assert.ErrorIs(t, err, domain.ErrPlatformMismatch)
	assert.Contains(t, err.Error(), "'dnxcore50' is not a target framework of the project being bundled")
}

func TestApp_Bundle_UnknownRuntimeFlavor(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{Name: "P", Platforms: []domain.ProjectPlatform{{Platform: dnx451}}})
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.locator.EXPECT().Locate("dnx-foo-win-x86.1.0.0").Return("/runtimes/dnx-foo-win-x86.1.0.0", nil)

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir: project.Directory,
		Runtimes:   []string{"dnx-foo-win-x86.1.0.0"},
	})
	assert.ErrorIs(t, err, domain.ErrPlatformMismatch)
	assert.Contains(t, err.Error(), "'dnx-foo-win-x86.1.0.0' is not a target framework of the project being bundled")
}

func TestApp_Bundle_HookFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	project := h.project(t, &domain.Project{Name: "P"})
	h.hooks.EXPECT().Execute(gomock.Any(), project, domain.HookPrepare, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Project, _ domain.HookStage, vars ports.VariableResolver) error {
			name, ok := vars("project:Name")
			assert.True(t, ok)
			assert.Equal(t, p.Name, name)
			out, ok := vars("bundle:OutputPath")
			assert.True(t, ok)
			assert.Equal(t, domain.DefaultOutputPath(p.Directory), out)
			_, ok = vars("project:Unknown")
			assert.False(t, ok)
			return zerr.Wrap(domain.ErrHookFailure, "'prepare' script failed: exit code 1")
		})

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{ProjectDir: project.Directory})
	assert.ErrorIs(t, err, domain.ErrHookFailure)
	assert.Equal(t, domain.StagePrepare, stageOf(t, err))
}

func TestApp_Bundle_NativeInitFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	project := h.project(t, &domain.Project{Name: "P"})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.native.EXPECT().Prepare(gomock.Any(), gomock.Any()).
		Return(zerr.Wrap(domain.ErrNativeImageFailure, "Fail to initiate native image generation process"))

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
		Native:      true,
	})
	assert.ErrorIs(t, err, domain.ErrNativeImageFailure)
	assert.Equal(t, domain.StageNativeInit, stageOf(t, err))
}

func TestApp_Bundle_Native(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	project := h.project(t, &domain.Project{Name: "P"})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle, domain.HookPostBundle)
	gomock.InOrder(
		h.native.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(nil),
		h.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		h.native.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil),
	)

	summary, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
		Native:      true,
	})
	require.NoError(t, err)
	assert.True(t, summary.Success())
}

func TestApp_Bundle_EmitFailure(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	project := h.project(t, &domain.Project{Name: "P"})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrOutputNotEmpty)

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
	})
	assert.ErrorIs(t, err, domain.ErrOutputNotEmpty)
	assert.Equal(t, domain.StageEmit, stageOf(t, err))
}

func TestApp_Bundle_WalkError(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.allowLogs()

	boom := errors.New("disk on fire")
	project := h.project(t, &domain.Project{
		Name:         "P",
		Dependencies: []domain.Dependency{dep("C", "1.0")},
	})
	h.expectWalk(project)
	h.expectHooks(domain.HookPrepare, domain.HookPreBundle)
	h.repo.EXPECT().FindPackage(gomock.Any(), "C", gomock.Any()).Return(nil, boom)

	_, err := h.app.Bundle(context.Background(), app.BundleOptions{
		ProjectDir:  project.Directory,
		PackagesDir: packagesDir,
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.StageResolvePlatforms, stageOf(t, err))
}
