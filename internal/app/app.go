// Package app implements the application layer for bundle.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/lockfile"
	"go.trai.ch/bundle/internal/engine/registry"
	"go.trai.ch/bundle/internal/engine/resolution"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader    ports.ProjectLoader
	repos     ports.PackageRepositoryFactory
	locator   ports.RuntimeLocator
	hooks     ports.HookRunner
	builder   *lockfile.Builder
	emitter   ports.Emitter
	native    ports.NativeImageGenerator
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	repos ports.PackageRepositoryFactory,
	locator ports.RuntimeLocator,
	hooks ports.HookRunner,
	builder *lockfile.Builder,
	emitter ports.Emitter,
	native ports.NativeImageGenerator,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		repos:     repos,
		locator:   locator,
		hooks:     hooks,
		builder:   builder,
		emitter:   emitter,
		native:    native,
		telemetry: telemetry,
		logger:    log,
	}
}

// BundleOptions configures one bundle run.
type BundleOptions struct {
	// ProjectDir is the project directory or the path of its manifest.
	ProjectDir string
	// OutputPath defaults to <project>/bin/output.
	OutputPath string
	// Runtimes are runtime names or paths; "active" names the current runtime.
	Runtimes []string
	// WebRoot overrides the manifest's webroot.
	WebRoot string
	// WebRootOut names the web root folder in the output. Defaults to the web root.
	WebRootOut    string
	Configuration string
	Overwrite     bool
	NoSource      bool
	Native        bool
	// PackagesDir defaults to $DNX_PACKAGES, then ~/.dnx/packages.
	PackagesDir string
}

// Summary is the outcome of a bundle run that reached the end of the pipeline.
type Summary struct {
	// Unresolved is set when any platform left a dependency unresolved.
	Unresolved bool
	LockFile   *domain.LockFile
	Root       *domain.BundleRoot
	Elapsed    time.Duration
}

// Success reports whether the run produced a complete bundle.
func (s *Summary) Success() bool {
	return s != nil && !s.Unresolved
}

// Bundle runs the pipeline: validate, the prepare and prebundle hooks, runtime
// resolution, one dependency walk per platform, merge, emit, the postbundle hook
// and optional native image generation. A fatal error is returned as a
// *domain.StageError and stops the pipeline. Unresolved dependencies are reported
// and the run continues; the summary then reports failure.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Bundle(ctx context.Context, opts BundleOptions) (*Summary, error) {
	var (
		v       *validated
		project *domain.Project
		started time.Time
	)

	err := a.stage(ctx, domain.StageValidate, func(_ context.Context) error {
		var err error
		v, err = a.validate(opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	project = v.project
	started = time.Now()

	vars := hookVariables(project, v.outputPath)
	for _, hook := range []struct {
		stage domain.Stage
		hook  domain.HookStage
	}{
		{domain.StagePrepare, domain.HookPrepare},
		{domain.StagePreBundle, domain.HookPreBundle},
	} {
		if err := a.stage(ctx, hook.stage, func(ctx context.Context) error {
			return a.hooks.Execute(ctx, project, hook.hook, vars)
		}); err != nil {
			return nil, err
		}
	}

	var runtimes []domain.BundleRuntime
	if err := a.stage(ctx, domain.StageResolveRuntimes, func(_ context.Context) error {
		var err error
		runtimes, err = a.resolveRuntimes(project, opts.Runtimes)
		return err
	}); err != nil {
		return nil, err
	}

	var reg *registry.Registry
	if err := a.stage(ctx, domain.StageResolvePlatforms, func(ctx context.Context) error {
		var err error
		reg, err = a.walkPlatforms(ctx, project, selectPlatforms(project, runtimes), a.packagesRoot(opts))
		return err
	}); err != nil {
		return nil, err
	}

	var root *domain.BundleRoot
	summary := &Summary{}
	if err := a.stage(ctx, domain.StageMerge, func(ctx context.Context) error {
		vertex, _ := ports.VertexFromContext(ctx)
		for _, rc := range reg.Contexts() {
			if !rc.HasUnresolved() {
				continue
			}
			summary.Unresolved = true
			warning := rc.MissingDependenciesWarning()
			a.logger.Quiet("Warning: " + warning)
			if vertex != nil {
				vertex.Log(domain.LogLevelQuiet, warning)
			}
		}
		root = a.bundleRoot(v, opts, runtimes, reg)
		return nil
	}); err != nil {
		return nil, err
	}
	summary.Root = root

	if opts.Native {
		if err := a.stage(ctx, domain.StageNativeInit, func(ctx context.Context) error {
			return a.native.Prepare(ctx, root)
		}); err != nil {
			return nil, err
		}
	}

	if err := a.stage(ctx, domain.StageEmit, func(ctx context.Context) error {
		lock, err := a.builder.Build(ctx, reg)
		if err != nil {
			return err
		}
		summary.LockFile = lock
		return a.emitter.Emit(ctx, root, lock)
	}); err != nil {
		return nil, err
	}

	if err := a.stage(ctx, domain.StagePostBundle, func(ctx context.Context) error {
		return a.hooks.Execute(ctx, project, domain.HookPostBundle, vars)
	}); err != nil {
		return nil, err
	}

	if opts.Native {
		if err := a.stage(ctx, domain.StageNativeImage, func(ctx context.Context) error {
			return a.native.Generate(ctx, root)
		}); err != nil {
			return nil, err
		}
	}

	summary.Elapsed = time.Since(started)
	a.logger.Info(fmt.Sprintf("Time elapsed %s", summary.Elapsed))
	return summary, nil
}

// stage runs fn inside a telemetry vertex and tags its error with the stage.
func (a *App) stage(ctx context.Context, stage domain.Stage, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, string(stage))
	err := fn(ctx)
	vertex.Complete(err)
	if err != nil {
		return &domain.StageError{Stage: stage, Err: err}
	}
	return nil
}

// walkPlatforms walks every platform concurrently, then registers the results
// in platform order.
func (a *App) walkPlatforms(ctx context.Context, project *domain.Project, platforms []domain.TargetPlatform, packagesRoot string) (*registry.Registry, error) {
	repo, err := a.repos.Open(packagesRoot)
	if err != nil {
		return nil, err
	}
	walker := resolution.NewWalker(repo, a.loader.Resolver(filepath.Dir(project.Directory)))

	results := make([]*resolution.Result, len(platforms))
	g, gctx := errgroup.WithContext(ctx)
	for i, platform := range platforms {
		g.Go(func() error {
			res, err := walker.Walk(gctx, platform, project)
			if err != nil {
				return zerr.With(err, "platform", platform.String())
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, res := range results {
		a.logger.Verbose(fmt.Sprintf("Resolved %d libraries for %s", res.Context.Len(), res.Context.Platform()))
		reg.Register(res)
	}
	return reg, nil
}

func (a *App) bundleRoot(v *validated, opts BundleOptions, runtimes []domain.BundleRuntime, reg *registry.Registry) *domain.BundleRoot {
	root := &domain.BundleRoot{
		OutputPath:                v.outputPath,
		Configuration:             opts.Configuration,
		Overwrite:                 opts.Overwrite,
		NoSource:                  opts.NoSource,
		Project:                   v.project,
		Runtimes:                  runtimes,
		Contexts:                  reg.Contexts(),
		LibraryDependencyContexts: reg.DependencyContexts(),
	}

	for _, entry := range reg.Packages() {
		root.Packages = append(root.Packages, domain.BundlePackage{
			Library:   entry.Library,
			Platforms: platformsOf(entry.Contexts),
		})
	}
	for _, entry := range reg.Projects() {
		bp := domain.BundleProject{
			Project:   entry.Project,
			Platforms: platformsOf(entry.Contexts),
		}
		if strings.EqualFold(entry.Project.Name, v.project.Name) {
			bp.WebRoot = v.webRoot
			bp.WebRootOut = v.webRootOut
		}
		root.Projects = append(root.Projects, bp)
	}
	return root
}

// packagesRoot picks the package repository directory.
func (a *App) packagesRoot(opts BundleOptions) string {
	if opts.PackagesDir != "" {
		return opts.PackagesDir
	}
	if env := os.Getenv(domain.EnvPackages); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(domain.DefaultHomeDirName, domain.PackagesDirName)
	}
	return filepath.Join(home, domain.DefaultHomeDirName, domain.PackagesDirName)
}

// selectPlatforms returns the runtime platforms, else the project's declared
// platforms, else the platform of the default runtime. Duplicates are dropped.
func selectPlatforms(project *domain.Project, runtimes []domain.BundleRuntime) []domain.TargetPlatform {
	var platforms []domain.TargetPlatform
	add := func(p domain.TargetPlatform) {
		if !slices.Contains(platforms, p) {
			platforms = append(platforms, p)
		}
	}

	for _, rt := range runtimes {
		add(rt.Platform)
	}
	if len(runtimes) == 0 {
		for _, p := range project.TargetPlatforms() {
			add(p)
		}
	}
	if len(platforms) == 0 {
		if p, err := domain.PlatformForRuntime(domain.DefaultRuntimeName); err == nil {
			add(p)
		}
	}
	return platforms
}

func platformsOf(contexts []*domain.ResolutionContext) []domain.TargetPlatform {
	var out []domain.TargetPlatform
	for _, c := range contexts {
		if !slices.Contains(out, c.Platform()) {
			out = append(out, c.Platform())
		}
	}
	return out
}

// hookVariables resolves the %scope:Name% tokens available to hook scripts.
func hookVariables(project *domain.Project, outputPath string) ports.VariableResolver {
	return func(name string) (string, bool) {
		switch name {
		case "project:Name":
			return project.Name, true
		case "project:Version":
			return project.Version, true
		case "project:Directory":
			return project.Directory, true
		case "bundle:OutputPath":
			return outputPath, true
		default:
			return "", false
		}
	}
}
