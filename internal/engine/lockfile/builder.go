// Package lockfile builds the lock file from a merged library registry.
package lockfile

import (
	"cmp"
	"context"
	"path"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/registry"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	assemblyExt  = ".dll"
	contractsDir = "lib/contract/"
)

// Builder produces lock file entries for every package in a registry.
type Builder struct {
	hasher      ports.Hasher
	concurrency int
}

// NewBuilder creates a Builder that hashes packages with hasher.
func NewBuilder(hasher ports.Hasher) *Builder {
	return &Builder{
		hasher:      hasher,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Build creates the lock file. Packages are hashed in parallel; the result is
// ordered by name and version so identical registries produce identical output.
func (b *Builder) Build(ctx context.Context, reg *registry.Registry) (*domain.LockFile, error) {
	entries := reg.Packages()
	libraries := make([]domain.LockFileLibrary, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			lib, err := b.buildLibrary(gctx, entry)
			if err != nil {
				return zerr.With(err, "library", entry.Library.Identity.String())
			}
			libraries[i] = lib
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(libraries, func(a, b domain.LockFileLibrary) int {
		if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return domain.CompareVersions(a.Version, b.Version)
	})

	return &domain.LockFile{
		Version:   domain.LockFileVersion,
		Libraries: libraries,
	}, nil
}

func (b *Builder) buildLibrary(ctx context.Context, entry *registry.PackageEntry) (domain.LockFileLibrary, error) {
	id := entry.Library.Identity
	if entry.Content == nil {
		return domain.LockFileLibrary{}, zerr.Wrap(domain.ErrPackageReadFailed, "package has no content")
	}

	sha, err := b.hasher.ComputeIntegrity(ctx, entry.Content)
	if err != nil {
		return domain.LockFileLibrary{}, err
	}

	files, err := entry.Content.Files()
	if err != nil {
		return domain.LockFileLibrary{}, zerr.Wrap(err, domain.ErrPackageReadFailed.Error())
	}

	assets, err := entry.Content.Assets()
	if err != nil {
		return domain.LockFileLibrary{}, zerr.Wrap(err, domain.ErrPackageMetadataInvalid.Error())
	}
	if assets == nil {
		assets = &domain.PackageAssetSet{}
	}

	lib := domain.LockFileLibrary{
		Name:    id.Name.String(),
		Version: id.Version.String(),
		Sha:     sha,
		Files:   lockedFiles(id, files),
	}
	for _, platform := range platformsOf(entry.Contexts) {
		lib.FrameworkGroups = append(lib.FrameworkGroups, BuildFrameworkGroup(lib.Name, platform, assets, files))
	}
	lib.FrameworkGroups = nonNil(lib.FrameworkGroups)
	return lib, nil
}

// lockedFiles drops the package archive and its metadata file from a package listing.
func lockedFiles(id domain.LibraryIdentity, files []string) []string {
	archive := id.Name.String() + "." + id.Version.String() + domain.PackageArchiveExt
	out := make([]string, 0, len(files))
	for _, f := range files {
		if strings.EqualFold(f, archive) || strings.EqualFold(f, domain.PackageMetadataFileName) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// BuildFrameworkGroup selects the assets of one package for one platform.
func BuildFrameworkGroup(name string, platform domain.TargetPlatform, assets *domain.PackageAssetSet, files []string) domain.LockFileFrameworkGroup {
	deps, _ := domain.SelectVariant(platform, assets.DependencySets)
	runtimeAssemblies := runtimeAssembliesFor(platform, assets)

	return domain.LockFileFrameworkGroup{
		TargetPlatform:        platform,
		Dependencies:          nonNil(slices.Clone(deps)),
		FrameworkAssemblies:   frameworkAssembliesFor(platform, assets),
		RuntimeAssemblies:     runtimeAssemblies,
		CompileTimeAssemblies: compileTimeAssembliesFor(name, platform, runtimeAssemblies, files),
	}
}

func frameworkAssembliesFor(platform domain.TargetPlatform, assets *domain.PackageAssetSet) []string {
	names := []string{}
	if platform.Identifier == domain.PlatformAspNetCore {
		return names
	}

	refs, _ := domain.SelectVariant(platform, assets.FrameworkAssemblies)
	for _, ref := range refs {
		// References without supported platforms are assumed desktop-only.
		if len(ref.SupportedPlatforms) == 0 && !platform.IsDesktop() {
			continue
		}
		names = append(names, ref.Name)
	}
	return names
}

func runtimeAssembliesFor(platform domain.TargetPlatform, assets *domain.PackageAssetSet) []string {
	candidates, _ := domain.SelectVariant(platform, assets.AssemblyReferences)
	allowed, restricted := domain.SelectVariant(platform, assets.ReferenceSets)

	out := []string{}
	for _, p := range candidates {
		file := path.Base(p)
		if restricted && !slices.ContainsFunc(allowed, func(n string) bool { return strings.EqualFold(n, file) }) {
			continue
		}
		if !strings.EqualFold(path.Ext(file), assemblyExt) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func compileTimeAssembliesFor(name string, platform domain.TargetPlatform, runtimeAssemblies, files []string) []string {
	if len(runtimeAssemblies) == 0 {
		return []string{}
	}
	contract := contractsDir + name + assemblyExt
	if !platform.IsDesktop() && slices.ContainsFunc(files, func(f string) bool { return strings.EqualFold(f, contract) }) {
		return []string{contract}
	}
	return slices.Clone(runtimeAssemblies)
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

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
