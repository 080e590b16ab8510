// Package packages reads packages installed in a local package repository.
//
// An installed package lives in <root>/<name>/<version>/ and holds the archive it
// was installed from (<name>.<version>.nupkg), its package.yaml metadata and the
// extracted files.
package packages

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	bundlefs "go.trai.ch/bundle/internal/adapters/fs"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.PackageRepositoryFactory = (*Factory)(nil)
	_ ports.PackageRepository        = (*Repository)(nil)
	_ ports.PackageContent           = (*Content)(nil)
)

// Factory opens repositories that share a file walker.
type Factory struct {
	walker *bundlefs.Walker
}

// NewFactory creates a new Factory.
func NewFactory(walker *bundlefs.Walker) *Factory {
	return &Factory{walker: walker}
}

// Open returns the repository rooted at root. A missing root is an empty repository.
func (f *Factory) Open(root string) (ports.PackageRepository, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid packages directory"), "path", root)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfiguration, "packages path is not a directory"), "path", abs)
	}
	return &Repository{root: abs, walker: f.walker}, nil
}

// Repository implements ports.PackageRepository over an installed package tree.
type Repository struct {
	root   string
	walker *bundlefs.Walker
}

// Root returns the directory packages are installed under.
func (r *Repository) Root() string {
	return r.root
}

// FindPackage returns the lowest installed version of name that satisfies versions.
func (r *Repository) FindPackage(ctx context.Context, name string, versions domain.VersionRange) (ports.PackageContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, dirName, err := r.packageDir(name)
	if err != nil || dir == "" {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", dir)
	}

	best := ""
	for _, e := range entries {
		v := e.Name()
		if !e.IsDir() || !domain.ValidVersion(v) || !versions.Satisfies(v) {
			continue
		}
		if best == "" || domain.CompareVersions(v, best) < 0 {
			best = v
		}
	}
	if best == "" {
		return nil, nil
	}

	return &Content{
		identity: domain.NewLibraryIdentity(dirName, best),
		path:     filepath.Join(dir, best),
		walker:   r.walker,
	}, nil
}

// packageDir finds the directory of name, matching case-insensitively.
func (r *Repository) packageDir(name string) (string, string, error) {
	exact := filepath.Join(r.root, name)
	if info, err := os.Stat(exact); err == nil && info.IsDir() {
		return exact, name, nil
	}

	entries, err := os.ReadDir(r.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", nil
		}
		return "", "", zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", r.root)
	}
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), name) {
			return filepath.Join(r.root, e.Name()), e.Name(), nil
		}
	}
	return "", "", nil
}

// Content is one installed package. Its file list and metadata are read once.
type Content struct {
	identity domain.LibraryIdentity
	path     string
	walker   *bundlefs.Walker

	filesOnce sync.Once
	files     []string
	filesErr  error

	assetsOnce sync.Once
	assets     *domain.PackageAssetSet
	assetsErr  error
}

// Identity returns the package name and version.
func (c *Content) Identity() domain.LibraryIdentity {
	return c.identity
}

// Path returns the installed package directory.
func (c *Content) Path() string {
	return c.path
}

// ArchivePath returns <path>/<name>.<version>.nupkg.
func (c *Content) ArchivePath() string {
	return filepath.Join(c.path, c.identity.Name.String()+"."+c.identity.Version.String()+domain.PackageArchiveExt)
}

// Open returns the archive stream.
func (c *Content) Open() (io.ReadCloser, error) {
	f, err := os.Open(c.ArchivePath())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", c.ArchivePath())
	}
	return f, nil
}

// Files lists package-relative file paths, sorted.
func (c *Content) Files() ([]string, error) {
	c.filesOnce.Do(func() {
		c.files, c.filesErr = c.walker.Files(c.path, nil)
	})
	return c.files, c.filesErr
}

// Assets parses package.yaml. A package without metadata has no dependencies.
func (c *Content) Assets() (*domain.PackageAssetSet, error) {
	c.assetsOnce.Do(func() {
		c.assets, c.assetsErr = c.readAssets()
	})
	return c.assets, c.assetsErr
}

func (c *Content) readAssets() (*domain.PackageAssetSet, error) {
	files, err := c.Files()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(c.path, domain.PackageMetadataFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is inside the package repository
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.PackageAssetSet{AssemblyReferences: assemblyReferences(files)}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", path)
	}

	assets, err := parseMetadata(data, files)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return assets, nil
}
