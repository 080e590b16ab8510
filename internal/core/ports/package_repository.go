package ports

import (
	"context"
	"io"

	"go.trai.ch/bundle/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=package_repository.go -destination=mocks/mock_package_repository.go -package=mocks

// PackageContent is an installed package.
type PackageContent interface {
	// Identity returns the package name and version.
	Identity() domain.LibraryIdentity
	// Path returns the installed package directory.
	Path() string
	// ArchivePath returns the archive the integrity digest is computed over.
	ArchivePath() string
	// Open returns the archive stream.
	Open() (io.ReadCloser, error)
	// Files lists package-relative file paths with forward slashes.
	Files() ([]string, error)
	// Assets returns the platform-tagged asset groups of the package.
	Assets() (*domain.PackageAssetSet, error)
}

// PackageRepository finds installed packages.
type PackageRepository interface {
	// Root returns the directory packages are installed under.
	Root() string
	// FindPackage returns the best installed version of name within versions.
	// It returns nil, nil when nothing satisfies the range.
	FindPackage(ctx context.Context, name string, versions domain.VersionRange) (PackageContent, error)
}

// PackageRepositoryFactory opens a repository rooted at a directory.
type PackageRepositoryFactory interface {
	Open(root string) (PackageRepository, error)
}
