package domain

import "path/filepath"

const (
	// ProjectFileName is the name of the project manifest.
	ProjectFileName = "project.yaml"

	// PackageMetadataFileName is the name of the metadata file inside an installed package.
	PackageMetadataFileName = "package.yaml"

	// PackageArchiveExt is the extension of the archive a package was installed from.
	PackageArchiveExt = ".nupkg"

	// LockFileName is the name of the emitted lock file.
	LockFileName = "project.lock.json"

	// AppRootName is the reserved directory holding the bundled application.
	AppRootName = "approot"

	// PackagesDirName is the directory holding bundled packages under the app root.
	PackagesDirName = "packages"

	// RuntimesDirName is the directory holding runtimes, both on disk and in the bundle.
	RuntimesDirName = "runtimes"

	// SourceDirName is the directory holding bundled project sources under the app root.
	SourceDirName = "src"

	// DefaultOutputDir is the output directory relative to the project directory.
	DefaultOutputDir = "bin/output"

	// DefaultHomeDirName is the runtime home directory under the user's home.
	DefaultHomeDirName = ".dnx"

	// BundleDirName is the name of the internal state directory.
	BundleDirName = ".bundle"

	// StoreDirName is the name of the integrity cache directory.
	StoreDirName = "store"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Environment variables consulted while locating runtimes and packages.
const (
	EnvHome          = "DNX_HOME"
	EnvGlobalPath    = "DNX_GLOBAL_PATH"
	EnvPackages      = "DNX_PACKAGES"
	EnvActiveRuntime = "DNX_ACTIVE_RUNTIME"
)

// DefaultStorePath returns the integrity cache location relative to a root.
func DefaultStorePath() string {
	return filepath.Join(BundleDirName, StoreDirName)
}

// DefaultOutputPath returns the output path used when none is given.
func DefaultOutputPath(projectDir string) string {
	return filepath.Join(projectDir, DefaultOutputDir)
}
