package domain

import "path/filepath"

// BundleRuntime is a runtime copied into the bundle.
type BundleRuntime struct {
	Name     string
	Platform TargetPlatform
	Path     string
}

// BundlePackage is a package copied into the bundle, merged across platforms.
type BundlePackage struct {
	Library   LibraryDescription
	Platforms []TargetPlatform
}

// BundleProject is a project whose sources are copied into the bundle.
type BundleProject struct {
	Project   *Project
	Platforms []TargetPlatform
	// WebRoot and WebRootOut are only set for the project being bundled.
	WebRoot    string
	WebRootOut string
}

// BundleRoot describes everything the emitter writes.
type BundleRoot struct {
	OutputPath    string
	Configuration string
	Overwrite     bool
	NoSource      bool
	Project       *Project
	Runtimes      []BundleRuntime
	Packages      []BundlePackage
	Projects      []BundleProject
	// Contexts are the per-platform resolution results in platform order.
	Contexts []*ResolutionContext
	// LibraryDependencyContexts maps each library to every context that contains it.
	LibraryDependencyContexts map[LibraryIdentity][]*ResolutionContext
}

// AppRootPath returns the bundled application directory.
func (b *BundleRoot) AppRootPath() string {
	return filepath.Join(b.OutputPath, AppRootName)
}
