package domain

// FrameworkAssemblyReference names an assembly the platform itself provides.
type FrameworkAssemblyReference struct {
	Name string
	// SupportedPlatforms restricts the reference; empty means any platform.
	SupportedPlatforms []TargetPlatform
}

// PackageAssetSet holds the platform-tagged asset groups a package declares.
// Each slice is in declaration order.
type PackageAssetSet struct {
	DependencySets      []Variant[[]Dependency]
	FrameworkAssemblies []Variant[[]FrameworkAssemblyReference]
	// AssemblyReferences groups package-relative assembly paths.
	AssemblyReferences []Variant[[]string]
	// ReferenceSets groups assembly file names visible at compile time.
	ReferenceSets []Variant[[]string]
}

// DependenciesFor returns the dependency set selected for platform.
func (a *PackageAssetSet) DependenciesFor(platform TargetPlatform) []Dependency {
	if a == nil {
		return nil
	}
	deps, _ := SelectVariant(platform, a.DependencySets)
	return deps
}
