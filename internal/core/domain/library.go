package domain

// LibraryIdentity names a library at a concrete version.
// Two identities are equal iff name and version are equal.
type LibraryIdentity struct {
	Name    InternedString
	Version InternedString
}

// NewLibraryIdentity builds an identity from plain strings.
func NewLibraryIdentity(name, version string) LibraryIdentity {
	return LibraryIdentity{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}
}

// String renders "name@version".
func (id LibraryIdentity) String() string {
	return id.Name.String() + "@" + id.Version.String()
}

// LibraryKind tells where a library came from.
type LibraryKind int

const (
	// LibraryKindUnresolved marks a dependency no source could satisfy.
	LibraryKindUnresolved LibraryKind = iota
	// LibraryKindProject marks a sibling project built from source.
	LibraryKindProject
	// LibraryKindPackage marks a library installed from a package repository.
	LibraryKindPackage
)

// String returns the lower-case kind name.
func (k LibraryKind) String() string {
	switch k {
	case LibraryKindProject:
		return "project"
	case LibraryKindPackage:
		return "package"
	default:
		return "unresolved"
	}
}

// LibraryDescription is one node discovered while walking a platform's dependency graph.
type LibraryDescription struct {
	Identity     LibraryIdentity
	Kind         LibraryKind
	Dependencies []LibraryIdentity
	Resolved     bool
	// Path is the project directory or the installed package directory.
	Path string
}

// Dependency is a declared, not yet resolved, reference to another library.
type Dependency struct {
	Name  string       `json:"name" yaml:"name"`
	Range VersionRange `json:"versionRange" yaml:"version"`
}

// String renders "name range".
func (d Dependency) String() string {
	if d.Range.IsAny() {
		return d.Name
	}
	return d.Name + " " + d.Range.String()
}

// UnresolvedIdentity is the identity recorded for a dependency nothing could satisfy.
func (d Dependency) UnresolvedIdentity() LibraryIdentity {
	return NewLibraryIdentity(d.Name, d.Range.Min)
}
