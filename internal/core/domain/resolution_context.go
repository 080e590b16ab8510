package domain

import (
	"iter"
	"strings"
)

// ResolutionContext is the result of walking one project's dependency graph for one
// target platform. It is immutable once built and safe to share between goroutines.
type ResolutionContext struct {
	platform     TargetPlatform
	packagesRoot string
	libraries    []LibraryDescription
	index        map[LibraryIdentity]int
}

// NewResolutionContext builds a context from libraries in discovery order.
// Later duplicates of an identity are ignored.
func NewResolutionContext(platform TargetPlatform, packagesRoot string, libraries []LibraryDescription) *ResolutionContext {
	c := &ResolutionContext{
		platform:     platform,
		packagesRoot: packagesRoot,
		libraries:    make([]LibraryDescription, 0, len(libraries)),
		index:        make(map[LibraryIdentity]int, len(libraries)),
	}
	for _, lib := range libraries {
		if _, dup := c.index[lib.Identity]; dup {
			continue
		}
		c.index[lib.Identity] = len(c.libraries)
		c.libraries = append(c.libraries, lib)
	}
	return c
}

// Platform returns the target platform the context was resolved for.
func (c *ResolutionContext) Platform() TargetPlatform {
	return c.platform
}

// PackagesRoot returns the package repository root used during the walk.
func (c *ResolutionContext) PackagesRoot() string {
	return c.packagesRoot
}

// Libraries yields every library in discovery order.
func (c *ResolutionContext) Libraries() iter.Seq[LibraryDescription] {
	return func(yield func(LibraryDescription) bool) {
		for _, lib := range c.libraries {
			if !yield(lib) {
				return
			}
		}
	}
}

// Len returns the number of libraries in the context.
func (c *ResolutionContext) Len() int {
	return len(c.libraries)
}

// Lookup returns the library with the given identity.
func (c *ResolutionContext) Lookup(id LibraryIdentity) (LibraryDescription, bool) {
	i, ok := c.index[id]
	if !ok {
		return LibraryDescription{}, false
	}
	return c.libraries[i], true
}

// Unresolved returns the libraries no source could satisfy, in discovery order.
func (c *ResolutionContext) Unresolved() []LibraryDescription {
	var out []LibraryDescription
	for _, lib := range c.libraries {
		if !lib.Resolved {
			out = append(out, lib)
		}
	}
	return out
}

// HasUnresolved reports whether any library is unresolved.
func (c *ResolutionContext) HasUnresolved() bool {
	for _, lib := range c.libraries {
		if !lib.Resolved {
			return true
		}
	}
	return false
}

// MissingDependenciesWarning lists every unresolved library for this platform.
// It returns "" when the graph is fully resolved.
func (c *ResolutionContext) MissingDependenciesWarning() string {
	missing := c.Unresolved()
	if len(missing) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Failed to resolve the following dependencies for target platform '")
	b.WriteString(c.platform.String())
	b.WriteString("':")
	for _, lib := range missing {
		b.WriteString("\n   ")
		b.WriteString(lib.Identity.Name.String())
		if v := lib.Identity.Version.String(); v != "" {
			b.WriteString(" ")
			b.WriteString(v)
		}
	}
	return b.String()
}
